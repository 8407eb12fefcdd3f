// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"slices"

	"cogentcore.org/webplot/styles"
)

// DimensionMismatchError reports x and y coordinate sequences of
// different lengths, raised when the series is constructed.
type DimensionMismatchError struct {
	XLen, YLen int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("figure: x and y have different lengths: %d != %d", e.XLen, e.YLen)
}

// Series is one (x, y) data sequence plus an optional style and name.
// A series is constructed once, owns copies of its data, and is not
// modified after the figure holding it is built.
type Series struct {

	// X and Y are the sample coordinates, always of equal length.
	X, Y []float64

	// Name is the optional legend name.
	Name string

	// Style is the optional visual treatment. nil means all defaults.
	Style *styles.Style
}

// New returns a new [Series] holding copies of the given coordinate
// sequences, which must be of equal length.
func New(x, y []float64) (*Series, error) {
	if len(x) != len(y) {
		return nil, &DimensionMismatchError{XLen: len(x), YLen: len(y)}
	}
	return &Series{X: slices.Clone(x), Y: slices.Clone(y)}, nil
}

// NewY returns a new [Series] for the given y values over the implicit
// index range 0..len(y)-1.
func NewY(y []float64) *Series {
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i)
	}
	return &Series{X: x, Y: slices.Clone(y)}
}

// SetName sets the legend name and returns the series.
func (sr *Series) SetName(name string) *Series {
	sr.Name = name
	return sr
}

// SetStyle sets the style and returns the series.
func (sr *Series) SetStyle(st *styles.Style) *Series {
	sr.Style = st
	return sr
}

// SetStyleString parses the given style string (see [styles.ParseStyle])
// and sets the result as this series' style.
func (sr *Series) SetStyleString(code string) error {
	st, err := styles.ParseStyle(code)
	if err != nil {
		return err
	}
	sr.Style = st
	return nil
}

// Points returns the samples as [x, y] pairs.
func (sr *Series) Points() [][2]float64 {
	pts := make([][2]float64, len(sr.X))
	for i := range sr.X {
		pts[i] = [2]float64{sr.X[i], sr.Y[i]}
	}
	return pts
}

// Equal reports value-wise equality of data, name, and resolved style
// (nil style counts as all defaults, see [styles.Style.Equal]).
func (sr *Series) Equal(other *Series) bool {
	if other == nil {
		return false
	}
	return slices.Equal(sr.X, other.X) && slices.Equal(sr.Y, other.Y) &&
		sr.Name == other.Name && sr.Style.Equal(other.Style)
}
