// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure assembles series of data into renderable figure
// descriptions: an ordered list of styled series plus figure-level
// properties, with structural equality and apexcharts option
// generation for the HTML renderer.
package figure

import (
	"fmt"

	"cogentcore.org/webplot/styles"
)

// default figure dimensions in pixels
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// KindConflictError reports two series whose styles carry different
// non-line figure kinds, which cannot be drawn in one figure.
type KindConflictError struct {
	A, B styles.Kinds
}

func (e *KindConflictError) Error() string {
	return fmt.Sprintf("figure: conflicting figure kinds %v and %v", e.A, e.B)
}

// Figure is an ordered collection of series to be rendered together,
// immutable once built. Series order determines draw and legend order.
type Figure struct {

	// Title is the figure title, used for the page and the saved file name.
	Title string

	// Width and Height are the nominal pixel dimensions.
	Width, Height int

	// Palette is the index of the color palette cycled through for
	// series without an explicit color.
	Palette int

	// Series are the data series, in draw order.
	Series []*Series
}

// Kind returns the figure kind: the first non-[styles.Line] kind among
// the series styles, or [styles.Line].
func (fig *Figure) Kind() styles.Kinds {
	for _, sr := range fig.Series {
		if sr.Style != nil && sr.Style.Kind != styles.Line {
			return sr.Style.Kind
		}
	}
	return styles.Line
}

// Equal reports structural equality: same series count, and per index
// equal x, y, name, and resolved style, with a nil style standing for
// all defaults. This is the round-trip oracle: a figure described by
// style strings equals one built with the equivalent explicit calls.
func (fig *Figure) Equal(other *Figure) bool {
	if other == nil || len(fig.Series) != len(other.Series) {
		return false
	}
	for i, sr := range fig.Series {
		if !sr.Equal(other.Series[i]) {
			return false
		}
	}
	return true
}

// Builder accumulates series and figure-level properties in call
// order and produces an immutable [Figure].
type Builder struct {
	title   string
	width   int
	height  int
	palette int
	series  []*Series
}

// NewBuilder returns a new [Builder] with default dimensions and palette.
func NewBuilder() *Builder {
	return &Builder{width: DefaultWidth, height: DefaultHeight}
}

// SetTitle sets the figure title.
func (bd *Builder) SetTitle(title string) *Builder {
	bd.title = title
	return bd
}

// SetSize sets the nominal pixel dimensions.
func (bd *Builder) SetSize(width, height int) *Builder {
	bd.width, bd.height = width, height
	return bd
}

// SetPalette selects one of the [Palettes], modulo their count.
// Negative indices wrap around from the end.
func (bd *Builder) SetPalette(p int) *Builder {
	n := len(Palettes)
	bd.palette = ((p % n) + n) % n
	return bd
}

// Add appends the given series, in order.
func (bd *Builder) Add(srs ...*Series) *Builder {
	bd.series = append(bd.series, srs...)
	return bd
}

// Build produces the figure. Zero series is a valid empty figure.
// Series styles that disagree on a non-line figure kind are rejected
// with a [*KindConflictError]: a kind is a figure-level property, and
// silently redrawing a series as a different kind would misrepresent
// what the caller described.
func (bd *Builder) Build() (*Figure, error) {
	kind := styles.Line
	for _, sr := range bd.series {
		if sr.Style == nil || sr.Style.Kind == styles.Line {
			continue
		}
		if kind != styles.Line && sr.Style.Kind != kind {
			return nil, &KindConflictError{A: kind, B: sr.Style.Kind}
		}
		kind = sr.Style.Kind
	}
	return &Figure{
		Title:   bd.title,
		Width:   bd.width,
		Height:  bd.height,
		Palette: bd.palette,
		Series:  bd.series,
	}, nil
}
