// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"testing"

	"cogentcore.org/webplot/styles"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// figures described by a style string and by the equivalent explicit
// constructor calls must compare equal.
func TestRoundTripEquivalence(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{3.5, -1, 2}

	parsed, err := New(x, y)
	require.NoError(t, err)
	require.NoError(t, parsed.SetStyleString("r.10~4"))
	got, err := NewBuilder().Add(parsed).Build()
	require.NoError(t, err)

	explicit, err := New(x, y)
	require.NoError(t, err)
	explicit.SetStyle(styles.NewStyle().
		SetColor("red").
		SetMarker(styles.NewMarker(styles.Circle, 10, true)).
		SetStroke(styles.NewStroke(styles.Smooth, 4, false)))
	want, err := NewBuilder().Add(explicit).Build()
	require.NoError(t, err)

	if !got.Equal(want) {
		t.Error(cmp.Diff(want, got))
	}

	// an unstyled series equals one with an explicitly default style
	a, _ := NewBuilder().Add(NewY(y)).Build()
	b, _ := NewBuilder().Add(NewY(y).SetStyle(styles.NewStyle())).Build()
	assert.True(t, a.Equal(b))

	// but not one whose marker is merely invisible
	invisible := NewY(y)
	require.NoError(t, invisible.SetStyleString("c.0/"))
	bare := NewY(y)
	require.NoError(t, bare.SetStyleString("c"))
	c, _ := NewBuilder().Add(invisible).Build()
	d, _ := NewBuilder().Add(bare).Build()
	assert.False(t, c.Equal(d))
}

func TestDimensionMismatch(t *testing.T) {
	_, err := New([]float64{1, 2, 3}, []float64{1, 2})
	require.Error(t, err)
	var derr *DimensionMismatchError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 3, derr.XLen)
	assert.Equal(t, 2, derr.YLen)
}

func TestKindConflict(t *testing.T) {
	area := NewY([]float64{1, 2})
	require.NoError(t, area.SetStyleString("@r"))
	column := NewY([]float64{2, 1})
	require.NoError(t, column.SetStyleString("%b"))
	line := NewY([]float64{0, 0})

	_, err := NewBuilder().Add(area, column).Build()
	var kerr *KindConflictError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, styles.Area, kerr.A)
	assert.Equal(t, styles.Column, kerr.B)

	// line series coexist with any one non-line kind
	fig, err := NewBuilder().Add(line, area).Build()
	require.NoError(t, err)
	assert.Equal(t, styles.Area, fig.Kind())

	// an empty figure is valid
	empty, err := NewBuilder().Build()
	require.NoError(t, err)
	assert.Len(t, empty.Series, 0)
	assert.Equal(t, styles.Line, empty.Kind())
}

func TestBuilderDefaults(t *testing.T) {
	fig, err := NewBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, fig.Width)
	assert.Equal(t, DefaultHeight, fig.Height)

	fig, err = NewBuilder().SetSize(640, 480).SetPalette(13).SetTitle("sines").Build()
	require.NoError(t, err)
	assert.Equal(t, 640, fig.Width)
	assert.Equal(t, 3, fig.Palette)
	assert.Equal(t, Palettes[3], fig.PaletteColors())
}

// negative palette indices wrap instead of indexing out of range
func TestPaletteNegative(t *testing.T) {
	fig, err := NewBuilder().SetPalette(-1).Add(NewY([]float64{1, 2})).Build()
	require.NoError(t, err)
	assert.Equal(t, 9, fig.Palette)
	assert.Equal(t, Palettes[9], fig.PaletteColors())
	assert.NotPanics(t, func() { fig.Options() })

	// a directly constructed figure gets the same guard
	direct := &Figure{Palette: -13, Series: []*Series{NewY([]float64{1})}}
	assert.Equal(t, Palettes[7], direct.PaletteColors())
	assert.NotPanics(t, func() { direct.Options() })
}

func TestOptions(t *testing.T) {
	styled := NewY([]float64{1, 2, 3}).SetName("ys")
	require.NoError(t, styled.SetStyleString("#ff0000.10~~4"))
	plain := NewY([]float64{3, 2, 1})

	fig, err := NewBuilder().SetTitle("test").Add(styled, plain).Build()
	require.NoError(t, err)
	opts := fig.Options().String()

	assert.Contains(t, opts, "title: {text: 'test'}")
	assert.Contains(t, opts,
		"{type: 'line', name: 'ys', data: [[0, 1], [1, 2], [2, 3]]}")
	assert.Contains(t, opts,
		"{type: 'line', name: undefined, data: [[0, 3], [1, 2], [2, 1]]}")
	// explicit color first, then the palette cycle
	assert.Contains(t, opts, "colors: ['#ff0000', '#008ffb']")
	assert.Contains(t, opts, "fill: {type: ['solid', 'solid']}")
	assert.Contains(t, opts, "shape: ['circle', 'circle']")
	assert.Contains(t, opts, "size: [10, 0]")
	assert.Contains(t, opts, "fillOpacity: [1, -1]")
	assert.Contains(t, opts, "strokeColors: ['#ffffff00', '#008ffb']")
	assert.Contains(t, opts, "curve: ['smooth', 'smooth']")
	assert.Contains(t, opts, "width: [4, 0]")
	assert.Contains(t, opts, "dashArray: [12, 0]")
}

func TestOptionsAreaFill(t *testing.T) {
	area := NewY([]float64{1, 2})
	require.NoError(t, area.SetStyleString("@#333"))
	fig, err := NewBuilder().Add(area).Build()
	require.NoError(t, err)
	opts := fig.Options().String()
	assert.Contains(t, opts, "type: 'area'")
	assert.Contains(t, opts, "fill: {type: ['gradient']}")
	assert.Contains(t, opts, "colors: ['#333']")
}
