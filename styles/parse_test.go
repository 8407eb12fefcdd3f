// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{"r", Style{Color: "red"}},
		{"k", Style{Color: "black"}},
		{"#333", Style{Color: "#333"}},
		{"#A5978B", Style{Color: "#A5978B"}},
		{"@g", Style{Kind: Area, Color: "green"}},
		{"%y", Style{Kind: Column, Color: "yellow"}},
		{"r.10~4", Style{Color: "red",
			Marker: &Marker{Shape: Circle, Filled: true, Size: 10},
			Stroke: &Stroke{Curve: Smooth, Width: 4}}},
		{"@#333<12~~6", Style{Kind: Area, Color: "#333",
			Marker: &Marker{Shape: Square, Filled: false, Size: 12},
			Stroke: &Stroke{Curve: Smooth, Dashed: true, Width: 6}}},
		{"b,3--1", Style{Color: "blue",
			Marker: &Marker{Shape: Square, Filled: true, Size: 3},
			Stroke: &Stroke{Curve: Stepline, Dashed: true, Width: 1}}},
		{"w>//", Style{Color: "white",
			Marker: &Marker{Shape: Circle, Filled: false, Size: DefaultMarkerSize},
			Stroke: &Stroke{Curve: Straight, Dashed: true, Width: DefaultStrokeWidth}}},
		{"m<", Style{Color: "magenta",
			Marker: &Marker{Shape: Square, Filled: false, Size: DefaultMarkerSize}}},
		{"o-7", Style{Color: "orange",
			Stroke: &Stroke{Curve: Stepline, Width: 7}}},
	}
	for _, test := range tests {
		st, err := ParseStyle(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, &test.want, st, test.in)
	}
}

// a marker or stroke section with an explicit 0 is present but invisible,
// which is not the same state as the section being absent.
func TestParseStyleZeroVersusAbsent(t *testing.T) {
	st, err := ParseStyle("c.0/")
	require.NoError(t, err)
	require.NotNil(t, st.Marker)
	require.NotNil(t, st.Stroke)
	assert.Equal(t, 0, st.Marker.Size)
	assert.True(t, st.Marker.Filled)
	assert.Equal(t, Straight, st.Stroke.Curve)
	assert.Equal(t, DefaultStrokeWidth, st.Stroke.Width)

	bare, err := ParseStyle("c")
	require.NoError(t, err)
	assert.Nil(t, bare.Marker)
	assert.Nil(t, bare.Stroke)
	assert.False(t, st.Equal(bare))

	col, err := ParseStyle("%c.0/")
	require.NoError(t, err)
	assert.Equal(t, Column, col.Kind)
	assert.Equal(t, 0, col.Marker.Size)
}

func TestParseStyleDashing(t *testing.T) {
	dashed, err := ParseStyle("r~~4")
	require.NoError(t, err)
	assert.Equal(t, &Stroke{Curve: Smooth, Dashed: true, Width: 4}, dashed.Stroke)

	solid, err := ParseStyle("r~4")
	require.NoError(t, err)
	assert.Equal(t, &Stroke{Curve: Smooth, Dashed: false, Width: 4}, solid.Stroke)

	// stroke width 0 is an invisible line, dashes notwithstanding
	off, err := ParseStyle("r//0")
	require.NoError(t, err)
	assert.Equal(t, &Stroke{Curve: Straight, Dashed: true, Width: 0}, off.Stroke)
}

func TestParseStyleErrors(t *testing.T) {
	tests := []struct {
		in       string
		pos      int
		expected string
	}{
		{"", 0, "a color"},
		{"@", 1, "a color"},
		{".4", 0, "a color"}, // marker without a color
		{"#33", 0, "3 or 6 hex digits"},
		{"#3333", 0, "3 or 6 hex digits"},
		{"#3333333", 0, "3 or 6 hex digits"},
		{"#", 0, "3 or 6 hex digits"},
		{"r.10~4x", 6, "end of style"},
		{"rr", 1, "end of style"},    // second color
		{"r@", 1, "end of style"},    // kind prefix not first
		{"r4", 1, "end of style"},    // digits without a marker or stroke
		{"r~4.2", 3, "end of style"}, // marker after stroke
	}
	for _, test := range tests {
		_, err := ParseStyle(test.in)
		require.Error(t, err, test.in)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, test.in)
		assert.Equal(t, test.pos, perr.Pos, test.in)
		assert.Equal(t, test.expected, perr.Expected, test.in)
	}
}

func TestParseStyleLexError(t *testing.T) {
	_, err := ParseStyle("x")
	var lerr *LexError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 0, lerr.Pos)
	assert.Equal(t, 'x', lerr.Char)

	_, err = ParseStyle("@!")
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 1, lerr.Pos)
}

func TestStyleString(t *testing.T) {
	tests := []struct {
		in        string
		canonical string
	}{
		{"r", "r"},
		{"@#333<12~~6", "@#333<12~~6"},
		{"%c.0/", "%c.0/2"}, // defaults become explicit
		{"b.", "b.4"},
		{"w>//", "w>4//2"},
		{"r.10~4", "r.10~4"},
	}
	for _, test := range tests {
		st, err := ParseStyle(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.canonical, st.String(), test.in)

		// the canonical form parses back to an equal style
		back, err := ParseStyle(st.String())
		require.NoError(t, err, test.in)
		assert.True(t, st.Equal(back), test.in)
	}
}

func TestParseColorMap(t *testing.T) {
	valid := func(s string) bool { return s == "viridis" || s == "rd_yl_bu" }

	name, err := ParseColorMap("", valid)
	require.NoError(t, err)
	assert.Equal(t, DefaultColorMap, name)

	name, err = ParseColorMap("rd_yl_bu", valid)
	require.NoError(t, err)
	assert.Equal(t, "rd_yl_bu", name)

	_, err = ParseColorMap("magma", valid)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)

	_, err = ParseColorMap("Viridis", valid)
	var lerr *LexError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 0, lerr.Pos)
}
