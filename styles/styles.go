// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles defines the style value model for webplot figures,
// and parses the compact style-string codes that describe one.
//
// A style string packs a figure kind, a color, a marker spec, and a
// stroke spec into a handful of characters, in that order:
//
//	"r.10~4"       red, filled circle markers of size 10, smooth line of width 4
//	"@#333<12~~6"  area figure, color #333, hollow square markers, dashed smooth line
//	"%c.0/"        column figure, cyan, present-but-invisible markers, straight line
//
// See [ParseStyle] for the full grammar.
package styles

//go:generate core generate

import (
	"strconv"
	"strings"
)

// Kinds is the overall kind of figure that a series is drawn as.
type Kinds int32 //enums:enum -transform lower

const (
	// Line is a plain value graph, the default.
	Line Kinds = iota

	// Area fills the region between the line and the axis.
	Area

	// Column draws each sample as a vertical bar.
	Column
)

// Shapes is the glyph drawn at each data sample.
type Shapes int32 //enums:enum -transform lower

const (
	// Circle is a round marker.
	Circle Shapes = iota

	// Square is a square marker.
	Square
)

// Curves is the way the stroke connects consecutive samples.
type Curves int32 //enums:enum -transform lower

const (
	// Smooth connects samples with a spline.
	Smooth Curves = iota

	// Straight connects samples with line segments.
	Straight

	// Stepline connects samples with horizontal-then-vertical steps.
	Stepline
)

var (
	// DefaultMarkerSize is the marker size used when a style string gives
	// a marker shape without a following digit run. An explicit 0 in the
	// style string is not replaced by this default.
	DefaultMarkerSize = 4

	// DefaultStrokeWidth is the stroke width used when a style string gives
	// a stroke curve without a following digit run. An explicit 0 in the
	// style string is not replaced by this default.
	DefaultStrokeWidth = 2
)

// Marker describes the point glyph drawn at each data sample.
type Marker struct {

	// Shape is the glyph shape.
	Shape Shapes

	// Filled indicates a filled glyph, as opposed to a hollow outline.
	Filled bool

	// Size is the glyph radius in pixels. 0 means the marker is present
	// but draws nothing, which is distinct from having no marker at all
	// (a nil [Style.Marker]).
	Size int
}

// NewMarker returns a new [Marker] with the given shape, size, and fill.
func NewMarker(shape Shapes, size int, filled bool) *Marker {
	return &Marker{Shape: shape, Size: size, Filled: filled}
}

// Stroke describes the line connecting consecutive data samples.
type Stroke struct {

	// Curve is the sample connection style.
	Curve Curves

	// Dashed draws the line dashed instead of solid.
	Dashed bool

	// Width is the line width in pixels. 0 means the stroke is present
	// but draws nothing, which is distinct from having no stroke at all
	// (a nil [Style.Stroke]).
	Width int
}

// NewStroke returns a new [Stroke] with the given curve, width, and dashing.
func NewStroke(curve Curves, width int, dashed bool) *Stroke {
	return &Stroke{Curve: curve, Width: width, Dashed: dashed}
}

// Style describes the visual treatment of one series. The zero value is
// a plain [Line] style with no color, marker, or stroke; [ParseStyle]
// never produces a colorless Style.
type Style struct {

	// Kind is the figure kind this series is drawn as. It is a
	// figure-level property: all series in one figure must agree
	// on any non-Line kind.
	Kind Kinds

	// Color is a named color from the style palette (blue, green, red,
	// cyan, magenta, yellow, orange, black, white) or a verbatim hex
	// literal including the leading #. Hex literals are not case
	// normalized. Empty means no color was specified.
	Color string

	// Marker is the optional sample glyph. nil means no marker.
	Marker *Marker

	// Stroke is the optional connecting line. nil means no line.
	Stroke *Stroke
}

// NewStyle returns a new default [Style].
func NewStyle() *Style {
	return &Style{}
}

// SetKind sets the figure kind and returns the style.
func (st *Style) SetKind(k Kinds) *Style { st.Kind = k; return st }

// SetColor sets the color and returns the style.
func (st *Style) SetColor(c string) *Style { st.Color = c; return st }

// SetMarker sets the marker and returns the style.
func (st *Style) SetMarker(m *Marker) *Style { st.Marker = m; return st }

// SetStroke sets the stroke and returns the style.
func (st *Style) SetStroke(sk *Stroke) *Style { st.Stroke = sk; return st }

// Equal reports field-wise equality with the other style, with a nil
// style standing for the all-default [Style]. Marker and Stroke compare
// equal only when both are nil or both are set with equal fields: a
// size-0 marker is present-but-invisible and is not equal to no marker.
func (st *Style) Equal(other *Style) bool {
	a, b := st, other
	if a == nil {
		a = &Style{}
	}
	if b == nil {
		b = &Style{}
	}
	if a.Kind != b.Kind || a.Color != b.Color {
		return false
	}
	if (a.Marker == nil) != (b.Marker == nil) || (a.Stroke == nil) != (b.Stroke == nil) {
		return false
	}
	if a.Marker != nil && *a.Marker != *b.Marker {
		return false
	}
	if a.Stroke != nil && *a.Stroke != *b.Stroke {
		return false
	}
	return true
}

// colorLetters is the style-string palette, keyed by letter.
var colorLetters = map[byte]string{
	'b': "blue",
	'g': "green",
	'r': "red",
	'c': "cyan",
	'm': "magenta",
	'y': "yellow",
	'o': "orange",
	'k': "black",
	'w': "white",
}

// colorNames is the inverse of colorLetters.
var colorNames = map[string]byte{}

func init() {
	for l, n := range colorLetters {
		colorNames[n] = l
	}
}

// String returns the canonical style-string form of the style:
// kind prefix, color, marker character with explicit size, stroke
// character(s) with explicit width. For any parser-produced style, and
// any hand-built one whose Color is a palette name or hex literal,
// parsing the result yields an equal Style; other color strings have
// no style-string form and serialize verbatim.
func (st *Style) String() string {
	var b strings.Builder
	switch st.Kind {
	case Area:
		b.WriteByte('@')
	case Column:
		b.WriteByte('%')
	}
	if l, ok := colorNames[st.Color]; ok {
		b.WriteByte(l)
	} else {
		b.WriteString(st.Color)
	}
	if m := st.Marker; m != nil {
		switch {
		case m.Shape == Circle && m.Filled:
			b.WriteByte('.')
		case m.Shape == Circle:
			b.WriteByte('>')
		case m.Filled:
			b.WriteByte(',')
		default:
			b.WriteByte('<')
		}
		b.WriteString(strconv.Itoa(m.Size))
	}
	if sk := st.Stroke; sk != nil {
		var c byte
		switch sk.Curve {
		case Smooth:
			c = '~'
		case Straight:
			c = '/'
		case Stepline:
			c = '-'
		}
		b.WriteByte(c)
		if sk.Dashed {
			b.WriteByte(c)
		}
		b.WriteString(strconv.Itoa(sk.Width))
	}
	return b.String()
}
