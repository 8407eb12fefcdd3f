// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// LexError reports a character that belongs to no class of the style
// grammar, with its byte offset in the input.
type LexError struct {
	Pos  int
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("styles: unrecognized character %q at position %d", e.Char, e.Pos)
}

// ParseError reports structurally invalid style syntax: a missing or
// malformed color, a malformed digit run, or trailing input after a
// complete style. Pos is the byte offset of the offending input.
type ParseError struct {
	Pos      int
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("styles: invalid style at position %d: expected %s", e.Pos, e.Expected)
}

// character classes of the style grammar

func isKindChar(c byte) bool   { return c == '@' || c == '%' }
func isColorChar(c byte) bool  { return strings.IndexByte("bgrcmyokw", c) >= 0 }
func isMarkerChar(c byte) bool { return c == '.' || c == ',' || c == '>' || c == '<' }
func isStrokeChar(c byte) bool { return c == '~' || c == '/' || c == '-' }
func isDigit(c byte) bool      { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// known reports whether the character belongs to any class of the
// grammar: out-of-position known characters are parse errors, while
// unknown characters are lex errors.
func known(c byte) bool {
	return isKindChar(c) || isColorChar(c) || isMarkerChar(c) ||
		isStrokeChar(c) || isDigit(c) || c == '#'
}

// scanner walks the style string one character at a time with one
// character of look-ahead, which is all the grammar needs: doubled
// stroke characters and hex runs are the only multi-character tokens.
type scanner struct {
	src string
	pos int
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.src) }

// peek returns the current character without consuming it.
func (sc *scanner) peek() (byte, bool) {
	if sc.eof() {
		return 0, false
	}
	return sc.src[sc.pos], true
}

// next consumes and returns the current character.
func (sc *scanner) next() (byte, bool) {
	c, ok := sc.peek()
	if ok {
		sc.pos++
	}
	return c, ok
}

// run consumes the maximal run of characters satisfying f.
func (sc *scanner) run(f func(byte) bool) string {
	start := sc.pos
	for {
		c, ok := sc.peek()
		if !ok || !f(c) {
			return sc.src[start:sc.pos]
		}
		sc.pos++
	}
}

// parser assembles one Style from the scanner's character stream.
// States proceed strictly left to right: kind, color, marker with
// optional size, stroke with optional width, end of input.
type parser struct {
	sc scanner
	st Style
}

// ParseStyle parses a style string into a [Style], or fails with a
// [*ParseError] or [*LexError] carrying the offending byte offset.
// The grammar, in order, each section optional except the color:
//
//	kind    '@' area | '%' column              (absent: line)
//	color   one of b g r c m y o k w,
//	        or '#' + exactly 3 or 6 hex digits (kept verbatim)
//	marker  '.' ',' filled  '>' '<' hollow     (. > circle, , < square)
//	        + optional size digits             (absent: DefaultMarkerSize)
//	stroke  '~' smooth  '/' straight  '-' stepline, doubled for dashed
//	        + optional width digits            (absent: DefaultStrokeWidth)
//
// A digit run of exactly "0" keeps the marker or stroke present but
// invisible; leaving the section out entirely leaves the field nil.
// Any input remaining after the stroke section is an error.
func ParseStyle(s string) (*Style, error) {
	p := &parser{sc: scanner{src: s}}
	p.parseKind()
	if err := p.parseColor(); err != nil {
		return nil, err
	}
	if err := p.parseMarker(); err != nil {
		return nil, err
	}
	if err := p.parseStroke(); err != nil {
		return nil, err
	}
	if !p.sc.eof() {
		return nil, &ParseError{Pos: p.sc.pos, Expected: "end of style"}
	}
	st := p.st
	return &st, nil
}

func (p *parser) parseKind() {
	c, ok := p.sc.peek()
	if !ok {
		return
	}
	switch c {
	case '@':
		p.st.Kind = Area
		p.sc.next()
	case '%':
		p.st.Kind = Column
		p.sc.next()
	}
}

func (p *parser) parseColor() error {
	c, ok := p.sc.peek()
	if !ok {
		return &ParseError{Pos: p.sc.pos, Expected: "a color"}
	}
	switch {
	case c == '#':
		start := p.sc.pos
		p.sc.next()
		digits := p.sc.run(isHexDigit)
		if len(digits) != 3 && len(digits) != 6 {
			return &ParseError{Pos: start, Expected: "3 or 6 hex digits"}
		}
		p.st.Color = p.sc.src[start:p.sc.pos] // verbatim, # included, case kept
	case isColorChar(c):
		p.sc.next()
		p.st.Color = colorLetters[c]
	case !known(c):
		return &LexError{Pos: p.sc.pos, Char: rune(c)}
	default:
		return &ParseError{Pos: p.sc.pos, Expected: "a color"}
	}
	return nil
}

func (p *parser) parseMarker() error {
	c, ok := p.sc.peek()
	if !ok || !isMarkerChar(c) {
		return nil
	}
	p.sc.next()
	m := &Marker{Size: DefaultMarkerSize}
	switch c {
	case '.':
		m.Shape, m.Filled = Circle, true
	case '>':
		m.Shape, m.Filled = Circle, false
	case ',':
		m.Shape, m.Filled = Square, true
	case '<':
		m.Shape, m.Filled = Square, false
	}
	size, err := p.digits("a marker size")
	if err != nil {
		return err
	}
	if size >= 0 {
		m.Size = size
	}
	p.st.Marker = m
	return nil
}

func (p *parser) parseStroke() error {
	c, ok := p.sc.peek()
	if !ok || !isStrokeChar(c) {
		return nil
	}
	p.sc.next()
	sk := &Stroke{Width: DefaultStrokeWidth}
	switch c {
	case '~':
		sk.Curve = Smooth
	case '/':
		sk.Curve = Straight
	case '-':
		sk.Curve = Stepline
	}
	// an exact repeat of the curve character means dashed; this is
	// decided before the digit run, so "~4" is a solid line of width 4
	if d, ok := p.sc.peek(); ok && d == c {
		p.sc.next()
		sk.Dashed = true
	}
	width, err := p.digits("a stroke width")
	if err != nil {
		return err
	}
	if width >= 0 {
		sk.Width = width
	}
	p.st.Stroke = sk
	return nil
}

// digits consumes an optional digit run, returning -1 when absent.
func (p *parser) digits(expected string) (int, error) {
	start := p.sc.pos
	run := p.sc.run(isDigit)
	if run == "" {
		return -1, nil
	}
	n, err := strconv.Atoi(run)
	if err != nil { // out of int range
		return 0, &ParseError{Pos: start, Expected: expected}
	}
	return n, nil
}

// DefaultColorMap is the color map name used by the image path when no
// map is named.
var DefaultColorMap = "viridis"

// ParseColorMap parses the single optional color-map-name token of the
// image-display path. An empty name selects [DefaultColorMap]. Otherwise
// the name must be one lowercase token of letters, digits, and
// underscores, accepted by valid, which is supplied by the color-map
// collaborator holding the closed preset set (nil accepts every
// well-formed name).
func ParseColorMap(name string, valid func(string) bool) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultColorMap, nil
	}
	for i, r := range name {
		lower := r >= 'a' && r <= 'z'
		if !lower && !(r >= '0' && r <= '9') && r != '_' {
			return "", &LexError{Pos: i, Char: r}
		}
	}
	if valid != nil && !valid(name) {
		return "", &ParseError{Pos: 0, Expected: "a known color map name"}
	}
	return name, nil
}
