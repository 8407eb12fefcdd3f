// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsobj builds JavaScript object-literal source, for embedding
// configuration objects in generated HTML pages. Objects keep their keys
// in insertion order, strings are single-quoted, and absent optional
// values render as undefined.
package jsobj

import (
	"math"
	"strconv"
	"strings"

	"cogentcore.org/core/base/indent"
	"cogentcore.org/core/base/ordmap"
)

// Value is one node of a JavaScript value tree.
type Value interface {
	// writeTo appends the JS source for this value. depth is the
	// current indent level; it is ignored unless pretty is set.
	writeTo(b *strings.Builder, pretty bool, depth int)
}

// indentWidth is the number of spaces per pretty-printed indent level.
const indentWidth = 4

// String is a single-quoted JS string.
type String string

func (s String) writeTo(b *strings.Builder, pretty bool, depth int) {
	b.WriteByte('\'')
	b.WriteString(strings.ReplaceAll(string(s), "'", `\'`))
	b.WriteByte('\'')
}

// Number is a JS number. Infinities render as the JS Infinity
// globals; strconv's +Inf form is not valid JS source.
type Number float64

func (n Number) writeTo(b *strings.Builder, pretty bool, depth int) {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		b.WriteString("Infinity")
	case math.IsInf(f, -1):
		b.WriteString("-Infinity")
	default:
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
}

// Int is an integer JS number.
type Int int

func (n Int) writeTo(b *strings.Builder, pretty bool, depth int) {
	b.WriteString(strconv.Itoa(int(n)))
}

// Bool is a JS boolean.
type Bool bool

func (v Bool) writeTo(b *strings.Builder, pretty bool, depth int) {
	b.WriteString(strconv.FormatBool(bool(v)))
}

// Raw is verbatim JS source, emitted without quoting.
type Raw string

func (r Raw) writeTo(b *strings.Builder, pretty bool, depth int) {
	b.WriteString(string(r))
}

type undefined struct{}

func (undefined) writeTo(b *strings.Builder, pretty bool, depth int) {
	b.WriteString("undefined")
}

// Undefined is the JS undefined value, used for absent optionals.
var Undefined Value = undefined{}

// ToValue converts a Go value to a [Value]. Strings are quoted, numeric
// types become numbers, nil becomes [Undefined], and values that are
// already a [Value] pass through.
func ToValue(v any) Value {
	switch x := v.(type) {
	case nil:
		return Undefined
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Int(x)
	case float64:
		return Number(x)
	case float32:
		return Number(x)
	default:
		return Undefined
	}
}

// Array is an ordered JS array.
type Array []Value

// NewArray returns an [Array] of the given values, converted per [ToValue].
func NewArray(vals ...any) Array {
	ar := make(Array, len(vals))
	for i, v := range vals {
		ar[i] = ToValue(v)
	}
	return ar
}

// Strings returns an [Array] of quoted strings.
func Strings(ss []string) Array {
	ar := make(Array, len(ss))
	for i, s := range ss {
		ar[i] = String(s)
	}
	return ar
}

// Ints returns an [Array] of integers.
func Ints(ns []int) Array {
	ar := make(Array, len(ns))
	for i, n := range ns {
		ar[i] = Int(n)
	}
	return ar
}

// Points returns an [Array] of [x, y] pair arrays, the shape charting
// libraries take series data in.
func Points(pts [][2]float64) Array {
	ar := make(Array, len(pts))
	for i, p := range pts {
		ar[i] = Array{Number(p[0]), Number(p[1])}
	}
	return ar
}

// complex reports whether the array holds nested objects or arrays,
// in which case pretty printing breaks it across lines; arrays of
// scalars stay on one line.
func (ar Array) complex() bool {
	for _, v := range ar {
		switch v.(type) {
		case *Object, Array:
			return true
		}
	}
	return false
}

func (ar Array) writeTo(b *strings.Builder, pretty bool, depth int) {
	if len(ar) == 0 {
		b.WriteString("[]")
		return
	}
	if !pretty || !ar.complex() {
		b.WriteByte('[')
		for i, v := range ar {
			if i > 0 {
				b.WriteString(", ")
			}
			v.writeTo(b, false, 0)
		}
		b.WriteByte(']')
		return
	}
	b.WriteString("[\n")
	for i, v := range ar {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(indent.Spaces(depth+1, indentWidth))
		v.writeTo(b, true, depth+1)
	}
	b.WriteByte('\n')
	b.WriteString(indent.Spaces(depth, indentWidth))
	b.WriteByte(']')
}

// Object is a JS object with keys kept in insertion order.
type Object struct {
	kv ordmap.Map[string, Value]
}

// NewObject returns a new empty [Object].
func NewObject() *Object {
	return &Object{}
}

// Set sets the value for the given key, converted per [ToValue],
// and returns the object for chaining. Setting an existing key
// replaces its value in place.
func (ob *Object) Set(key string, v any) *Object {
	ob.kv.Add(key, ToValue(v))
	return ob
}

// Len returns the number of keys.
func (ob *Object) Len() int {
	return ob.kv.Len()
}

// At returns the value for the given key, or nil if absent.
func (ob *Object) At(key string) Value {
	v, ok := ob.kv.ValueByKeyTry(key)
	if !ok {
		return nil
	}
	return v
}

func (ob *Object) writeTo(b *strings.Builder, pretty bool, depth int) {
	if ob.kv.Len() == 0 {
		b.WriteString("{}")
		return
	}
	if !pretty {
		b.WriteByte('{')
		for i, kv := range ob.kv.Order {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(kv.Key)
			b.WriteString(": ")
			kv.Value.writeTo(b, false, 0)
		}
		b.WriteByte('}')
		return
	}
	b.WriteString("{\n")
	for i, kv := range ob.kv.Order {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(indent.Spaces(depth+1, indentWidth))
		b.WriteString(kv.Key)
		b.WriteString(": ")
		kv.Value.writeTo(b, true, depth+1)
	}
	b.WriteByte('\n')
	b.WriteString(indent.Spaces(depth, indentWidth))
	b.WriteByte('}')
}

// String returns the object as compact single-line JS source.
func (ob *Object) String() string {
	var b strings.Builder
	ob.writeTo(&b, false, 0)
	return b.String()
}

// Pretty returns the object as indented multi-line JS source. Arrays
// of scalars stay inline; objects and nested structures get one line
// per entry.
func (ob *Object) Pretty() string {
	var b strings.Builder
	ob.writeTo(&b, true, 0)
	return b.String()
}
