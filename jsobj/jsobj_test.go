// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsobj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompact(t *testing.T) {
	ob := NewObject().
		Set("a", 1).
		Set("b", NewArray(1, 2)).
		Set("s", "lorem ipsum").
		Set("none", nil)
	assert.Equal(t, "{a: 1, b: [1, 2], s: 'lorem ipsum', none: undefined}", ob.String())

	in := NewObject().Set("x", 12.2).Set("y", -32.4)
	assert.Equal(t, "{x: 12.2, y: -32.4}", in.String())

	// replacing a key keeps its position
	ob = NewObject().Set("a", 1).Set("b", 2).Set("a", 3)
	assert.Equal(t, "{a: 3, b: 2}", ob.String())
}

func TestPretty(t *testing.T) {
	ob := NewObject().
		Set("a", Undefined).
		Set("b", Array{
			NewObject().Set("x", 12.2).Set("y", -32.4),
			NewObject().Set("x", 0).Set("y", Undefined),
		}).
		Set("c", NewArray(1, 2, 3)).
		Set("d", "lorem ipsum")

	want := `{
    a: undefined,
    b: [
        {
            x: 12.2,
            y: -32.4
        },
        {
            x: 0,
            y: undefined
        }
    ],
    c: [1, 2, 3],
    d: 'lorem ipsum'
}`
	assert.Equal(t, want, ob.Pretty())
}

// non-finite samples must still be valid JS source: NaN is a global,
// but strconv's +Inf/-Inf forms are not
func TestNonFinite(t *testing.T) {
	ob := NewObject().Set("v", Array{
		Number(math.Inf(1)), Number(math.Inf(-1)), Number(math.NaN()), Number(1.5),
	})
	assert.Equal(t, "{v: [Infinity, -Infinity, NaN, 1.5]}", ob.String())
}

func TestPoints(t *testing.T) {
	pts := Points([][2]float64{{0, 1.5}, {1, 2}})
	assert.Equal(t, "{data: [[0, 1.5], [1, 2]]}", NewObject().Set("data", pts).String())
}

func TestEmpty(t *testing.T) {
	assert.Equal(t, "{}", NewObject().String())
	assert.Equal(t, "{}", NewObject().Pretty())
	assert.Equal(t, "{e: []}", NewObject().Set("e", Array{}).String())
}
