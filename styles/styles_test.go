// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleEqual(t *testing.T) {
	st := NewStyle().SetColor("red").
		SetMarker(NewMarker(Circle, 10, true)).
		SetStroke(NewStroke(Smooth, 4, false))

	same := &Style{Color: "red",
		Marker: &Marker{Shape: Circle, Filled: true, Size: 10},
		Stroke: &Stroke{Curve: Smooth, Width: 4}}
	assert.True(t, st.Equal(same))

	assert.False(t, st.Equal(NewStyle().SetColor("red")))
	assert.False(t, st.Equal(nil))

	// nil stands for the all-default style
	var none *Style
	assert.True(t, none.Equal(&Style{}))
	assert.True(t, NewStyle().Equal(nil))

	// hex case is not normalized, so these differ
	a := NewStyle().SetColor("#A5978B")
	b := NewStyle().SetColor("#a5978b")
	assert.False(t, a.Equal(b))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "line", Line.String())
	assert.Equal(t, "area", Area.String())
	assert.Equal(t, "column", Column.String())
	assert.Equal(t, "circle", Circle.String())
	assert.Equal(t, "square", Square.String())
	assert.Equal(t, "smooth", Smooth.String())
	assert.Equal(t, "straight", Straight.String())
	assert.Equal(t, "stepline", Stepline.String())

	var k Kinds
	assert.NoError(t, k.SetString("column"))
	assert.Equal(t, Column, k)
	assert.Error(t, k.SetString("pie"))
}
