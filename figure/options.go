// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/webplot/jsobj"
	"cogentcore.org/webplot/styles"
)

// Options returns the apexcharts configuration object for the figure.
// Series without a color draw from the figure palette in order; series
// without a marker or stroke get present-but-invisible ones (size and
// width 0), which render identically to absent ones.
func (fig *Figure) Options() *jsobj.Object {
	palette := fig.PaletteColors()
	next := 0

	series := make(jsobj.Array, 0, len(fig.Series))
	var colorList, fill jsobj.Array
	var markerShape, markerSize, markerFill, markerStroke jsobj.Array
	var strokeCurve, strokeWidth, strokeDash jsobj.Array

	for _, sr := range fig.Series {
		st := sr.Style
		if st == nil {
			st = &styles.Style{}
		}

		entry := jsobj.NewObject().Set("type", st.Kind.String())
		if sr.Name != "" {
			entry.Set("name", sr.Name)
		} else {
			entry.Set("name", nil)
		}
		entry.Set("data", jsobj.Points(sr.Points()))
		series = append(series, entry)

		c := hexColor(st.Color)
		if c == "" {
			c = palette[next%len(palette)]
			next++
		}
		colorList = append(colorList, jsobj.String(c))

		if st.Kind == styles.Area {
			fill = append(fill, jsobj.String("gradient"))
		} else {
			fill = append(fill, jsobj.String("solid"))
		}

		m := st.Marker
		if m == nil {
			m = &styles.Marker{}
		}
		markerShape = append(markerShape, jsobj.String(m.Shape.String()))
		markerSize = append(markerSize, jsobj.Int(m.Size))
		if m.Filled {
			markerFill = append(markerFill, jsobj.Int(1))
			markerStroke = append(markerStroke, jsobj.String("#ffffff00"))
		} else {
			markerFill = append(markerFill, jsobj.Int(-1))
			markerStroke = append(markerStroke, jsobj.String(c))
		}

		sk := st.Stroke
		if sk == nil {
			sk = &styles.Stroke{}
		}
		strokeCurve = append(strokeCurve, jsobj.String(sk.Curve.String()))
		strokeWidth = append(strokeWidth, jsobj.Int(sk.Width))
		if sk.Dashed {
			strokeDash = append(strokeDash, jsobj.Int(3*sk.Width))
		} else {
			strokeDash = append(strokeDash, jsobj.Int(0))
		}
	}

	title := jsobj.NewObject()
	if fig.Title != "" {
		title.Set("text", fig.Title)
	} else {
		title.Set("text", nil)
	}

	return jsobj.NewObject().
		Set("title", title).
		Set("chart", jsobj.NewObject().
			Set("type", "area").
			Set("width", "90%").
			Set("height", "90%").
			Set("zoom", jsobj.NewObject().
				Set("type", "x").
				Set("enabled", true).
				Set("autoScaleYaxis", true)).
			Set("toolbar", jsobj.NewObject().
				Set("autoSelected", "zoom"))).
		Set("series", series).
		Set("fill", jsobj.NewObject().Set("type", fill)).
		Set("colors", colorList).
		Set("markers", jsobj.NewObject().
			Set("shape", markerShape).
			Set("size", markerSize).
			Set("fillOpacity", markerFill).
			Set("strokeColors", markerStroke).
			Set("hover", jsobj.NewObject().Set("sizeOffset", 0)).
			Set("radius", 1)).
		Set("stroke", jsobj.NewObject().
			Set("curve", strokeCurve).
			Set("width", strokeWidth).
			Set("dashArray", strokeDash).
			Set("lineCap", "square")).
		Set("dataLabels", jsobj.NewObject().Set("enabled", false)).
		Set("xaxis", jsobj.NewObject().
			Set("type", "numeric").
			Set("tickPlacement", "dataPoints").
			Set("tooltip", jsobj.NewObject().Set("enabled", false)))
}

// hexColor resolves a style color, a palette name or verbatim hex
// literal, to the hex form the chart library takes; "" if unset.
func hexColor(c string) string {
	if c == "" || strings.HasPrefix(c, "#") {
		return c
	}
	return colors.AsHex(errors.Log1(colors.FromName(c)))
}
