// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package webplot describes charts as figures, styles them with compact
// style strings, and renders them to HTML pages shown in a browser.
//
// A figure is built from series of (x, y) samples, each optionally
// carrying a style string such as "r.10~4" (red, filled circle markers
// of size 10, smooth line of width 4); see [styles.ParseStyle] for the
// grammar. The same figure can equivalently be described with the
// explicit constructors in [figure] and [styles]; both descriptions
// compare equal under [figure.Figure.Equal].
//
//	ys, _ := webplot.Series(data, "r.10~4")
//	webplot.Show(ys)
package webplot

import (
	"image"

	"cogentcore.org/webplot/figure"
	"cogentcore.org/webplot/web"
)

// Series returns a new series over the implicit index range 0..len(y)-1,
// styled by the given style string ("" leaves the style unset).
func Series(y []float64, style string) (*figure.Series, error) {
	sr := figure.NewY(y)
	if style == "" {
		return sr, nil
	}
	if err := sr.SetStyleString(style); err != nil {
		return nil, err
	}
	return sr, nil
}

// SeriesXY is [Series] with explicit x coordinates, which must match
// y in length.
func SeriesXY(x, y []float64, style string) (*figure.Series, error) {
	sr, err := figure.New(x, y)
	if err != nil {
		return nil, err
	}
	if style == "" {
		return sr, nil
	}
	if err := sr.SetStyleString(style); err != nil {
		return nil, err
	}
	return sr, nil
}

// Plot builds a figure from the given series and renders it to an
// HTML page, which can be saved or opened.
func Plot(srs ...*figure.Series) (*web.Page, error) {
	fig, err := figure.NewBuilder().Add(srs...).Build()
	if err != nil {
		return nil, err
	}
	return web.Chart(fig), nil
}

// Show plots the given series and opens the result in a browser.
func Show(srs ...*figure.Series) error {
	pg, err := Plot(srs...)
	if err != nil {
		return err
	}
	return pg.Open()
}

// Imshow renders the image through the named color map ("" for the
// default map) to an HTML page. Use [web.Image] to embed an image
// as-is, without a color map.
func Imshow(name string, img image.Image, colorMap string) (*web.Page, error) {
	return web.ImageMapped(name, img, colorMap)
}
