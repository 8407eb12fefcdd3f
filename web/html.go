// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package web renders figures to self-contained HTML pages and shows
// them: charts through apexcharts, images through data URIs, with
// saving and browser-opening helpers.
package web

import (
	"fmt"
	"image"

	"cogentcore.org/webplot/figure"
	"cogentcore.org/webplot/styles"
	"cogentcore.org/webplot/webimg"
)

// ChartCDN is the script source for the charting library.
var ChartCDN = "https://cdn.jsdelivr.net/npm/apexcharts"

// elementID is the id of the chart or image element in generated pages.
const elementID = "chart"

func stylesheet(id string) string {
	return fmt.Sprintf("#%s {height: 100%%; width: auto; padding: 0; margin: 0; display: flex; align-items: center; justify-content: center;}", id)
}

// Page is a named, fully rendered HTML document, ready to save or open.
type Page struct {

	// Name is used for the saved file name.
	Name string

	// HTML is the page source.
	HTML string
}

// Chart renders the figure to a chart [Page]. The page name is the
// figure title, or "figure" if none is set.
func Chart(fig *figure.Figure) *Page {
	name := fig.Title
	if name == "" {
		name = "figure"
	}
	html := fmt.Sprintf(`<script src='%s'></script>
<style>%s</style>
<div id='%s'></div>
<script>
    const options = %s;
    const chart = new ApexCharts(document.querySelector('#%s'), options);
    chart.render();
</script>`, ChartCDN, stylesheet(elementID), elementID, fig.Options().Pretty(), elementID)
	return &Page{Name: name, HTML: html}
}

// Image renders the image to a [Page] embedding it as a data URI.
func Image(name string, img image.Image) *Page {
	if name == "" {
		name = "figure"
	}
	html := fmt.Sprintf(`<style>%s</style>
<img id='%s' src='data:image/png;base64,%s'>`, stylesheet(elementID), elementID, webimg.Encode64(img))
	return &Page{Name: name, HTML: html}
}

// ImageMapped renders the image through the named color map (see
// [styles.ParseColorMap] and [webimg.Maps]); an empty name selects
// the default map. The error is a parse failure of the map name.
func ImageMapped(name string, img image.Image, mapName string) (*Page, error) {
	mapName, err := parseMap(mapName)
	if err != nil {
		return nil, err
	}
	return Image(name, webimg.Apply(img, webimg.Maps[mapName])), nil
}

func parseMap(name string) (string, error) {
	return styles.ParseColorMap(name, webimg.Valid)
}
