// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/webplot/figure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFigure(t *testing.T) *figure.Figure {
	sr := figure.NewY([]float64{1, 2, 3})
	require.NoError(t, sr.SetStyleString("r.10~4"))
	fig, err := figure.NewBuilder().SetTitle("sines").Add(sr).Build()
	require.NoError(t, err)
	return fig
}

func TestChart(t *testing.T) {
	pg := Chart(testFigure(t))
	assert.Equal(t, "sines", pg.Name)
	assert.Contains(t, pg.HTML, ChartCDN)
	assert.Contains(t, pg.HTML, "new ApexCharts(document.querySelector('#chart'), options)")
	assert.Contains(t, pg.HTML, "data: [[0, 1], [1, 2], [2, 3]]")
	assert.Contains(t, pg.HTML, "title: {")

	// untitled figures still get a file name
	fig, err := figure.NewBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, "figure", Chart(fig).Name)
}

func TestImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	pg := Image("pixels", img)
	assert.Equal(t, "pixels", pg.Name)
	assert.Contains(t, pg.HTML, "data:image/png;base64,iVBORw0KGgo")

	mapped, err := ImageMapped("pixels", img, "viridis")
	require.NoError(t, err)
	assert.Contains(t, mapped.HTML, "data:image/png;base64,")

	_, err = ImageMapped("pixels", img, "volcano")
	assert.Error(t, err)

	// empty map name selects the default map
	_, err = ImageMapped("pixels", img, "")
	assert.NoError(t, err)
}

func TestSaveTo(t *testing.T) {
	dir := t.TempDir()
	pg := Chart(testFigure(t))

	path, err := pg.SaveTo(dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "sines-"))
	assert.True(t, strings.HasSuffix(path, ".html"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pg.HTML, string(b))

	_, err = pg.SaveTo(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	_, err = pg.SaveTo(path) // a file, not a directory
	assert.Error(t, err)
}
