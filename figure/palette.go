// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

// Palettes are the color cycles used for series without an explicit
// color. Each palette holds five hex colors, cycled in series order.
var Palettes = [10][5]string{
	{"#008ffb", "#00e396", "#feb019", "#ff4560", "#775dd0"},
	{"#3f51b5", "#03a9f4", "#4caf50", "#f9ce1d", "#ff9800"},
	{"#33b2df", "#546e7a", "#d4526e", "#13d8aa", "#a5978b"},
	{"#4ecdc4", "#c7f464", "#81d4fa", "#546e7a", "#fd6a6a"},
	{"#2b908f", "#f9a3a4", "#90ee7e", "#fa4443", "#69d2e7"},
	{"#449dd1", "#f86624", "#ea3546", "#662e9b", "#c5d86d"},
	{"#d7263d", "#1b998b", "#2e294e", "#f46036", "#e2c044"},
	{"#662e9b", "#f86624", "#f9c80e", "#ea3546", "#43bccd"},
	{"#5c4742", "#a5978b", "#8d5b4c", "#5a2a27", "#C4bbaf"},
	{"#a300d6", "#7d02eb", "#5653fe", "#2983ff", "#00b1f2"},
}

// PaletteColors returns the figure's palette cycle. Out-of-range
// indices, negative included, wrap modulo the palette count.
func (fig *Figure) PaletteColors() [5]string {
	n := len(Palettes)
	return Palettes[((fig.Palette%n)+n)%n]
}
