// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webimg

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Map is a named color-map preset: hex color stops spaced evenly over
// [0, 1], blended perceptually between stops.
type Map struct {

	// Name is the preset name as given in an imshow color-map argument.
	Name string

	// Stops are the gradient stops as hex colors.
	Stops []string
}

// At returns the map color at t, clamped to [0, 1]. Stops are blended
// in Lab space, which keeps the perceived lightness ramp even.
func (m Map) At(t float64) color.Color {
	n := len(m.Stops)
	if n == 0 {
		return color.Black
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	seg := t * float64(n-1)
	i := int(seg)
	if i >= n-1 {
		c, _ := colorful.Hex(m.Stops[n-1])
		return c
	}
	lo, _ := colorful.Hex(m.Stops[i])
	hi, _ := colorful.Hex(m.Stops[i+1])
	return lo.BlendLab(hi, seg-float64(i)).Clamped()
}

// Valid reports whether name is one of the [Maps] presets. It is the
// validation hook handed to [styles.ParseColorMap].
func Valid(name string) bool {
	_, ok := Maps[name]
	return ok
}

// Maps is the closed set of color-map presets accepted by the image
// path. Sequential and diverging sets are the ColorBrewer scales, the
// perceptual ramps are the matplotlib ones, and the cyclical maps are
// the d3-scale-chromatic ones.
var Maps = map[string]Map{
	"viridis": {"viridis", []string{
		"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}},
	"inferno": {"inferno", []string{
		"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60",
		"#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4"}},
	"magma": {"magma", []string{
		"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f",
		"#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf"}},
	"plasma": {"plasma", []string{
		"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
		"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921"}},
	"cividis": {"cividis", []string{
		"#00224e", "#123570", "#3b496c", "#575d6d", "#707173",
		"#8a8678", "#a59c74", "#c3b369", "#e1cc55", "#fee838"}},
	"turbo": {"turbo", []string{
		"#30123b", "#4145ab", "#4675ed", "#39a2fc", "#1bcfd4",
		"#24eca6", "#61fc6c", "#a4fc3b", "#d1e834", "#fe9b2d",
		"#d93806", "#7a0402"}},
	"warm": {"warm", []string{
		"#6e40aa", "#bf3caf", "#fe4b83", "#ff7847", "#e2b72f", "#aff05b"}},
	"cool": {"cool", []string{
		"#6e40aa", "#4776eb", "#1ac7c2", "#40f373", "#aff05b"}},
	"rainbow": {"rainbow", []string{
		"#6e40aa", "#be3caf", "#fe4b83", "#ff7847", "#e2b72f",
		"#aff05b", "#52f667", "#1ddfa3", "#23abd8", "#4c6edb", "#6e40aa"}},
	"sinebow": {"sinebow", []string{
		"#ff4040", "#e78d0b", "#a7d503", "#58fb17", "#18eb6a",
		"#00c0c0", "#186aeb", "#5817fb", "#a703d5", "#e70b8d", "#ff4040"}},
	"cubehelix": {"cubehelix", []string{
		"#000000", "#163d4e", "#54792f", "#a07949", "#d07e93",
		"#c1caf3", "#d2eeef", "#ffffff"}},
	"spectral": {"spectral", []string{
		"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf",
		"#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2"}},
	"blues": {"blues", []string{
		"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
		"#4292c6", "#2171b5", "#08519c", "#08306b"}},
	"greens": {"greens", []string{
		"#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476",
		"#41ab5d", "#238b45", "#006d2c", "#00441b"}},
	"greys": {"greys", []string{
		"#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696",
		"#737373", "#525252", "#252525", "#000000"}},
	"oranges": {"oranges", []string{
		"#fff5eb", "#fee6ce", "#fdd0a2", "#fdae6b", "#fd8d3c",
		"#f16913", "#d94801", "#a63603", "#7f2704"}},
	"purples": {"purples", []string{
		"#fcfbfd", "#efedf5", "#dadaeb", "#bcbddc", "#9e9ac8",
		"#807dba", "#6a51a3", "#54278f", "#3f007d"}},
	"reds": {"reds", []string{
		"#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a",
		"#ef3b2c", "#cb181d", "#a50f15", "#67000d"}},
	"rd_bu": {"rd_bu", []string{
		"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7",
		"#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061"}},
	"rd_gy": {"rd_gy", []string{
		"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#ffffff",
		"#e0e0e0", "#bababa", "#878787", "#4d4d4d", "#1a1a1a"}},
	"rd_yl_bu": {"rd_yl_bu", []string{
		"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee090", "#ffffbf",
		"#e0f3f8", "#abd9e9", "#74add1", "#4575b4", "#313695"}},
	"rd_yl_gn": {"rd_yl_gn", []string{
		"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee08b", "#ffffbf",
		"#d9ef8b", "#a6d96a", "#66bd63", "#1a9850", "#006837"}},
	"br_bg": {"br_bg", []string{
		"#543005", "#8c510a", "#bf812d", "#dfc27d", "#f6e8c3", "#f5f5f5",
		"#c7eae5", "#80cdc1", "#35978f", "#01665e", "#003c30"}},
	"pr_gn": {"pr_gn", []string{
		"#40004b", "#762a83", "#9970ab", "#c2a5cf", "#e7d4e8", "#f7f7f7",
		"#d9f0d3", "#a6dba0", "#5aae61", "#1b7837", "#00441b"}},
	"pi_yg": {"pi_yg", []string{
		"#8e0152", "#c51b7d", "#de77ae", "#f1b6da", "#fde0ef", "#f7f7f7",
		"#e6f5d0", "#b8e186", "#7fbc41", "#4d9221", "#276419"}},
	"pu_or": {"pu_or", []string{
		"#7f3b08", "#b35806", "#e08214", "#fdb863", "#fee0b6", "#f7f7f7",
		"#d8daeb", "#b2abd2", "#8073ac", "#542788", "#2d004b"}},
}
