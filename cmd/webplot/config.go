// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"cogentcore.org/webplot/figure"
	"cogentcore.org/webplot/styles"
	"cogentcore.org/webplot/web"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the webplot defaults, overridable by a webplot.toml or
// webplot.yaml file in the working directory and by command flags.
type Config struct {

	// Width and Height are the figure dimensions in pixels.
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// Palette is the color palette index for series without a color.
	Palette int `toml:"palette" yaml:"palette"`

	// MarkerSize is the marker size used when a style string gives a
	// marker shape without an explicit size.
	MarkerSize int `toml:"marker-size" yaml:"marker-size"`

	// StrokeWidth is the stroke width used when a style string gives a
	// stroke curve without an explicit width.
	StrokeWidth int `toml:"stroke-width" yaml:"stroke-width"`

	// ColorMap is the default color map for imshow.
	ColorMap string `toml:"color-map" yaml:"color-map"`

	// Browsers are tried in order when opening a page.
	Browsers []string `toml:"browsers" yaml:"browsers"`
}

// configFiles are probed in order; the first one found wins.
var configFiles = []string{"webplot.toml", "webplot.yaml"}

func defaultConfig() *Config {
	return &Config{
		Width:       figure.DefaultWidth,
		Height:      figure.DefaultHeight,
		MarkerSize:  styles.DefaultMarkerSize,
		StrokeWidth: styles.DefaultStrokeWidth,
		ColorMap:    styles.DefaultColorMap,
		Browsers:    web.Browsers,
	}
}

// loadConfig returns the defaults, updated from the first config file
// found. A missing file is not an error; a malformed one is.
func loadConfig() (*Config, error) {
	cfg := defaultConfig()
	for _, file := range configFiles {
		b, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		if file == "webplot.toml" {
			err = toml.Unmarshal(b, cfg)
		} else {
			err = yaml.Unmarshal(b, cfg)
		}
		if err != nil {
			return nil, err
		}
		break
	}
	return cfg, nil
}

// apply installs the configured defaults into the packages that use them.
func (cfg *Config) apply() {
	styles.DefaultMarkerSize = cfg.MarkerSize
	styles.DefaultStrokeWidth = cfg.StrokeWidth
	styles.DefaultColorMap = cfg.ColorMap
	web.Browsers = cfg.Browsers
}
