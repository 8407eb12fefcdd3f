// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package webimg prepares images for embedding in generated HTML pages:
// base64 PNG encoding for data URIs, and color-map application for
// displaying scalar data (heatmaps) with a gradient preset.
package webimg

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"

	"cogentcore.org/core/base/errors"
	"github.com/anthonynsimon/bild/effect"
	"golang.org/x/image/draw"
)

// MaxSide is the maximum width or height encoded into a page; larger
// images are downscaled first so that the data URI stays manageable.
var MaxSide = 4096

// Encode64 returns the image encoded as a base64 PNG string, ready for
// a data:image/png;base64 URI.
func Encode64(img image.Image) string {
	var b bytes.Buffer
	errors.Log(png.Encode(&b, fit(img)))
	return base64.StdEncoding.EncodeToString(b.Bytes())
}

// fit downscales the image to at most [MaxSide] on a side,
// preserving aspect ratio.
func fit(img image.Image) image.Image {
	sz := img.Bounds().Size()
	if sz.X <= MaxSide && sz.Y <= MaxSide {
		return img
	}
	w, h := sz.X, sz.Y
	if w >= h {
		h = h * MaxSide / w
		w = MaxSide
	} else {
		w = w * MaxSide / h
		h = MaxSide
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// Apply maps the image's luminance through the given color map:
// each pixel's gray value, normalized against the observed maximum,
// selects a gradient color.
func Apply(img image.Image, m Map) *image.RGBA {
	gray := effect.Grayscale(img)
	bounds := gray.Bounds()

	min, max := 255, 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := int(gray.RGBAAt(x, y).R)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t := 0.0
			if max > 0 {
				t = float64(int(gray.RGBAAt(x, y).R)-min) / float64(max)
			}
			out.Set(x, y, m.At(t))
		}
	}
	return out
}
