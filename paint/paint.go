// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint renders the images used for billboard markers and
// text labels: filled discs and squares, and text drawn with the
// Latin Modern fonts.
package paint

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
)

// MaxTextureSize is the maximum width or height of a rendered image.
// Larger images are scaled down to fit, keeping their aspect ratio.
var MaxTextureSize = 2048

// AsRGBA returns the given image as an [image.RGBA], returning it
// directly if it already is one, and otherwise a converted copy.
func AsRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	return clone.AsRGBA(img)
}

// FitMax returns the given image scaled down so that neither side is
// larger than maxSize, keeping the aspect ratio. Images that already
// fit are returned as is.
func FitMax(img image.Image, maxSize int) *image.RGBA {
	sz := img.Bounds().Size()
	if maxSize <= 0 || (sz.X <= maxSize && sz.Y <= maxSize) {
		return AsRGBA(img)
	}
	x, y := float64(sz.X), float64(sz.Y)
	if x >= y {
		// x is the limiting size
		y = y * float64(maxSize) / x
		x = float64(maxSize)
	} else {
		x = x * float64(maxSize) / y
		y = float64(maxSize)
	}
	return transform.Resize(img, max(int(x), 1), max(int(y), 1), transform.Linear)
}
