// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prim

import (
	"image"
	"image/color"

	"cogentcore.org/prim/paint"
)

// TextRasterizer renders text labels into images.
// [paint.TextRenderer] is the default implementation.
type TextRasterizer interface {
	// Measure returns the width and height in pixels of the given text
	// in the given font and size in points.
	Measure(text, font string, size float64) (w, h float64, err error)

	// Rasterize returns an image of the given text in the given font,
	// size and color, including any padding.
	Rasterize(text, font string, size float64, clr color.Color) (*image.RGBA, error)
}

var _ TextRasterizer = (*paint.TextRenderer)(nil)
