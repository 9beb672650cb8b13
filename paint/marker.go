// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// circleK is the Bezier control point distance for a quarter circle.
const circleK = 0.5522847498

// canvasSize returns the side of a marker canvas for the given
// half-size, including a one pixel margin on each side.
// Fractional sizes are truncated.
func canvasSize(half float64) int {
	return max(int(2*half+2), 1)
}

// fitHalf returns the given half-size reduced so that its canvas
// is no larger than [MaxTextureSize].
func fitHalf(half float64) float64 {
	if 2*half+2 <= float64(MaxTextureSize) {
		return half
	}
	return max(float64(MaxTextureSize-2)/2, 0)
}

// DiscImage returns an image of a disc of the given radius in pixels,
// filled with the given color, centered on a transparent square canvas
// of side 2*radius+2. Larger discs than fit in [MaxTextureSize] are
// drawn at the largest radius that fits.
func DiscImage(radius float64, clr color.Color) *image.RGBA {
	radius = fitHalf(radius)
	n := canvasSize(radius)
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	cx, cy := float32(radius+1), float32(radius+1)
	r := float32(radius)
	k := r * circleK

	z := vector.NewRasterizer(n, n)
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(clr), image.Point{})
	return img
}

// SquareImage returns an image of a square of side 2*half+2 pixels,
// filled with the given color over the whole canvas, and no larger
// than [MaxTextureSize].
func SquareImage(half float64, clr color.Color) *image.RGBA {
	n := canvasSize(fitHalf(half))
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	s := float32(n)

	z := vector.NewRasterizer(n, n)
	z.MoveTo(0, 0)
	z.LineTo(s, 0)
	z.LineTo(s, s)
	z.LineTo(0, s)
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(clr), image.Point{})
	return img
}
