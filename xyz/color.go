// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/prim/math64"
)

// Color is an RGB color with float components nominally in the 0-1 range.
// Out of range values are kept as given, and only clamped
// when converted to 8-bit colors.
type Color struct {
	R float64 `json:"r" yaml:"r" toml:"r"`
	G float64 `json:"g" yaml:"g" toml:"g"`
	B float64 `json:"b" yaml:"b" toml:"b"`
}

var (
	// White is the default color.
	White = Color{1, 1, 1}

	// Black is the default scene background.
	Black = Color{0, 0, 0}
)

// ColorFromHex returns the [Color] for the given 0xRRGGBB value.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
	}
}

func component(v float64) uint8 {
	return uint8(math.Round(math64.Clamp(v, 0, 1) * 255))
}

// RGBA returns the opaque 8-bit [color.RGBA] for this color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{component(c.R), component(c.G), component(c.B), 255}
}

// Style returns the CSS rgb() style string for this color.
func (c Color) Style() string {
	rgba := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", rgba.R, rgba.G, rgba.B)
}

// Hex returns the #rrggbb hex string for this color.
func (c Color) Hex() string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

func (c Color) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B)
}
