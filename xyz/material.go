// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "fmt"

// Sides are the sides of a surface that are rendered.
type Sides int32

const (
	// FrontSide renders only the front (counter-clockwise) faces.
	FrontSide Sides = iota

	// BackSide renders only the back faces, used for the inside of bores.
	BackSide

	// DoubleSide renders both faces, used for flat markers.
	DoubleSide
)

var sideNames = [...]string{"front", "back", "double"}

func (sd Sides) String() string {
	if sd < 0 || int(sd) >= len(sideNames) {
		return "unknown"
	}
	return sideNames[sd]
}

// MarshalText implements [encoding.TextMarshaler].
func (sd Sides) MarshalText() ([]byte, error) {
	return []byte(sd.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (sd *Sides) UnmarshalText(text []byte) error {
	for i, nm := range sideNames {
		if nm == string(text) {
			*sd = Sides(i)
			return nil
		}
	}
	return fmt.Errorf("xyz.Sides: unknown side %q", text)
}

// Material describes the material properties of a surface,
// following a standard metalness / roughness model.
type Material struct {
	// Color is the main color of the surface.
	Color Color

	// Opacity is the overall opacity, 0-1. It only has an effect
	// if Transparent is set.
	Opacity float64

	// Transparent is whether the surface is rendered with transparency.
	Transparent bool

	// Wireframe is whether only the triangle edges are rendered.
	Wireframe bool

	// Side is which faces are rendered.
	Side Sides

	// Metalness is how metallic the surface looks, 0-1.
	Metalness float64

	// Roughness is how diffuse the surface looks, 0-1.
	Roughness float64

	// DepthWrite is whether rendering writes to the depth buffer.
	// It is turned off for nested translucent shells.
	DepthWrite bool
}

// Defaults sets default surface parameters:
// white, opaque, transparent enabled, front side,
// metalness 0.1 and roughness 0.6.
func (mt *Material) Defaults() {
	mt.Color = White
	mt.Opacity = 1
	mt.Transparent = true
	mt.Wireframe = false
	mt.Side = FrontSide
	mt.Metalness = 0.1
	mt.Roughness = 0.6
	mt.DepthWrite = true
}

// NewMaterial returns a default [Material] with the given color,
// opacity and wireframe setting.
func NewMaterial(clr Color, opacity float64, wireframe bool) Material {
	mt := Material{}
	mt.Defaults()
	mt.Color = clr
	mt.Opacity = opacity
	mt.Wireframe = wireframe
	return mt
}

// IsTransparent returns true if the material is rendered translucent.
func (mt *Material) IsTransparent() bool {
	return mt.Transparent && mt.Opacity < 1
}
