// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prim

import (
	"cogentcore.org/prim/math64"
	"cogentcore.org/prim/xyz"
)

const (
	// WorldVolume is the volume name whose contents are not shown.
	WorldVolume = "World"

	// DefaultOpacity is the opacity of primitives in ordinary volumes.
	DefaultOpacity = 0.8

	// HighlightOpacity is the opacity of primitives in highlighted volumes.
	HighlightOpacity = 1.0

	// BoreOpacity is the fixed opacity of the inner surface of hollow shapes.
	BoreOpacity = 0.5
)

// HighlightVolumes returns the volumes that are always rendered as
// opaque shaded solids. Everything else is rendered as translucent
// wireframe, unless added with [Options.Highlight].
func HighlightVolumes() []string {
	return []string{"ControlRod", "FuelPin"}
}

// Context is the rendering state that commands read and modify
// over the course of a pass.
type Context struct {
	// Color is the current color.
	Color xyz.Color

	// Origin is added to all positions after the basis is applied.
	Origin math64.Vector3

	// Basis is the orientation, with the local axes as its columns.
	Basis math64.Matrix3

	// Font is the current font name for text.
	Font string

	// Divisions is the number of segments used for curved surfaces.
	Divisions int

	// Volume is the name of the current physical volume.
	Volume string

	// Skip is set while inside the [WorldVolume], and suppresses
	// all commands until the next volume directive.
	Skip bool

	// BBox is the last valid bounding box given, if any.
	// It is not used for emitting geometry.
	BBox math64.Box3

	// Highlight is the set of highlight volumes.
	Highlight map[string]bool
}

// Defaults sets the initial state from the given options:
// white, no offset, identity basis, no volume, and the
// standard highlight volumes plus those in the options.
func (cx *Context) Defaults(opts *Options) {
	cx.Color = xyz.White
	cx.Origin = math64.Vector3{}
	cx.Basis.SetIdentity()
	cx.Font = opts.Font
	cx.Divisions = opts.Divisions
	cx.Volume = ""
	cx.Skip = false
	cx.BBox = math64.B3Empty()
	cx.Highlight = map[string]bool{}
	for _, vol := range HighlightVolumes() {
		cx.Highlight[vol] = true
	}
	for _, vol := range opts.Highlight {
		cx.Highlight[vol] = true
	}
}

// SetVolume sets the current volume, skipping the world volume.
func (cx *Context) SetVolume(name string) {
	cx.Volume = name
	cx.Skip = name == WorldVolume
}

// Highlighted returns whether the current volume is a highlight volume.
func (cx *Context) Highlighted() bool {
	return cx.Highlight[cx.Volume]
}

// Opacity returns the opacity for primitives in the current volume.
func (cx *Context) Opacity() float64 {
	if cx.Highlighted() {
		return HighlightOpacity
	}
	return DefaultOpacity
}

// Wireframe returns whether meshes in the current volume are wireframe.
func (cx *Context) Wireframe() bool {
	return !cx.Highlighted()
}

// Material returns a new material with the current color,
// opacity and wireframe setting.
func (cx *Context) Material() xyz.Material {
	return xyz.NewMaterial(cx.Color, cx.Opacity(), cx.Wireframe())
}

// Transform returns the given local point in world coordinates:
// the basis is applied first, then the origin is added.
func (cx *Context) Transform(p math64.Vector3) math64.Vector3 {
	return p.MulMatrix3(&cx.Basis).Add(cx.Origin)
}

// Place sets the pose of the given node to the current origin and basis.
func (cx *Context) Place(n xyz.Node) {
	ps := &n.AsNodeBase().Pose
	ps.Pos = cx.Origin
	ps.SetBasis(&cx.Basis)
}

// SetBaseVectors sets the basis from the given x and y axis directions,
// which are normalized, with the z axis their normalized cross product.
// It returns false and leaves the basis unchanged if either vector is
// zero or they are parallel.
func (cx *Context) SetBaseVectors(x, y math64.Vector3) bool {
	nx := x.Normal()
	ny := y.Normal()
	nz := nx.Cross(ny)
	if nx.IsNil() || ny.IsNil() || nz.LengthSquared() == 0 {
		return false
	}
	cx.Basis.SetBasis(nx, ny, nz.Normal())
	return true
}
