// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/prim/math64"
)

// MarkerShapes are the shapes of a [Marker].
type MarkerShapes int32

const (
	// DiscMarker is a filled circle.
	DiscMarker MarkerShapes = iota

	// SquareMarker is a filled square.
	SquareMarker
)

func (ms MarkerShapes) String() string {
	if ms == SquareMarker {
		return "square"
	}
	return "disc"
}

// MarshalText implements [encoding.TextMarshaler].
func (ms MarkerShapes) MarshalText() ([]byte, error) {
	return []byte(ms.String()), nil
}

// Marker is a small disc or square placed at a 3D position.
// A flat marker is a [Mesh] lying in the XY plane; a billboard
// marker always faces the camera and is drawn from its [Texture],
// sized by the [Pose] scale.
type Marker struct {
	NodeBase

	// Shape is the shape of the marker.
	Shape MarkerShapes

	// Size is the radius of a disc, or half the side of a square.
	Size float64

	// Billboard is whether the marker always faces the camera.
	Billboard bool

	// Mesh is the geometry of a flat marker; nil for billboards.
	Mesh Mesh

	// Texture is the image of a billboard marker; nil for flat markers.
	Texture *Texture

	// Material has the color and opacity of the marker.
	Material Material
}

// NewFlatMarker returns a new flat [Marker] of the given shape and size,
// using a 32 segment disc or a square plane.
func NewFlatMarker(name string, shape MarkerShapes, size float64, mat Material) *Marker {
	mk := &Marker{Shape: shape, Size: size, Material: mat}
	mk.init(name)
	mk.Material.Side = DoubleSide
	if shape == SquareMarker {
		mk.Mesh = NewPlane(name, 2*size, 2*size)
	} else {
		mk.Mesh = NewDisk(name, size, 32)
	}
	return mk
}

// NewBillboardMarker returns a new billboard [Marker] of the given shape
// and size, drawn from the given texture, scaled to the full marker width.
func NewBillboardMarker(name string, shape MarkerShapes, size float64, tex *Texture, mat Material) *Marker {
	mk := &Marker{Shape: shape, Size: size, Billboard: true, Texture: tex, Material: mat}
	mk.init(name)
	mk.Pose.Scale.Set(2*size, 2*size, 1)
	return mk
}

func (mk *Marker) NodeType() NodeTypes {
	return MarkerNode
}

// LocalBBox returns the mesh bounds for flat markers, and the unit
// square that is scaled by the pose for billboards.
func (mk *Marker) LocalBBox() math64.Box3 {
	if mk.Billboard || mk.Mesh == nil {
		return unitSquare()
	}
	return mk.Mesh.AsMeshBase().BBox
}

func unitSquare() math64.Box3 {
	return math64.B3(-0.5, -0.5, 0, 0.5, 0.5, 0)
}
