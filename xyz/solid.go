// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/prim/math64"
)

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and points to a mesh structure defining the shape of the solid.
type Solid struct {
	NodeBase

	// Mesh is the shape of the solid.
	Mesh Mesh

	// Material contains the material properties of the surface.
	Material Material
}

// NewSolid returns a new [Solid] with the given name, mesh and material.
func NewSolid(name string, ms Mesh, mat Material) *Solid {
	sld := &Solid{Mesh: ms, Material: mat}
	sld.init(name)
	return sld
}

func (sld *Solid) NodeType() NodeTypes {
	return SolidNode
}

func (sld *Solid) LocalBBox() math64.Box3 {
	if sld.Mesh == nil {
		return math64.B3Empty()
	}
	return sld.Mesh.AsMeshBase().BBox
}

// SetPos sets the [Pose.Pos] position of the solid
func (sld *Solid) SetPos(pos math64.Vector3) *Solid {
	sld.Pose.Pos = pos
	return sld
}

// SetColor sets the [Material.Color] of the solid
func (sld *Solid) SetColor(clr Color) *Solid {
	sld.Material.Color = clr
	return sld
}
