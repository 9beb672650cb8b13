// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/prim/math64"
)

// Box is a rectangular-shaped solid (cuboid), centered at the origin.
type Box struct {
	MeshBase

	// Size is the full size of the box along each axis.
	Size math64.Vector3
}

// NewBox returns a new [Box] mesh with the given full size.
func NewBox(name string, size math64.Vector3) *Box {
	bx := &Box{Size: size}
	bx.Name = name
	bx.Make()
	return bx
}

// Make generates the vertex data for the box.
func (bx *Box) Make() {
	bx.Reset()
	bx.AddBox(bx.Size, math64.Vector3{})
}

// AddBox adds a box with the given full size centered at offset,
// using separate vertices for each face so that normals are flat.
func (ms *MeshBase) AddBox(size, offset math64.Vector3) {
	h := size.MulScalar(0.5)
	x := math64.Vec3(h.X, 0, 0)
	y := math64.Vec3(0, h.Y, 0)
	z := math64.Vec3(0, 0, h.Z)
	ms.addQuad(offset.Add(x), y, z, math64.Vec3(1, 0, 0))
	ms.addQuad(offset.Sub(x), z, y, math64.Vec3(-1, 0, 0))
	ms.addQuad(offset.Add(y), z, x, math64.Vec3(0, 1, 0))
	ms.addQuad(offset.Sub(y), x, z, math64.Vec3(0, -1, 0))
	ms.addQuad(offset.Add(z), x, y, math64.Vec3(0, 0, 1))
	ms.addQuad(offset.Sub(z), y, x, math64.Vec3(0, 0, -1))
}

// addQuad adds a rectangle centered at center spanning +/- u and +/- v,
// where u x v points along norm, as two counter-clockwise triangles.
func (ms *MeshBase) addQuad(center, u, v, norm math64.Vector3) {
	i0 := ms.addVertex(center.Sub(u).Sub(v), norm, 0, 0)
	i1 := ms.addVertex(center.Add(u).Sub(v), norm, 1, 0)
	i2 := ms.addVertex(center.Add(u).Add(v), norm, 1, 1)
	i3 := ms.addVertex(center.Sub(u).Add(v), norm, 0, 1)
	ms.Index.Append(i0, i1, i2, i0, i2, i3)
}

// Plane is a flat rectangle in the XY plane facing +Z, centered at the origin.
type Plane struct {
	MeshBase

	// Width is the size along X.
	Width float64

	// Height is the size along Y.
	Height float64
}

// NewPlane returns a new [Plane] mesh with the given width and height.
func NewPlane(name string, width, height float64) *Plane {
	pl := &Plane{Width: width, Height: height}
	pl.Name = name
	pl.Make()
	return pl
}

// Make generates the vertex data for the plane.
func (pl *Plane) Make() {
	pl.Reset()
	pl.addQuad(math64.Vector3{}, math64.Vec3(pl.Width/2, 0, 0), math64.Vec3(0, pl.Height/2, 0), math64.Vec3(0, 0, 1))
}

// Disk is a filled circle or circle sector in the XY plane facing +Z.
type Disk struct {
	MeshBase

	// Radius is the radius of the disk.
	Radius float64

	// Segs is the number of segments around the circle.
	Segs int

	// AngStart is the starting angle in radians, counter-clockwise from +X.
	AngStart float64

	// AngLen is the total angle in radians.
	AngLen float64
}

// NewDisk returns a new full [Disk] mesh with the given radius and segments.
func NewDisk(name string, radius float64, segs int) *Disk {
	dk := &Disk{Radius: radius, Segs: segs, AngLen: 2 * math64.Pi}
	dk.Name = name
	dk.Make()
	return dk
}

// Make generates the vertex data for the disk.
func (dk *Disk) Make() {
	dk.Reset()
	dk.AddDiskSector(dk.Radius, dk.Segs, dk.AngStart, dk.AngLen, math64.Vector3{})
}

// AddDiskSector adds a disk or disk sector with the given radius,
// number of segments (minimum 3), and sector start angle and length
// in radians. Angles run counter-clockwise on the XY plane starting at +X.
func (ms *MeshBase) AddDiskSector(radius float64, segs int, angStart, angLen float64, offset math64.Vector3) {
	segs = max(segs, 3)
	norm := math64.Vec3(0, 0, 1)
	center := ms.addVertex(offset, norm, 0.5, 0.5)
	first := uint32(ms.NumVertex())
	for i := 0; i <= segs; i++ {
		c, s := math64.CosSin(angStart + float64(i)/float64(segs)*angLen)
		ms.addVertex(offset.Add(math64.Vec3(radius*c, radius*s, 0)), norm, (c+1)/2, (s+1)/2)
	}
	for i := uint32(0); i < uint32(segs); i++ {
		ms.Index.Append(center, first+i, first+i+1)
	}
}
