// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to use float64 throughout.

package math64

import "math"

// Box3 represents a 3D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float64) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns a new [Box3] with empty minimum and maximum values.
func B3Empty() Box3 {
	bx := Box3{}
	bx.SetEmpty()
	return bx
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity)
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(math.Inf(1))
	b.Max.SetScalar(math.Inf(-1))
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box3) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByBox may expand this bounding box to include the specified box
func (b *Box3) ExpandByBox(box Box3) {
	if box.IsEmpty() {
		return
	}
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// Center returns the center of the bounding box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box3) ContainsPoint(point Vector3) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z {
		return false
	}
	return true
}

// Translate returns translated position of this box by offset.
func (b Box3) Translate(offset Vector3) Box3 {
	return Box3{b.Min.Add(offset), b.Max.Add(offset)}
}

// MulMatrix4 multiplies the specified matrix to the vertices of this bounding box
// and computes the resulting spanning Box3 of the transformed points
func (b Box3) MulMatrix4(m *Matrix4) Box3 {
	if b.IsEmpty() {
		return b
	}
	xax := m[0] * b.Min.X
	xay := m[1] * b.Min.X
	xaz := m[2] * b.Min.X
	xbx := m[0] * b.Max.X
	xby := m[1] * b.Max.X
	xbz := m[2] * b.Max.X
	yax := m[4] * b.Min.Y
	yay := m[5] * b.Min.Y
	yaz := m[6] * b.Min.Y
	ybx := m[4] * b.Max.Y
	yby := m[5] * b.Max.Y
	ybz := m[6] * b.Max.Y
	zax := m[8] * b.Min.Z
	zay := m[9] * b.Min.Z
	zaz := m[10] * b.Min.Z
	zbx := m[8] * b.Max.Z
	zby := m[9] * b.Max.Z
	zbz := m[10] * b.Max.Z

	nb := Box3{}
	nb.Min.X = min(xax, xbx) + min(yax, ybx) + min(zax, zbx) + m[12]
	nb.Min.Y = min(xay, xby) + min(yay, yby) + min(zay, zby) + m[13]
	nb.Min.Z = min(xaz, xbz) + min(yaz, ybz) + min(zaz, zbz) + m[14]
	nb.Max.X = max(xax, xbx) + max(yax, ybx) + max(zax, zbx) + m[12]
	nb.Max.Y = max(xay, xby) + max(yay, yby) + max(zay, zby) + m[13]
	nb.Max.Z = max(xaz, xbz) + max(yaz, ybz) + max(zaz, zbz) + m[14]
	return nb
}
