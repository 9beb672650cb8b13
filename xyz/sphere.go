// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from g3n: https://github.com/g3n/engine :

// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"math"

	"cogentcore.org/prim/math64"
)

// Sphere is a sphere mesh, with its poles on the Z axis.
type Sphere struct {
	MeshBase

	// Radius is the radius of the sphere.
	Radius float64

	// WidthSegs is the number of segments around the width of the sphere.
	WidthSegs int

	// HeightSegs is the number of segments from pole to pole.
	HeightSegs int
}

// NewSphere returns a new [Sphere] mesh with the given radius and
// number of width (longitude, minimum 3) and height (latitude,
// minimum 2) segments.
func NewSphere(name string, radius float64, widthSegs, heightSegs int) *Sphere {
	sp := &Sphere{Radius: radius, WidthSegs: max(widthSegs, 3), HeightSegs: max(heightSegs, 2)}
	sp.Name = name
	sp.Make()
	return sp
}

// Make generates the vertex data for the sphere.
func (sp *Sphere) Make() {
	sp.Reset()
	sp.AddSphereSector(sp.Radius, sp.WidthSegs, sp.HeightSegs, 0, 2*math.Pi, 0, math.Pi, math64.Vector3{})
}

// AddSphereSector adds a sphere sector with the given radius,
// number of segments in each dimension, azimuth start angle and length
// in radians (counter-clockwise about +Z, starting at +X), and elevation
// start angle and length in radians (0 = +Z pole, Pi = -Z pole).
// offset is an arbitrary offset (for composing shapes).
func (ms *MeshBase) AddSphereSector(radius float64, widthSegs, heightSegs int, angStart, angLen, elevStart, elevLen float64, offset math64.Vector3) {
	elevEnd := elevStart + elevLen
	vtxs := make([][]uint32, 0, heightSegs+1)
	for y := 0; y <= heightSegs; y++ {
		v := float64(y) / float64(heightSegs)
		ce, se := math64.CosSin(elevStart + v*elevLen)
		row := make([]uint32, 0, widthSegs+1)
		for x := 0; x <= widthSegs; x++ {
			u := float64(x) / float64(widthSegs)
			ca, sa := math64.CosSin(angStart + u*angLen)
			norm := math64.Vec3(ca*se, sa*se, ce)
			row = append(row, ms.addVertex(norm.MulScalar(radius).Add(offset), norm, u, v))
		}
		vtxs = append(vtxs, row)
	}

	for y := 0; y < heightSegs; y++ {
		for x := 0; x < widthSegs; x++ {
			v1 := vtxs[y][x]
			v2 := vtxs[y+1][x]
			v3 := vtxs[y+1][x+1]
			v4 := vtxs[y][x+1]
			// pole rows collapse to a single point
			if y != 0 || elevStart > 0 {
				ms.Index.Append(v1, v2, v4)
			}
			if y != heightSegs-1 || elevEnd < math.Pi {
				ms.Index.Append(v4, v2, v3)
			}
		}
	}
}
