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

// Cylinder is a generalized cylinder shape, including a cone
// or truncated cone by having different size circles at either end,
// and a sector of it by having an angle length less than 2 Pi.
// Height is along the Z axis, centered at the origin.
type Cylinder struct {
	MeshBase

	// Height is the height of the cylinder.
	Height float64

	// TopRad is the radius of the top (+Z) end; 0 for a cone.
	TopRad float64

	// BotRad is the radius of the bottom (-Z) end.
	BotRad float64

	// RadialSegs is the number of radial segments.
	RadialSegs int

	// HeightSegs is the number of height segments.
	HeightSegs int

	// AngStart is the starting angle in radians, counter-clockwise from +X.
	AngStart float64

	// AngLen is the total angle to generate in radians (max 2 Pi).
	AngLen float64

	// Top is whether to close the top end with a cap.
	Top bool

	// Bottom is whether to close the bottom end with a cap.
	Bottom bool
}

// NewCylinder returns a new closed [Cylinder] mesh with the given
// height, radius and number of radial segments.
func NewCylinder(name string, height, radius float64, radialSegs int) *Cylinder {
	return NewCylinderSector(name, height, radius, radius, radialSegs, 1, 0, 2*math.Pi, true, true)
}

// NewCylinderSector returns a new generalized cylinder (truncated cone) sector
// mesh with the given top and bottom radii, height, number of radial and height
// segments, sector start angle and length in radians, and presence of a top
// and/or bottom cap.
func NewCylinderSector(name string, height, topRad, botRad float64, radialSegs, heightSegs int, angStart, angLen float64, top, bottom bool) *Cylinder {
	cy := &Cylinder{Height: height, TopRad: topRad, BotRad: botRad, RadialSegs: max(radialSegs, 1),
		HeightSegs: max(heightSegs, 1), AngStart: angStart, AngLen: angLen, Top: top, Bottom: bottom}
	cy.Name = name
	cy.Make()
	return cy
}

// Make generates the vertex data for the cylinder.
func (cy *Cylinder) Make() {
	cy.Reset()
	cy.AddCylinderSector(cy.Height, cy.TopRad, cy.BotRad, cy.RadialSegs, cy.HeightSegs, cy.AngStart, cy.AngLen, cy.Top, cy.Bottom, math64.Vector3{})
}

// AddCylinderSector adds a generalized cylinder (truncated cone) sector
// with the given top and bottom radii, height, number of radial and height
// segments, sector start angle and length in radians (counter-clockwise
// about +Z from +X), and presence of a top and/or bottom cap.
// Height is along the Z axis; offset is an arbitrary offset.
func (ms *MeshBase) AddCylinderSector(height, topRad, botRad float64, radialSegs, heightSegs int, angStart, angLen float64, top, bottom bool, offset math64.Vector3) {
	hHt := height / 2
	tanTheta := 0.0
	if height != 0 {
		tanTheta = (botRad - topRad) / height
	}

	vtxs := make([][]uint32, 0, heightSegs+1)
	for y := 0; y <= heightSegs; y++ {
		v := float64(y) / float64(heightSegs)
		radius := topRad + v*(botRad-topRad)
		row := make([]uint32, 0, radialSegs+1)
		for x := 0; x <= radialSegs; x++ {
			u := float64(x) / float64(radialSegs)
			c, s := math64.CosSin(angStart + u*angLen)
			pt := math64.Vec3(radius*c, radius*s, hHt-v*height).Add(offset)
			norm := math64.Vec3(c, s, tanTheta).Normal()
			row = append(row, ms.addVertex(pt, norm, u, 1-v))
		}
		vtxs = append(vtxs, row)
	}

	for x := 0; x < radialSegs; x++ {
		for y := 0; y < heightSegs; y++ {
			v1 := vtxs[y][x]
			v2 := vtxs[y+1][x]
			v3 := vtxs[y+1][x+1]
			v4 := vtxs[y][x+1]
			// a zero radius end collapses to the apex
			if y != 0 || topRad != 0 {
				ms.Index.Append(v1, v2, v4)
			}
			if y != heightSegs-1 || botRad != 0 {
				ms.Index.Append(v4, v2, v3)
			}
		}
	}

	if top && topRad > 0 {
		ms.addCap(topRad, radialSegs, angStart, angLen, offset.Add(math64.Vec3(0, 0, hHt)), false)
	}
	if bottom && botRad > 0 {
		ms.addCap(botRad, radialSegs, angStart, angLen, offset.Add(math64.Vec3(0, 0, -hHt)), true)
	}
}

// addCap adds a flat disk sector cap centered at center, facing +Z,
// or -Z if down.
func (ms *MeshBase) addCap(radius float64, segs int, angStart, angLen float64, center math64.Vector3, down bool) {
	norm := math64.Vec3(0, 0, 1)
	if down {
		norm.Z = -1
	}
	ci := ms.addVertex(center, norm, 0.5, 0.5)
	first := uint32(ms.NumVertex())
	for x := 0; x <= segs; x++ {
		c, s := math64.CosSin(angStart + float64(x)/float64(segs)*angLen)
		ms.addVertex(center.Add(math64.Vec3(radius*c, radius*s, 0)), norm, (c+1)/2, (s+1)/2)
	}
	for x := uint32(0); x < uint32(segs); x++ {
		if down {
			ms.Index.Append(ci, first+x+1, first+x)
		} else {
			ms.Index.Append(ci, first+x, first+x+1)
		}
	}
}

// Ring is a flat annulus or annulus sector in the XY plane.
type Ring struct {
	MeshBase

	// InnerRad is the inner radius; 0 for a full disk.
	InnerRad float64

	// OuterRad is the outer radius.
	OuterRad float64

	// Segs is the number of segments around the ring.
	Segs int

	// AngStart is the starting angle in radians, counter-clockwise from +X.
	AngStart float64

	// AngLen is the total angle in radians.
	AngLen float64

	// Down is whether the ring faces -Z instead of +Z.
	Down bool
}

// NewRingSector returns a new [Ring] sector mesh with the given inner and
// outer radii, number of segments, sector start angle and length in radians,
// facing -Z if down.
func NewRingSector(name string, innerRad, outerRad float64, segs int, angStart, angLen float64, down bool) *Ring {
	rg := &Ring{InnerRad: innerRad, OuterRad: outerRad, Segs: max(segs, 3), AngStart: angStart, AngLen: angLen, Down: down}
	rg.Name = name
	rg.Make()
	return rg
}

// Make generates the vertex data for the ring.
func (rg *Ring) Make() {
	rg.Reset()
	rg.AddRingSector(rg.InnerRad, rg.OuterRad, rg.Segs, rg.AngStart, rg.AngLen, rg.Down, math64.Vector3{})
}

// AddRingSector adds a flat annulus sector between the given inner and outer
// radii with the given number of segments, sector start angle and length in
// radians, facing +Z, or -Z if down.
func (ms *MeshBase) AddRingSector(innerRad, outerRad float64, segs int, angStart, angLen float64, down bool, offset math64.Vector3) {
	norm := math64.Vec3(0, 0, 1)
	if down {
		norm.Z = -1
	}
	inner := make([]uint32, segs+1)
	outer := make([]uint32, segs+1)
	for x := 0; x <= segs; x++ {
		u := float64(x) / float64(segs)
		c, s := math64.CosSin(angStart + u*angLen)
		inner[x] = ms.addVertex(offset.Add(math64.Vec3(innerRad*c, innerRad*s, 0)), norm, u, 0)
		outer[x] = ms.addVertex(offset.Add(math64.Vec3(outerRad*c, outerRad*s, 0)), norm, u, 1)
	}
	for x := 0; x < segs; x++ {
		i1, o1, o2, i2 := inner[x], outer[x], outer[x+1], inner[x+1]
		if down {
			ms.Index.Append(i1, o2, o1)
		} else {
			ms.Index.Append(i1, o1, o2)
		}
		if innerRad == 0 {
			continue
		}
		if down {
			ms.Index.Append(i1, i2, o2)
		} else {
			ms.Index.Append(i1, o2, i2)
		}
	}
}
