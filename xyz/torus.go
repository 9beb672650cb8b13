// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"math"

	"cogentcore.org/prim/math64"
)

// Torus is a torus mesh in the XY plane, defined by the radius of the solid
// tube and the larger radius of the ring, possibly only a sector of the ring.
type Torus struct {
	MeshBase

	// Radius is the larger radius of the torus ring.
	Radius float64

	// TubeRadius is the radius of the solid tube.
	TubeRadius float64

	// RadialSegs is the number of segments around the tube.
	RadialSegs int

	// TubeSegs is the number of segments along the ring.
	TubeSegs int

	// AngStart is the starting ring angle in radians, counter-clockwise from +X.
	AngStart float64

	// AngLen is the total ring angle in radians (max 2 Pi).
	AngLen float64
}

// NewTorusSector returns a new [Torus] sector mesh with the given ring radius,
// tube radius, number of segments around the tube and along the ring, and
// ring sector start angle and length in radians.
func NewTorusSector(name string, radius, tubeRadius float64, radialSegs, tubeSegs int, angStart, angLen float64) *Torus {
	tr := &Torus{Radius: radius, TubeRadius: tubeRadius, RadialSegs: max(radialSegs, 2), TubeSegs: max(tubeSegs, 3),
		AngStart: angStart, AngLen: angLen}
	tr.Name = name
	tr.Make()
	return tr
}

// Make generates the vertex data for the torus.
func (tr *Torus) Make() {
	tr.Reset()
	tr.AddTorusSector(tr.Radius, tr.TubeRadius, tr.RadialSegs, tr.TubeSegs, tr.AngStart, tr.AngLen, math64.Vector3{})
}

// AddTorusSector adds a torus sector with the given ring radius, tube radius,
// number of segments around the tube and along the ring, and ring sector
// start angle and length in radians. offset is an arbitrary offset.
func (ms *MeshBase) AddTorusSector(radius, tubeRadius float64, radialSegs, tubeSegs int, angStart, angLen float64, offset math64.Vector3) {
	st := uint32(ms.NumVertex())
	for j := 0; j <= radialSegs; j++ {
		for i := 0; i <= tubeSegs; i++ {
			cu, su := math64.CosSin(angStart + float64(i)/float64(tubeSegs)*angLen)
			cv, sv := math64.CosSin(float64(j) / float64(radialSegs) * math.Pi * 2)
			center := math64.Vec3(radius*cu, radius*su, 0)
			pt := math64.Vec3((radius+tubeRadius*cv)*cu, (radius+tubeRadius*cv)*su, tubeRadius*sv)
			ms.addVertex(pt.Add(offset), pt.Sub(center).Normal(), float64(i)/float64(tubeSegs), float64(j)/float64(radialSegs))
		}
	}

	for j := 1; j <= radialSegs; j++ {
		for i := 1; i <= tubeSegs; i++ {
			a := st + uint32((tubeSegs+1)*j+i-1)
			b := st + uint32((tubeSegs+1)*(j-1)+i-1)
			c := st + uint32((tubeSegs+1)*(j-1)+i)
			d := st + uint32((tubeSegs+1)*j+i)
			ms.Index.Append(a, b, d, b, c, d)
		}
	}
}
