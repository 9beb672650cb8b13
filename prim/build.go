// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prim

import (
	"log/slog"

	"cogentcore.org/prim/math64"
	"cogentcore.org/prim/xyz"
)

func (ip *Interpreter) origin(a *Args) bool {
	ip.Context.Origin = a.Vector3(0)
	return true
}

func (ip *Interpreter) colorRGB(a *Args) bool {
	ip.Context.Color = xyz.Color{R: a.Floats[0], G: a.Floats[1], B: a.Floats[2]}
	return true
}

func (ip *Interpreter) baseVector(a *Args) bool {
	return ip.Context.SetBaseVectors(a.Vector3(0), a.Vector3(3))
}

func (ip *Interpreter) fontName(a *Args) bool {
	if a.Text == "" {
		return false
	}
	ip.Context.Font = a.Text
	return true
}

// MaxDivisions is the largest number of segments used for curved
// surfaces. Larger values given with /Ndiv or [Options.Divisions]
// are clamped to it.
const MaxDivisions = 1024

func (ip *Interpreter) ndiv(a *Args) bool {
	if a.Int < 3 {
		return false
	}
	ip.Context.Divisions = clampDivisions(a.Int)
	return true
}

func clampDivisions(n int) int {
	if n > MaxDivisions {
		slog.Debug("prim: clamping divisions", "divisions", n, "max", MaxDivisions)
		return MaxDivisions
	}
	return n
}

func (ip *Interpreter) boundingBox(a *Args) bool {
	ip.Context.BBox = math64.Box3{Min: a.Vector3(0), Max: a.Vector3(3)}
	return true
}

// solid adds a new solid with the given mesh and the current material,
// placed at the current origin and basis.
func (ip *Interpreter) solid(kind string, ms xyz.Mesh) *xyz.Solid {
	sld := xyz.NewSolid(ip.nodeName(kind), ms, ip.Context.Material())
	ip.Context.Place(sld)
	ip.add(sld)
	return sld
}

// box: x y z half-lengths.
func (ip *Interpreter) box(a *Args) bool {
	hx, hy, hz := a.Floats[0], a.Floats[1], a.Floats[2]
	if hx < 0 || hy < 0 || hz < 0 {
		return false
	}
	ip.solid("box", xyz.NewBox("box", math64.Vec3(2*hx, 2*hy, 2*hz)))
	return true
}

// sphere: radius.
func (ip *Interpreter) sphere(a *Args) bool {
	r := a.Floats[0]
	if r <= 0 {
		return false
	}
	nd := ip.Context.Divisions
	ip.solid("sphere", xyz.NewSphere("sphere", r, nd, nd/2))
	return true
}

// column: radius, half-height; a closed cylinder along Z.
func (ip *Interpreter) column(a *Args) bool {
	r, dz := a.Floats[0], a.Floats[1]
	if r < 0 || dz < 0 {
		return false
	}
	ip.solid("column", xyz.NewCylinder("column", 2*dz, r, ip.Context.Divisions))
	return true
}

// cons: rmin1 rmax1 rmin2 rmax2 dz sphi dphi; a truncated cone,
// with end 1 at -dz and end 2 at +dz.
func (ip *Interpreter) cons(a *Args) bool {
	f := a.Floats
	dz := f[4]
	if dz < 0 {
		return false
	}
	rmin1 := max(0, f[0])
	rmax1 := max(rmin1, f[1])
	rmin2 := max(0, f[2])
	rmax2 := max(rmin2, f[3])
	gp := ip.shell("cons", rmin1, rmax1, rmin2, rmax2, dz, f[5], f[6], ip.Context.Material())
	ip.Context.Place(gp)
	ip.add(gp)
	return true
}

// tubs: rmin rmax dz sphi dphi; a cylindrical tube sector, which is
// a solid cylinder sector if rmin is 0. Tubes do not write depth.
func (ip *Interpreter) tubs(a *Args) bool {
	f := a.Floats
	dz := f[2]
	if f[1] < 0 || dz < 0 {
		return false
	}
	rmin := max(0, f[0])
	rmax := max(rmin, f[1])
	sphi, dphi := f[3], f[4]
	mat := ip.Context.Material()
	mat.DepthWrite = false
	var nd xyz.Node
	if rmin == 0 {
		ms := xyz.NewCylinderSector("tubs", 2*dz, rmax, rmax, ip.Context.Divisions, 1, sphi, dphi, true, true)
		nd = xyz.NewSolid(ip.nodeName("tubs"), ms, mat)
	} else {
		nd = ip.shell("tubs", rmin, rmax, rmin, rmax, dz, sphi, dphi, mat)
	}
	ip.Context.Place(nd)
	ip.add(nd)
	return true
}

// shell returns a group with the surfaces of a possibly hollow cone or
// tube sector along Z: the outer lateral surface, the inner lateral
// surface if either inner radius is non-zero, and the annular end caps.
// The radii with suffix 1 are at -dz and those with suffix 2 at +dz.
func (ip *Interpreter) shell(kind string, rmin1, rmax1, rmin2, rmax2, dz, sphi, dphi float64, mat xyz.Material) *xyz.Group {
	nd := ip.Context.Divisions
	height := 2 * dz
	gp := xyz.NewGroup(ip.nodeName(kind))

	outer := xyz.NewCylinderSector("outer", height, rmax2, rmax1, nd, 1, sphi, dphi, false, false)
	gp.Add(xyz.NewSolid("outer", outer, mat))

	if rmin1 > 0 || rmin2 > 0 {
		inner := xyz.NewCylinderSector("inner", height, rmin2, rmin1, nd, 1, sphi, dphi, false, false)
		imat := mat
		imat.Side = xyz.BackSide
		imat.Transparent = true
		imat.Opacity = BoreOpacity
		gp.Add(xyz.NewSolid("inner", inner, imat))
	}

	top := xyz.NewSolid("top", xyz.NewRingSector("top", rmin2, rmax2, nd, sphi, dphi, false), mat)
	top.SetPos(math64.Vec3(0, 0, dz))
	bot := xyz.NewSolid("bottom", xyz.NewRingSector("bottom", rmin1, rmax1, nd, sphi, dphi, true), mat)
	bot.SetPos(math64.Vec3(0, 0, -dz))
	gp.Add(top, bot)
	return gp
}

// torus: rmin rmax rtor sphi dphi; a torus sector in the XY plane
// with tube radii rmin to rmax and ring radius rtor, rotated about
// its local Y axis by sphi.
func (ip *Interpreter) torus(a *Args) bool {
	f := a.Floats
	if f[0] < 0 || f[1] < 0 || f[2] < 0 {
		return false
	}
	rmin := f[0]
	rmax := max(rmin, f[1])
	radius := f[2] + (rmax+rmin)/2
	tube := (rmax - rmin) / 2
	nd := ip.Context.Divisions
	ms := xyz.NewTorusSector("torus", radius, tube, max(nd/2, 2), nd, 0, f[4])
	sld := ip.solid("torus", ms)
	sld.Pose.RotateOnAxis(math64.Vec3(0, 1, 0), f[3])
	return true
}
