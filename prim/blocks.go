// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prim

import (
	"log/slog"

	"cogentcore.org/prim/math64"
	"cogentcore.org/prim/xyz"
)

// BlockStates are the states of the multi-line block parser.
type BlockStates int32

const (
	// DefaultBlock is outside of any block, where commands are dispatched
	// through the command table.
	DefaultBlock BlockStates = iota

	// PolylineBlock is between /Polyline and /EndPolyline.
	PolylineBlock

	// PolyhedronBlock is between /Polyhedron and /EndPolyhedron.
	PolyhedronBlock
)

func (bs BlockStates) String() string {
	switch bs {
	case PolylineBlock:
		return "polyline"
	case PolyhedronBlock:
		return "polyhedron"
	}
	return "default"
}

// polyline collects the points of a polyline block,
// already in world coordinates.
type polyline struct {
	points []math64.Vector3
}

// polyhedron collects the untransformed vertices and
// the facets of a polyhedron block.
type polyhedron struct {
	vertices []math64.Vector3

	// facets are lists of signed 1-based vertex indexes.
	facets [][]int
}

func (ip *Interpreter) beginPolyline(a *Args) bool {
	ip.block = PolylineBlock
	ip.polyline.points = nil
	return true
}

func (ip *Interpreter) beginPolyhedron(a *Args) bool {
	ip.block = PolyhedronBlock
	ip.polyhedron.vertices = nil
	ip.polyhedron.facets = nil
	return true
}

// polylineLine handles a line inside a polyline block.
// Lines other than vertices and the end of the block are ignored.
func (ip *Interpreter) polylineLine(fields []string) {
	switch fields[0] {
	case plVertexCommand.Name:
		a, ok := plVertexCommand.Parse(fields[1:])
		if !ok {
			ip.skipped(fields[0], "malformed vertex")
			return
		}
		ip.polyline.points = append(ip.polyline.points, ip.Context.Transform(a.Vector3(0)))
	case endPolylineCommand.Name:
		ip.endPolyline()
	}
}

// endPolyline emits the polyline if it has any points,
// and returns to the default state.
func (ip *Interpreter) endPolyline() {
	pts := ip.polyline.points
	ip.polyline.points = nil
	ip.block = DefaultBlock
	if len(pts) == 0 {
		return
	}
	ip.add(xyz.NewLines(ip.nodeName("polyline"), pts, ip.Context.Material()))
}

// polyhedronLine handles a line inside a polyhedron block.
// Lines other than vertices, facets and the end of the block are ignored.
func (ip *Interpreter) polyhedronLine(fields []string) {
	switch fields[0] {
	case vertexCommand.Name:
		a, ok := vertexCommand.Parse(fields[1:])
		if !ok {
			ip.skipped(fields[0], "malformed vertex")
			return
		}
		ip.polyhedron.vertices = append(ip.polyhedron.vertices, a.Vector3(0))
	case facetCommand.Name:
		a, _ := facetCommand.Parse(fields[1:])
		if len(a.Ints) < 3 {
			ip.skipped(fields[0], "facet with fewer than 3 vertices")
			return
		}
		ip.polyhedron.facets = append(ip.polyhedron.facets, a.Ints)
	case endPolyhedronCommand.Name:
		ip.endPolyhedron()
	}
}

// vertexIndex converts a signed 1-based facet index to a 0-based
// vertex index, returning false if it is out of range.
// The sign is not used.
func vertexIndex(idx, n int) (int, bool) {
	if idx < 0 {
		idx = -idx
	}
	idx--
	return idx, idx >= 0 && idx < n
}

// endPolyhedron triangulates each facet as a fan from its first vertex,
// skipping triangles with out of range indexes, and emits the result as
// one mesh if it has any triangles. It always returns to the default state.
func (ip *Interpreter) endPolyhedron() {
	ph := ip.polyhedron
	ip.polyhedron = polyhedron{}
	ip.block = DefaultBlock
	nv := len(ph.vertices)
	if nv == 0 || len(ph.facets) == 0 {
		return
	}
	var vertex math64.ArrayF64
	var index math64.ArrayU32
	skipped := 0
	for _, facet := range ph.facets {
		for i := 0; i < len(facet)-2; i++ {
			i1, ok1 := vertexIndex(facet[0], nv)
			i2, ok2 := vertexIndex(facet[i+1], nv)
			i3, ok3 := vertexIndex(facet[i+2], nv)
			if !ok1 || !ok2 || !ok3 {
				skipped++
				continue
			}
			st := uint32(vertex.Len() / 3)
			vertex.AppendVector3(
				ip.Context.Transform(ph.vertices[i1]),
				ip.Context.Transform(ph.vertices[i2]),
				ip.Context.Transform(ph.vertices[i3]),
			)
			index.Append(st, st+1, st+2)
		}
	}
	if skipped > 0 {
		slog.Debug("prim: polyhedron triangles out of range", "line", ip.line, "skipped", skipped)
	}
	if index.Len() == 0 {
		return
	}
	ms := xyz.NewGenMesh("polyhedron", vertex, index)
	ip.add(xyz.NewSolid(ip.nodeName("polyhedron"), ms, ip.Context.Material()))
}
