// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/prim/math64"
)

// Mesh is an indexed triangle mesh used for the shape of a [Solid]
// or a flat [Marker]. Shape types embed [MeshBase] and generate
// their vertex data when created.
type Mesh interface {
	// AsMeshBase returns the [MeshBase] for this Mesh,
	// which holds the vertex data.
	AsMeshBase() *MeshBase
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {
	// Name is the name of the mesh, typically the shape type.
	Name string

	// Vertex has the packed x,y,z vertex positions.
	Vertex math64.ArrayF64

	// Normal has the packed x,y,z vertex normals, one per vertex.
	Normal math64.ArrayF64

	// TexCoord has the packed u,v texture coordinates, one per vertex.
	TexCoord math64.ArrayF64

	// Index has the vertex indexes, three per triangle.
	Index math64.ArrayU32

	// BBox is the bounding box of the vertices.
	BBox math64.Box3
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

// Reset clears all vertex data.
func (ms *MeshBase) Reset() {
	ms.Vertex = ms.Vertex[:0]
	ms.Normal = ms.Normal[:0]
	ms.TexCoord = ms.TexCoord[:0]
	ms.Index = ms.Index[:0]
	ms.BBox.SetEmpty()
}

// NumVertex returns the number of vertices.
func (ms *MeshBase) NumVertex() int {
	return ms.Vertex.Len() / 3
}

// NumTriangles returns the number of triangles.
func (ms *MeshBase) NumTriangles() int {
	return ms.Index.Len() / 3
}

// Triangle returns the vertex positions of the given triangle.
func (ms *MeshBase) Triangle(i int) (a, b, c math64.Vector3) {
	a = ms.Vertex.Vector3(int(ms.Index[3*i]))
	b = ms.Vertex.Vector3(int(ms.Index[3*i+1]))
	c = ms.Vertex.Vector3(int(ms.Index[3*i+2]))
	return
}

// UpdateBBox recomputes the bounding box from the vertices.
func (ms *MeshBase) UpdateBBox() {
	ms.BBox.SetEmpty()
	n := ms.NumVertex()
	for i := 0; i < n; i++ {
		ms.BBox.ExpandByPoint(ms.Vertex.Vector3(i))
	}
}

// ComputeNorms computes smooth vertex normals by accumulating the normal
// of every triangle onto each of its vertices and normalizing the sums.
// Vertices that are not shared get the flat normal of their triangle.
func (ms *MeshBase) ComputeNorms() {
	n := ms.NumVertex()
	norms := math64.NewArrayF64(3*n, 3*n)
	nt := ms.NumTriangles()
	for t := 0; t < nt; t++ {
		a, b, c := ms.Triangle(t)
		// unnormalized so larger triangles weigh more
		fn := c.Sub(b).Cross(a.Sub(b))
		for k := 0; k < 3; k++ {
			vi := int(ms.Index[3*t+k])
			norms.SetVector3(vi, norms.Vector3(vi).Add(fn))
		}
	}
	for i := 0; i < n; i++ {
		norms.SetVector3(i, norms.Vector3(i).Normal())
	}
	ms.Normal = norms
}

// addVertex appends a vertex with its normal and texture coordinate,
// returning its index.
func (ms *MeshBase) addVertex(pos, norm math64.Vector3, u, v float64) uint32 {
	idx := uint32(ms.NumVertex())
	ms.Vertex.AppendVector3(pos)
	ms.Normal.AppendVector3(norm)
	ms.TexCoord.Append(u, v)
	ms.BBox.ExpandByPoint(pos)
	return idx
}

// GenMesh is a generic, arbitrary Mesh, storing its own vertex data.
// It is used for polyhedra given as explicit triangles.
type GenMesh struct {
	MeshBase
}

// NewGenMesh returns a new [GenMesh] with the given triangles,
// given as packed vertex positions and indexes into them.
// Smooth normals are computed from the triangles.
func NewGenMesh(name string, vertex math64.ArrayF64, index math64.ArrayU32) *GenMesh {
	ms := &GenMesh{}
	ms.Name = name
	ms.Vertex = vertex
	ms.Index = index
	ms.TexCoord = math64.NewArrayF64(2*ms.NumVertex(), 2*ms.NumVertex())
	ms.UpdateBBox()
	ms.ComputeNorms()
	return ms
}
