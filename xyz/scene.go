// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/prim/math64"
)

// OverlayText is a 2D text annotation drawn on top of the rendered scene,
// not part of the 3D world.
type OverlayText struct {
	// X is the horizontal position in millimeters.
	X float64 `json:"x" yaml:"x" toml:"x"`

	// Y is the vertical position in millimeters.
	Y float64 `json:"y" yaml:"y" toml:"y"`

	// Size is the font size in points.
	Size float64 `json:"size" yaml:"size" toml:"size"`

	// Text is the text content.
	Text string `json:"text" yaml:"text" toml:"text"`

	// Color is the CSS style string of the text color.
	Color string `json:"color" yaml:"color" toml:"color"`

	// Font is the font family name.
	Font string `json:"font" yaml:"font" toml:"font"`
}

// Scene is the output of interpreting a geometry file: an ordered list
// of top-level nodes in emission order, plus an ordered list of
// [OverlayText] annotations, along with lights and a background color.
// It is built by a single interpreter pass and is not modified afterward.
type Scene struct {
	// Name is the name of the scene, typically the source file name.
	Name string

	// Background is the background color.
	Background Color

	// Lights are the lights in the scene.
	Lights []Light

	// Children are the top-level nodes in the order they were added.
	Children []Node

	// Texts are the 2D overlay annotations in the order they were added.
	Texts []OverlayText
}

// NewScene returns a new [Scene] with a black background, a dim gray
// ambient light and a white directional light at (10, 10, 10).
func NewScene(name string) *Scene {
	sc := &Scene{Name: name, Background: Black}
	NewAmbientLight(sc, "ambient", 1, ColorFromHex(0x505050))
	NewDirLight(sc, "directional", 1, White, math64.Vec3(10, 10, 10))
	return sc
}

// Add appends the given nodes to the top level of the scene.
func (sc *Scene) Add(nodes ...Node) {
	sc.Children = append(sc.Children, nodes...)
}

// AddText appends the given overlay text.
func (sc *Scene) AddText(txt OverlayText) {
	sc.Texts = append(sc.Texts, txt)
}

// Walk calls fun on every node in the scene in depth-first order.
// If fun returns false, the children of that node are skipped.
func (sc *Scene) Walk(fun func(n Node, depth int) bool) {
	for _, n := range sc.Children {
		Walk(n, fun)
	}
}

// BBox returns the bounding box of all nodes in world coordinates.
func (sc *Scene) BBox() math64.Box3 {
	bb := math64.B3Empty()
	for _, n := range sc.Children {
		bb.ExpandByBox(WorldBBox(n))
	}
	return bb
}

// Stats summarizes the contents of a [Scene].
type Stats struct {
	// Nodes counts the nodes of each type, including nested ones.
	Nodes map[NodeTypes]int

	// Triangles is the total number of mesh triangles.
	Triangles int

	// Points is the total number of polyline points.
	Points int

	// Texts is the number of overlay texts.
	Texts int
}

// Stats returns the [Stats] for the scene.
func (sc *Scene) Stats() Stats {
	st := Stats{Nodes: map[NodeTypes]int{}, Texts: len(sc.Texts)}
	sc.Walk(func(n Node, depth int) bool {
		st.Nodes[n.NodeType()]++
		switch nd := n.(type) {
		case *Solid:
			if nd.Mesh != nil {
				st.Triangles += nd.Mesh.AsMeshBase().NumTriangles()
			}
		case *Marker:
			if nd.Mesh != nil {
				st.Triangles += nd.Mesh.AsMeshBase().NumTriangles()
			}
		case *Lines:
			st.Points += len(nd.Points)
		}
		return true
	})
	return st
}

// Textures returns all of the billboard textures in the scene,
// in node order.
func (sc *Scene) Textures() []*Texture {
	var txs []*Texture
	sc.Walk(func(n Node, depth int) bool {
		switch nd := n.(type) {
		case *Marker:
			if nd.Texture != nil {
				txs = append(txs, nd.Texture)
			}
		case *Label:
			if nd.Texture != nil {
				txs = append(txs, nd.Texture)
			}
		}
		return true
	})
	return txs
}
