// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/prim/math64"
)

// Document is a serializable summary of a [Scene], suitable for
// encoding as JSON, YAML or TOML. Meshes are summarized by their
// vertex and triangle counts, and textures by their pixel size.
type Document struct {
	Name       string        `json:"name" yaml:"name" toml:"name"`
	Background Color         `json:"background" yaml:"background" toml:"background"`
	Lights     []LightDoc    `json:"lights" yaml:"lights" toml:"lights"`
	Nodes      []NodeDoc     `json:"nodes" yaml:"nodes" toml:"nodes"`
	Texts      []OverlayText `json:"texts,omitempty" yaml:"texts,omitempty" toml:"texts,omitempty"`
	BBox       [2][3]float64 `json:"bbox" yaml:"bbox" toml:"bbox"`
}

// LightDoc is the serializable form of a [Light].
type LightDoc struct {
	Type   string     `json:"type" yaml:"type" toml:"type"`
	Name   string     `json:"name" yaml:"name" toml:"name"`
	Lumens float64    `json:"lumens" yaml:"lumens" toml:"lumens"`
	Color  Color      `json:"color" yaml:"color" toml:"color"`
	Pos    [3]float64 `json:"pos,omitempty" yaml:"pos,omitempty" toml:"pos,omitempty"`
}

// NodeDoc is the serializable form of a [Node].
type NodeDoc struct {
	Type  NodeTypes  `json:"type" yaml:"type" toml:"type"`
	Name  string     `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Pos   [3]float64 `json:"pos" yaml:"pos" toml:"pos"`
	Quat  [4]float64 `json:"quat" yaml:"quat" toml:"quat"`
	Scale [3]float64 `json:"scale" yaml:"scale" toml:"scale"`

	Material *MaterialDoc `json:"material,omitempty" yaml:"material,omitempty" toml:"material,omitempty"`

	Mesh      string `json:"mesh,omitempty" yaml:"mesh,omitempty" toml:"mesh,omitempty"`
	Vertices  int    `json:"vertices,omitempty" yaml:"vertices,omitempty" toml:"vertices,omitempty"`
	Triangles int    `json:"triangles,omitempty" yaml:"triangles,omitempty" toml:"triangles,omitempty"`

	Points [][3]float64 `json:"points,omitempty" yaml:"points,omitempty" toml:"points,omitempty"`

	Shape     string  `json:"shape,omitempty" yaml:"shape,omitempty" toml:"shape,omitempty"`
	Billboard bool    `json:"billboard,omitempty" yaml:"billboard,omitempty" toml:"billboard,omitempty"`
	Size      float64 `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	Text      string  `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Font      string  `json:"font,omitempty" yaml:"font,omitempty" toml:"font,omitempty"`
	Image     [2]int  `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`

	Children []NodeDoc `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// MaterialDoc is the serializable form of a [Material].
type MaterialDoc struct {
	Color      Color   `json:"color" yaml:"color" toml:"color"`
	Opacity    float64 `json:"opacity" yaml:"opacity" toml:"opacity"`
	Wireframe  bool    `json:"wireframe" yaml:"wireframe" toml:"wireframe"`
	Side       Sides   `json:"side" yaml:"side" toml:"side"`
	DepthWrite bool    `json:"depthWrite" yaml:"depthWrite" toml:"depthWrite"`
}

func vec3Array(v math64.Vector3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Export returns the [Document] for the scene.
func (sc *Scene) Export() *Document {
	doc := &Document{Name: sc.Name, Background: sc.Background, Texts: sc.Texts}
	for _, lt := range sc.Lights {
		lb := lt.AsLightBase()
		ld := LightDoc{Type: lt.LightType(), Name: lb.Name, Lumens: lb.Lumens, Color: lb.Color}
		if dl, ok := lt.(*DirLight); ok {
			ld.Pos = vec3Array(dl.Pos)
		}
		doc.Lights = append(doc.Lights, ld)
	}
	for _, n := range sc.Children {
		doc.Nodes = append(doc.Nodes, ExportNode(n))
	}
	bb := sc.BBox()
	if !bb.IsEmpty() {
		doc.BBox = [2][3]float64{vec3Array(bb.Min), vec3Array(bb.Max)}
	}
	return doc
}

func exportMaterial(mt *Material) *MaterialDoc {
	return &MaterialDoc{Color: mt.Color, Opacity: mt.Opacity, Wireframe: mt.Wireframe, Side: mt.Side, DepthWrite: mt.DepthWrite}
}

func exportMesh(nd *NodeDoc, ms Mesh) {
	if ms == nil {
		return
	}
	mb := ms.AsMeshBase()
	nd.Mesh = mb.Name
	nd.Vertices = mb.NumVertex()
	nd.Triangles = mb.NumTriangles()
}

// ExportNode returns the [NodeDoc] for the given node and its children.
func ExportNode(n Node) NodeDoc {
	ps := n.AsNodeBase().Pose
	ps.Defaults()
	nd := NodeDoc{
		Type:  n.NodeType(),
		Name:  n.AsNodeBase().Name,
		Pos:   vec3Array(ps.Pos),
		Quat:  [4]float64{ps.Quat.X, ps.Quat.Y, ps.Quat.Z, ps.Quat.W},
		Scale: vec3Array(ps.Scale),
	}
	switch x := n.(type) {
	case *Solid:
		nd.Material = exportMaterial(&x.Material)
		exportMesh(&nd, x.Mesh)
	case *Group:
		for _, kid := range x.Children {
			nd.Children = append(nd.Children, ExportNode(kid))
		}
	case *Lines:
		nd.Material = exportMaterial(&x.Material)
		for _, p := range x.Points {
			nd.Points = append(nd.Points, vec3Array(p))
		}
	case *Marker:
		nd.Material = exportMaterial(&x.Material)
		nd.Shape = x.Shape.String()
		nd.Billboard = x.Billboard
		nd.Size = x.Size
		exportMesh(&nd, x.Mesh)
		if x.Texture != nil {
			sz := x.Texture.Size()
			nd.Image = [2]int{sz.X, sz.Y}
		}
	case *Label:
		nd.Material = exportMaterial(&x.Material)
		nd.Billboard = true
		nd.Text = x.Text
		nd.Font = x.Font
		nd.Size = x.FontSize
		sz := x.Texture.Size()
		nd.Image = [2]int{sz.X, sz.Y}
	}
	return nd
}
