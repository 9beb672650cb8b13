// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/prim/math64"
)

// Node is the interface for all nodes in a [Scene]:
// [Solid], [Group], [Lines], [Marker] and [Label].
type Node interface {
	// AsNodeBase returns the [NodeBase] for this node,
	// which holds its name and [Pose].
	AsNodeBase() *NodeBase

	// NodeType returns the type of this node.
	NodeType() NodeTypes

	// LocalBBox returns the bounding box of the node in its own
	// coordinate frame, before its [Pose] is applied.
	LocalBBox() math64.Box3
}

// NodeBase is the common part of every [Node].
type NodeBase struct {
	// Name is an optional name for the node, used in summaries.
	Name string

	// Pose is the position, orientation and scale of the node
	// relative to its parent.
	Pose Pose
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

// init sets the default pose and the given name.
func (nb *NodeBase) init(name string) {
	nb.Name = name
	nb.Pose.Defaults()
}

// WorldBBox returns the bounding box of the given node in its parent's
// coordinate frame, with its [Pose] applied.
func WorldBBox(n Node) math64.Box3 {
	m := n.AsNodeBase().Pose.Matrix()
	return n.LocalBBox().MulMatrix4(&m)
}

// NodeTypes are the different types of [Node].
type NodeTypes int32

const (
	// SolidNode is a [Solid]: a [Mesh] with a [Material].
	SolidNode NodeTypes = iota

	// GroupNode is a [Group] of other nodes.
	GroupNode

	// LinesNode is a [Lines] polyline.
	LinesNode

	// MarkerNode is a [Marker]: a disc or square, flat or billboard.
	MarkerNode

	// LabelNode is a [Label]: a text billboard.
	LabelNode

	// NodeTypesN is the number of node types.
	NodeTypesN
)

var nodeTypeNames = [...]string{"solid", "group", "lines", "marker", "label"}

func (nt NodeTypes) String() string {
	if nt < 0 || nt >= NodeTypesN {
		return "unknown"
	}
	return nodeTypeNames[nt]
}

// MarshalText implements [encoding.TextMarshaler].
func (nt NodeTypes) MarshalText() ([]byte, error) {
	return []byte(nt.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (nt *NodeTypes) UnmarshalText(text []byte) error {
	for i, nm := range nodeTypeNames {
		if nm == string(text) {
			*nt = NodeTypes(i)
			return nil
		}
	}
	return fmt.Errorf("xyz.NodeTypes: unknown node type %q", text)
}

// Walk calls fun on the given node and all of its descendants
// in depth-first order, along with the depth of each node.
// If fun returns false, the children of that node are skipped.
func Walk(n Node, fun func(n Node, depth int) bool) {
	walk(n, 0, fun)
}

func walk(n Node, depth int, fun func(n Node, depth int) bool) {
	if !fun(n, depth) {
		return
	}
	if gp, ok := n.(*Group); ok {
		for _, kid := range gp.Children {
			walk(kid, depth+1, fun)
		}
	}
}
