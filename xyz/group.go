// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/prim/math64"
)

// Group collects individual elements in a scene but does not have a Mesh or
// Material of its own. It does have a transform that applies to all nodes under it.
type Group struct {
	NodeBase

	// Children are the nodes in the group, in order.
	Children []Node
}

// NewGroup returns a new empty [Group] with the given name.
func NewGroup(name string) *Group {
	gp := &Group{}
	gp.init(name)
	return gp
}

func (gp *Group) NodeType() NodeTypes {
	return GroupNode
}

// Add appends the given nodes to the group.
func (gp *Group) Add(kids ...Node) *Group {
	gp.Children = append(gp.Children, kids...)
	return gp
}

// LocalBBox aggregates the bounding boxes of the children,
// each with its own pose applied.
func (gp *Group) LocalBBox() math64.Box3 {
	bb := math64.B3Empty()
	for _, kid := range gp.Children {
		bb.ExpandByBox(WorldBBox(kid))
	}
	return bb
}

// SetPos sets the [Pose.Pos] position of the group
func (gp *Group) SetPos(pos math64.Vector3) *Group {
	gp.Pose.Pos = pos
	return gp
}
