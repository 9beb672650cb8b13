// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/prim/math64"
)

// Lines is a connected polyline through a sequence of points,
// rendered with a constant color.
type Lines struct {
	NodeBase

	// Points are the vertices of the polyline, in order.
	Points []math64.Vector3

	// Material has the color and opacity of the line.
	Material Material
}

// NewLines returns a new [Lines] through the given points.
func NewLines(name string, points []math64.Vector3, mat Material) *Lines {
	ln := &Lines{Points: points, Material: mat}
	ln.init(name)
	return ln
}

func (ln *Lines) NodeType() NodeTypes {
	return LinesNode
}

func (ln *Lines) LocalBBox() math64.Box3 {
	bb := math64.B3Empty()
	for _, p := range ln.Points {
		bb.ExpandByPoint(p)
	}
	return bb
}

// NumSegments returns the number of line segments.
func (ln *Lines) NumSegments() int {
	return max(len(ln.Points)-1, 0)
}
