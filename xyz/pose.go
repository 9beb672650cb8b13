// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/prim/math64"
)

// Pose contains the full specification of position and orientation,
// always relevant to the parent element.
type Pose struct {
	// Pos is the position of center of element (relative to parent).
	Pos math64.Vector3

	// Scale is the scale of the element (relative to parent).
	Scale math64.Vector3

	// Quat is the orientation of the element as a quaternion.
	Quat math64.Quat
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale.IsNil() {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

func (ps Pose) String() string {
	return fmt.Sprintf("Pos: %v; Scale: %v; Quat: %v", ps.Pos, ps.Scale, ps.Quat)
}

// Matrix returns the transformation matrix of this pose,
// applying scale, then rotation, then translation.
func (ps *Pose) Matrix() math64.Matrix4 {
	scale := ps.Scale
	if scale.IsNil() {
		scale.Set(1, 1, 1)
	}
	q := ps.Quat
	if q.IsNil() {
		q.SetIdentity()
	}
	m := math64.Matrix4{}
	m.SetTransform(ps.Pos, q, scale)
	return m
}

// Transform returns the given local point transformed by this pose.
func (ps *Pose) Transform(p math64.Vector3) math64.Vector3 {
	m := ps.Matrix()
	return p.MulMatrix4(&m)
}

// SetBasis sets the orientation from the given basis matrix,
// whose columns are the local axes expressed in the parent frame.
// Non-orthonormal bases are approximated by their rotational part.
func (ps *Pose) SetBasis(basis *math64.Matrix3) {
	ps.Quat = math64.NewQuatMatrix3(basis)
	ps.Quat.Normalize()
}

// SetAxisRotation sets the rotation from local axis and angle in radians.
func (ps *Pose) SetAxisRotation(axis math64.Vector3, angle float64) {
	ps.Quat.SetFromAxisAngle(axis.Normal(), angle)
}

// RotateOnAxis rotates the orientation around the given local axis
// by the given angle in radians, after the current rotation.
func (ps *Pose) RotateOnAxis(axis math64.Vector3, angle float64) {
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
	ps.Quat.SetMul(math64.NewQuatAxisAngle(axis.Normal(), angle))
}
