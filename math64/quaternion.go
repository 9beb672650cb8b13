// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to use float64 throughout.

package math64

import (
	"fmt"
	"math"
)

// Quat is quaternion with X,Y,Z and W components.
type Quat struct {
	X float64
	Y float64
	Z float64
	W float64
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float64) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// NewQuatAxisAngle returns a new quaternion from given axis and angle rotation (radians).
func NewQuatAxisAngle(axis Vector3, angle float64) Quat {
	nq := Quat{}
	nq.SetFromAxisAngle(axis, angle)
	return nq
}

// NewQuatMatrix3 returns a new quaternion from the rotation part of the given matrix.
func NewQuatMatrix3(m *Matrix3) Quat {
	nq := Quat{}
	nq.SetFromRotationMatrix(m)
	return nq
}

func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// SetIdentity sets this quanternion to the identity quaternion.
func (q *Quat) SetIdentity() {
	q.X = 0
	q.Y = 0
	q.Z = 0
	q.W = 1
}

// IsIdentity returns if this is an identity quaternion.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// IsNil returns true if all values are 0 (uninitialized).
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// SetFromAxisAngle sets this quaternion with the rotation
// specified by the given axis and angle (radians).
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float64) {
	halfAngle := angle / 2
	s := math.Sin(halfAngle)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = math.Cos(halfAngle)
}

// SetFromRotationMatrix sets this quaternion from the specified rotation matrix.
// The matrix is assumed to be a pure rotation; other matrices give an
// approximation of their rotational part.
func (q *Quat) SetFromRotationMatrix(m *Matrix3) {
	m11 := m[0]
	m12 := m[3]
	m13 := m[6]
	m21 := m[1]
	m22 := m[4]
	m23 := m[7]
	m31 := m[2]
	m32 := m[5]
	m33 := m[8]
	trace := m11 + m22 + m33

	var s float64
	if trace > 0 {
		s = 0.5 / math.Sqrt(trace+1.0)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	} else if m11 > m22 && m11 > m33 {
		s = 2.0 * math.Sqrt(1.0+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	} else if m22 > m33 {
		s = 2.0 * math.Sqrt(1.0+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	} else {
		s = 2.0 * math.Sqrt(1.0+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
}

// Length returns the length of this quaternion
func (q Quat) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize normalizes this quaternion.
func (q *Quat) Normalize() {
	l := q.Length()
	if l == 0 {
		q.SetIdentity()
		return
	}
	l = 1 / l
	q.X *= l
	q.Y *= l
	q.Z *= l
	q.W *= l
}

// MulQuats set this quaternion to the multiplication of a by b.
func (q *Quat) MulQuats(a, b Quat) {
	qax := a.X
	qay := a.Y
	qaz := a.Z
	qaw := a.W
	qbx := b.X
	qby := b.Y
	qbz := b.Z
	qbw := b.W

	q.X = qax*qbw + qaw*qbx + qay*qbz - qaz*qby
	q.Y = qay*qbw + qaw*qby + qaz*qbx - qax*qbz
	q.Z = qaz*qbw + qaw*qbz + qax*qby - qay*qbx
	q.W = qaw*qbw - qax*qbx - qay*qby - qaz*qbz
}

// SetMul sets this quaternion to the multiplication of itself by other.
func (q *Quat) SetMul(other Quat) {
	q.MulQuats(*q, other)
}

// Mul returns returns multiplication of this quaternion with other
func (q Quat) Mul(other Quat) Quat {
	nq := q
	nq.SetMul(other)
	return nq
}

// IsEqualTol returns whether this quaternion equals other within the given tolerance.
func (q Quat) IsEqualTol(other Quat, tol float64) bool {
	return math.Abs(q.X-other.X) <= tol && math.Abs(q.Y-other.Y) <= tol &&
		math.Abs(q.Z-other.Z) <= tol && math.Abs(q.W-other.W) <= tol
}
