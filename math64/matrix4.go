// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to use float64 throughout.

package math64

// Matrix4 is 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float64

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	m := Matrix4{}
	m.SetIdentity()
	return m
}

// Set sets all the elements of this matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float64) {
	m[0] = n11
	m[4] = n12
	m[8] = n13
	m[12] = n14
	m[1] = n21
	m[5] = n22
	m[9] = n23
	m[13] = n24
	m[2] = n31
	m[6] = n32
	m[10] = n33
	m[14] = n34
	m[3] = n41
	m[7] = n42
	m[11] = n43
	m[15] = n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetTranslation sets this matrix to a translation matrix from the specified x, y and z values.
func (m *Matrix4) SetTranslation(x, y, z float64) {
	m.Set(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// Translation returns the translation part of this matrix.
func (m *Matrix4) Translation() Vector3 {
	return Vector3{m[12], m[13], m[14]}
}

// SetMul sets this matrix to this matrix multiplied by other.
func (m *Matrix4) SetMul(other *Matrix4) {
	m.MulMatrices(*m, *other)
}

// Mul returns this matrix multiplied by other.
func (m *Matrix4) Mul(other *Matrix4) Matrix4 {
	nm := Matrix4{}
	nm.MulMatrices(*m, *other)
	return nm
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., a*b).
func (m *Matrix4) MulMatrices(a, b Matrix4) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[k*4+r] * b[c*4+k]
			}
			m[c*4+r] = sum
		}
	}
}

// SetRotationFromQuat sets this matrix as a rotation matrix from the specified quaternion.
func (m *Matrix4) SetRotationFromQuat(q Quat) {
	x := q.X
	y := q.Y
	z := q.Z
	w := q.W
	x2 := x + x
	y2 := y + y
	z2 := z + z
	xx := x * x2
	xy := x * y2
	xz := x * z2
	yy := y * y2
	yz := y * z2
	zz := z * z2
	wx := w * x2
	wy := w * y2
	wz := w * z2

	m[0] = 1 - (yy + zz)
	m[4] = xy - wz
	m[8] = xz + wy

	m[1] = xy + wz
	m[5] = 1 - (xx + zz)
	m[9] = yz - wx

	m[2] = xz - wy
	m[6] = yz + wx
	m[10] = 1 - (xx + yy)

	// last column
	m[3] = 0
	m[7] = 0
	m[11] = 0

	// bottom row
	m[12] = 0
	m[13] = 0
	m[14] = 0
	m[15] = 1
}

// SetScale multiplies the first three columns of this matrix by the specified vector.
func (m *Matrix4) SetScale(v Vector3) {
	m[0] *= v.X
	m[4] *= v.Y
	m[8] *= v.Z
	m[1] *= v.X
	m[5] *= v.Y
	m[9] *= v.Z
	m[2] *= v.X
	m[6] *= v.Y
	m[10] *= v.Z
	m[3] *= v.X
	m[7] *= v.Y
	m[11] *= v.Z
}

// SetTransform sets this matrix to a transformation matrix for the specified position,
// rotation specified by the quaternion and scale.
func (m *Matrix4) SetTransform(pos Vector3, quat Quat, scale Vector3) {
	m.SetRotationFromQuat(quat)
	m.SetScale(scale)
	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
}
