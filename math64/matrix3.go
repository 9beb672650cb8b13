// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

// Matrix3 is a 3x3 matrix organized internally as column matrix.
type Matrix3 [9]float64

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	m := Matrix3{}
	m.SetIdentity()
	return m
}

// Matrix3FromBasis returns a [Matrix3] whose columns are the given axes.
func Matrix3FromBasis(xAxis, yAxis, zAxis Vector3) Matrix3 {
	m := Matrix3{}
	m.SetBasis(xAxis, yAxis, zAxis)
	return m
}

// Set sets all the elements of the matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix3) Set(n11, n12, n13, n21, n22, n23, n31, n32, n33 float64) {
	m[0] = n11
	m[3] = n12
	m[6] = n13
	m[1] = n21
	m[4] = n22
	m[7] = n23
	m[2] = n31
	m[5] = n32
	m[8] = n33
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix3) SetIdentity() {
	m.Set(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// IsIdentity returns true if this matrix is the identity matrix.
func (m *Matrix3) IsIdentity() bool {
	return *m == Identity3()
}

// SetBasis sets this matrix so that its columns are the given axes.
func (m *Matrix3) SetBasis(xAxis, yAxis, zAxis Vector3) {
	m.Set(
		xAxis.X, yAxis.X, zAxis.X,
		xAxis.Y, yAxis.Y, zAxis.Y,
		xAxis.Z, yAxis.Z, zAxis.Z,
	)
}

// Column returns the given column (0..2) as a vector.
func (m *Matrix3) Column(i int) Vector3 {
	return Vector3{m[3*i], m[3*i+1], m[3*i+2]}
}

// SetMul sets this matrix to this matrix * other.
func (m *Matrix3) SetMul(other *Matrix3) {
	m.MulMatrices(*m, *other)
}

// Mul returns this matrix times other matrix (this matrix is unchanged).
func (m *Matrix3) Mul(other *Matrix3) Matrix3 {
	nm := Matrix3{}
	nm.MulMatrices(*m, *other)
	return nm
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., a*b).
func (m *Matrix3) MulMatrices(a, b Matrix3) {
	a11 := a[0]
	a12 := a[3]
	a13 := a[6]
	a21 := a[1]
	a22 := a[4]
	a23 := a[7]
	a31 := a[2]
	a32 := a[5]
	a33 := a[8]

	b11 := b[0]
	b12 := b[3]
	b13 := b[6]
	b21 := b[1]
	b22 := b[4]
	b23 := b[7]
	b31 := b[2]
	b32 := b[5]
	b33 := b[8]

	m[0] = a11*b11 + a12*b21 + a13*b31
	m[3] = a11*b12 + a12*b22 + a13*b32
	m[6] = a11*b13 + a12*b23 + a13*b33

	m[1] = a21*b11 + a22*b21 + a23*b31
	m[4] = a21*b12 + a22*b22 + a23*b32
	m[7] = a21*b13 + a22*b23 + a23*b33

	m[2] = a31*b11 + a32*b21 + a33*b31
	m[5] = a31*b12 + a32*b22 + a33*b32
	m[8] = a31*b13 + a32*b23 + a33*b33
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix3) Determinant() float64 {
	return m[0]*m[4]*m[8] -
		m[0]*m[5]*m[7] -
		m[1]*m[3]*m[8] +
		m[1]*m[5]*m[6] +
		m[2]*m[3]*m[7] -
		m[2]*m[4]*m[6]
}

// Transpose returns the transpose of this matrix.
func (m *Matrix3) Transpose() Matrix3 {
	nm := *m
	nm[1], nm[3] = m[3], m[1]
	nm[2], nm[6] = m[6], m[2]
	nm[5], nm[7] = m[7], m[5]
	return nm
}

// SetRotationX sets this matrix to a rotation about the X axis by the given angle in radians.
func (m *Matrix3) SetRotationX(theta float64) {
	c, s := CosSin(theta)
	m.Set(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// SetRotationY sets this matrix to a rotation about the Y axis by the given angle in radians.
func (m *Matrix3) SetRotationY(theta float64) {
	c, s := CosSin(theta)
	m.Set(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}
