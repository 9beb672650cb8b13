// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testTol = 1e-9

func assertVec(t *testing.T, expected, actual Vector3) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, testTol, "X")
	assert.InDelta(t, expected.Y, actual.Y, testTol, "Y")
	assert.InDelta(t, expected.Z, actual.Z, testTol, "Z")
}

func TestVector3(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, 5, 6)
	assert.Equal(t, Vec3(5, 7, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, 32.0, a.Dot(b))
	assert.Equal(t, Vec3(-3, 6, -3), a.Cross(b))
	assert.Equal(t, Vector3{}, a.DivScalar(0))
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	assert.InDelta(t, 1, b.Normal().Length(), testTol)
	assert.Equal(t, Vec3(1, 2, 3), a.Min(b))
	assert.Equal(t, Vec3(4, 5, 6), a.Max(b))
}

func TestMatrix3Basis(t *testing.T) {
	x := Vec3(0, 1, 0)
	y := Vec3(-1, 0, 0)
	m := Matrix3FromBasis(x, y, x.Cross(y))
	assertVec(t, x, Vec3(1, 0, 0).MulMatrix3(&m))
	assertVec(t, y, Vec3(0, 1, 0).MulMatrix3(&m))
	assertVec(t, Vec3(0, 0, 1), Vec3(0, 0, 1).MulMatrix3(&m))
	assert.InDelta(t, 1, m.Determinant(), testTol)

	id := Identity3()
	assert.True(t, id.IsIdentity())
	p := m.Mul(&id)
	assert.Equal(t, m, p)
	tr := m.Transpose()
	pm := m.Mul(&tr)
	assert.True(t, pm.IsIdentity())
}

func TestQuatFromRotationMatrix(t *testing.T) {
	angles := []float64{0.3, math.Pi / 2, math.Pi - 0.01, -2}
	for _, ang := range angles {
		m := Matrix3{}
		m.SetRotationX(ang)
		q := NewQuatMatrix3(&m)
		assert.True(t, q.IsEqualTol(NewQuatAxisAngle(Vec3(1, 0, 0), ang), 1e-9) ||
			q.IsEqualTol(NewQuatAxisAngle(Vec3(-1, 0, 0), -ang), 1e-9), "angle %g", ang)

		v := Vec3(0.5, -1, 2)
		assertVec(t, v.MulMatrix3(&m), v.MulQuat(q))

		m.SetRotationY(ang)
		q = NewQuatMatrix3(&m)
		assertVec(t, v.MulMatrix3(&m), v.MulQuat(q))
	}

	// general basis: a 180 degree turn about Z hits the m33 branch
	m := Matrix3FromBasis(Vec3(-1, 0, 0), Vec3(0, -1, 0), Vec3(0, 0, 1))
	q := NewQuatMatrix3(&m)
	assertVec(t, Vec3(-1, -2, 3), Vec3(1, 2, 3).MulQuat(q))
}

func TestQuatMul(t *testing.T) {
	a := NewQuatAxisAngle(Vec3(0, 0, 1), math.Pi/2)
	b := NewQuatAxisAngle(Vec3(0, 0, 1), math.Pi/2)
	ab := a.Mul(b)
	assertVec(t, Vec3(-1, 0, 0), Vec3(1, 0, 0).MulQuat(ab))

	q := NewQuat(0, 0, 0, 2)
	q.Normalize()
	assert.True(t, q.IsIdentity())
	z := Quat{}
	assert.True(t, z.IsNil())
	z.Normalize()
	assert.True(t, z.IsIdentity())
}

func TestMatrix4Transform(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(0, 0, 1), math.Pi/2)
	m := Matrix4{}
	m.SetTransform(Vec3(0, 0, 10), q, Vec3(1, 1, 1))
	assertVec(t, Vec3(0, 1, 10), Vec3(1, 0, 0).MulMatrix4(&m))
	assertVec(t, Vec3(0, 0, 10), m.Translation())

	s := Matrix4{}
	s.SetTransform(Vector3{}, Quat{W: 1}, Vec3(2, 3, 4))
	assertVec(t, Vec3(2, 3, 4), Vec3(1, 1, 1).MulMatrix4(&s))

	tr := Matrix4{}
	tr.SetTranslation(1, 2, 3)
	c := tr.Mul(&s)
	assertVec(t, Vec3(3, 5, 7), Vec3(1, 1, 1).MulMatrix4(&c))
	id := Identity4()
	assert.Equal(t, c, c.Mul(&id))
}

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoint(Vec3(-1, -2, -3))
	b.ExpandByPoint(Vec3(1, 2, 3))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec3(2, 4, 6), b.Size())
	assert.Equal(t, Vector3{}, b.Center())
	assert.True(t, b.ContainsPoint(Vec3(0.5, 0.5, 0.5)))
	assert.False(t, b.ContainsPoint(Vec3(0.5, 2.5, 0.5)))

	m := Matrix4{}
	m.SetTransform(Vec3(0, 0, 10), NewQuatAxisAngle(Vec3(0, 0, 1), math.Pi/2), Vec3(1, 1, 1))
	tb := b.MulMatrix4(&m)
	assertVec(t, Vec3(-2, -1, 7), tb.Min)
	assertVec(t, Vec3(2, 1, 13), tb.Max)

	e := B3Empty()
	e.ExpandByBox(B3Empty())
	assert.True(t, e.IsEmpty())
	e.ExpandByBox(b.Translate(Vec3(1, 0, 0)))
	assert.Equal(t, B3(0, -2, -3, 2, 2, 3), e)
}

func TestNormal(t *testing.T) {
	n := Normal(Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(0, 1, 0))
	assertVec(t, Vec3(0, 0, 1), n)
	assert.Equal(t, Vector3{}, Normal(Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(2, 0, 0)))
	assert.InDelta(t, math.Pi/2, DegToRad(90), testTol)
	assert.InDelta(t, 180, RadToDeg(math.Pi), testTol)
	assert.Equal(t, 1.0, Clamp(3.0, 0, 1))
}

func TestArray(t *testing.T) {
	a := ArrayF64{}
	a.AppendVector3(Vec3(1, 2, 3), Vec3(4, 5, 6))
	assert.Equal(t, 6, a.Len())
	assert.Equal(t, Vec3(4, 5, 6), a.Vector3(1))
	a.SetVector3(0, Vec3(7, 8, 9))
	assert.Equal(t, ArrayF64{7, 8, 9, 4, 5, 6}, a)
	u := NewArrayU32(0, 3)
	u.Append(0, 1, 2)
	assert.Equal(t, 3, u.Len())
}
