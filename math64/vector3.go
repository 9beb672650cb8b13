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

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar(scalar float64) Vector3 {
	return Vector3{scalar, scalar, scalar}
}

// Set sets this vector X, Y and Z components.
func (v *Vector3) Set(x, y, z float64) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all vector X, Y and Z components to same scalar value.
func (v *Vector3) SetScalar(s float64) {
	v.X = s
	v.Y = s
	v.Z = s
}

// SetZero sets this vector X, Y and Z components to be zero.
func (v *Vector3) SetZero() {
	v.SetScalar(0)
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// IsNil returns true if all values are 0 (uninitialized).
func (v Vector3) IsNil() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsNaN returns true if any component is NaN.
func (v Vector3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector3) FromSlice(array []float64, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector3) ToSlice(array []float64, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
}

/////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector3) AddScalar(s float64) Vector3 {
	return Vector3{v.X + s, v.Y + s, v.Z + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector3) SetAdd(other Vector3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector3) SetSub(other Vector3) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3) MulScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// SetMulScalar sets this to multiplication by scalar (i.e., *= or times-equals).
func (v *Vector3) SetMulScalar(s float64) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector3) DivScalar(scalar float64) Vector3 {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector3{}
}

// Negate returns vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Abs returns vector with Abs of each component.
func (v Vector3) Abs() Vector3 {
	return Vector3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// Min returns min of this vector components vs. other vector.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// SetMin sets this vector components to the minimum values of itself and other vector.
func (v *Vector3) SetMin(other Vector3) {
	v.X = min(v.X, other.X)
	v.Y = min(v.Y, other.Y)
	v.Z = min(v.Z, other.Z)
}

// Max returns max of this vector components vs. other vector.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// SetMax sets this vector components to the maximum value of itself and other vector.
func (v *Vector3) SetMax(other Vector3) {
	v.X = max(v.X, other.X)
	v.Y = max(v.Y, other.Y)
	v.Z = max(v.Z, other.Z)
}

// IsEqual returns if this vector is equal to other.
func (v Vector3) IsEqual(other Vector3) bool {
	return (other.X == v.X) && (other.Y == v.Y) && (other.Z == v.Z)
}

/////////////////////////////////////////////////////////////
//  Distance, Norm

// Dot returns the dot product of this vector with other.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of this vector with other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{v.Y*other.Z - v.Z*other.Y, v.Z*other.X - v.X*other.Z, v.X*other.Y - v.Y*other.X}
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors.
func (v Vector3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of this vector.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normal returns this vector divided by its length (its unit vector).
// A zero vector stays zero.
func (v Vector3) Normal() Vector3 {
	return v.DivScalar(v.Length())
}

// SetNormal normalizes this vector so its length will be 1.
func (v *Vector3) SetNormal() {
	*v = v.Normal()
}

// DistanceTo returns the distance of this point to other.
func (v Vector3) DistanceTo(other Vector3) float64 {
	return math.Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the distance squared of this point to other.
func (v Vector3) DistanceToSquared(other Vector3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

/////////////////////////////////////////////////////////////
//  Transforms

// MulMatrix3 returns the vector multiplied by the specified 3x3 matrix.
func (v Vector3) MulMatrix3(m *Matrix3) Vector3 {
	return Vector3{m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z}
}

// MulMatrix4 returns the vector multiplied by the specified 4x4 matrix,
// treating the vector as a point (w = 1).
func (v Vector3) MulMatrix4(m *Matrix4) Vector3 {
	return Vector3{m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]}
}

// MulQuat returns vector multiplied by specified quaternion and
// then by the quaternion inverse.
// It basically applies the rotation encoded in the quaternion to this vector.
func (v Vector3) MulQuat(q Quat) Vector3 {
	qx := q.X
	qy := q.Y
	qz := q.Z
	qw := q.W
	// calculate quat * vector
	ix := qw*v.X + qy*v.Z - qz*v.Y
	iy := qw*v.Y + qz*v.X - qx*v.Z
	iz := qw*v.Z + qx*v.Y - qy*v.X
	iw := -qx*v.X - qy*v.Y - qz*v.Z
	// calculate result * inverse quat
	return Vector3{ix*qw + iw*-qx + iy*-qz - iz*-qy,
		iy*qw + iw*-qy + iz*-qx - ix*-qz,
		iz*qw + iw*-qz + ix*-qy - iy*-qx}
}
