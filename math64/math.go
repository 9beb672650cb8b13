// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math64 is a float64 version of the 3D vector, matrix, quaternion
// and bounding box types used for scene geometry, initially copied from
// G3N: github.com/g3n/engine/math32.
package math64

import (
	"cmp"
	"math"
)

const (
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = math.Pi

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = math.Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / math.Pi
)

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float64) float64 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg(radians float64) float64 {
	return radians * RadToDegFactor
}

// Clamp clamps x to the provided closed interval [a, b]
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Normal returns the triangle's normal, following the
// counter-clockwise winding of a, b, c.
func Normal(a, b, c Vector3) Vector3 {
	nv := c.Sub(b).Cross(a.Sub(b))
	lenSq := nv.LengthSquared()
	if lenSq > 0 {
		return nv.MulScalar(1 / math.Sqrt(lenSq))
	}
	return Vector3{}
}

// CosSin returns the cosine and sine of the given angle in radians.
func CosSin(theta float64) (float64, float64) {
	s, c := math.Sincos(theta)
	return c, s
}
