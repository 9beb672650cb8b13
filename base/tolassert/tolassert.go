// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// and vectors with tolerance.
package tolassert

import (
	"math"

	"cogentcore.org/prim/math64"
	"github.com/stretchr/testify/assert"
)

// StandardTol is the default tolerance used for geometry comparisons.
const StandardTol = 1.0e-9

// Equal asserts that the given two numbers are equal within [StandardTol].
func Equal(t assert.TestingT, expected, actual float64, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, StandardTol, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are equal
// within the given tolerance.
func EqualTol(t assert.TestingT, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if math.Abs(expected-actual) > tolerance {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return true
}

// EqualVector3 asserts that the given two vectors are equal
// within [StandardTol] on each component.
func EqualVector3(t assert.TestingT, expected, actual math64.Vector3, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if math.Abs(expected.X-actual.X) > StandardTol || math.Abs(expected.Y-actual.Y) > StandardTol ||
		math.Abs(expected.Z-actual.Z) > StandardTol {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return true
}
