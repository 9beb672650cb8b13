// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

// ArrayF64 is a slice of float64 with additional convenience methods
// for treating it as packed vectors.
type ArrayF64 []float64

// NewArrayF64 creates and returns a slice of float64 values
// with the specified length and capacity
func NewArrayF64(size, capacity int) ArrayF64 {
	return make([]float64, size, capacity)
}

// Len returns the number of float64 elements in the array.
func (a ArrayF64) Len() int {
	return len(a)
}

// Append appends any number of values to the array
func (a *ArrayF64) Append(v ...float64) {
	*a = append(*a, v...)
}

// AppendVector3 appends any number of Vector3 to the array
func (a *ArrayF64) AppendVector3(v ...Vector3) {
	for i := 0; i < len(v); i++ {
		*a = append(*a, v[i].X, v[i].Y, v[i].Z)
	}
}

// Vector3 returns the vector stored at the given vector (not float) index.
func (a ArrayF64) Vector3(i int) Vector3 {
	return Vector3{a[3*i], a[3*i+1], a[3*i+2]}
}

// SetVector3 stores the given vector at the given vector (not float) index.
func (a ArrayF64) SetVector3(i int, v Vector3) {
	a[3*i] = v.X
	a[3*i+1] = v.Y
	a[3*i+2] = v.Z
}

// Set sets the values of the array starting at the specified pos
// from the specified values
func (a ArrayF64) Set(pos int, v ...float64) {
	for i := 0; i < len(v); i++ {
		a[pos+i] = v[i]
	}
}

// ArrayU32 is a slice of uint32 with additional convenience methods
type ArrayU32 []uint32

// NewArrayU32 creates and returns a slice of uint32 values
// with the specified length and capacity
func NewArrayU32(size, capacity int) ArrayU32 {
	return make([]uint32, size, capacity)
}

// Len returns the number of uint32 elements in the array
func (a ArrayU32) Len() int {
	return len(a)
}

// Append appends n elements to the array updating the slice pointer
func (a *ArrayU32) Append(v ...uint32) {
	*a = append(*a, v...)
}
