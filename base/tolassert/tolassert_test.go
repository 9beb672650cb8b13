// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"cogentcore.org/prim/math64"
	"github.com/stretchr/testify/assert"
)

type mockT struct {
	failed bool
}

func (m *mockT) Errorf(format string, args ...any) {
	m.failed = true
}

func TestEqualTol(t *testing.T) {
	assert.True(t, EqualTol(t, 1, 1.0001, 0.001))
	assert.True(t, Equal(t, 0.1+0.2, 0.3))

	mt := &mockT{}
	assert.False(t, EqualTol(mt, 1, 1.1, 0.001))
	assert.True(t, mt.failed)
}

func TestEqualVector3(t *testing.T) {
	assert.True(t, EqualVector3(t, math64.Vec3(1, 2, 3), math64.Vec3(1, 2, 3+1e-12)))

	mt := &mockT{}
	assert.False(t, EqualVector3(mt, math64.Vec3(1, 2, 3), math64.Vec3(1, 2, 3.1)))
}
