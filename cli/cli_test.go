// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Ndiv int    `default:"24"`
	Font string `default:"Times-Roman"`
	Addr string `default:"localhost:8080"`
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "primview.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Ndiv = 48\n"), 0666))

	c := &testConfig{}
	require.NoError(t, Load(c, fn))
	assert.Equal(t, 48, c.Ndiv)
	assert.Equal(t, "Times-Roman", c.Font)
	assert.Equal(t, "localhost:8080", c.Addr)

	c = &testConfig{}
	require.NoError(t, Load(c, ""))
	assert.Equal(t, 24, c.Ndiv)

	assert.Error(t, Load(c, filepath.Join(dir, "missing.toml")))
}

func TestOpenOptional(t *testing.T) {
	c := &testConfig{Ndiv: 5}
	assert.NoError(t, Open(c, filepath.Join(t.TempDir(), "none.toml"), true))
	assert.Equal(t, 5, c.Ndiv)
}

func TestFindConfigFile(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	fn := filepath.Join(b, "primview.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Font = \"Courier\"\n"), 0666))
	assert.Equal(t, fn, FindConfigFile("primview.toml", a, b))
	assert.Equal(t, "", FindConfigFile("other.toml", a, b))
}
