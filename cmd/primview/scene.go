// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"cogentcore.org/prim/base/fileinfo"
	"cogentcore.org/prim/prim"
	"cogentcore.org/prim/xyz"
)

// Result is a decoded scene with the warnings from decoding it.
type Result struct {
	Scene    *xyz.Scene
	Warnings []string
}

// Open decodes the given geometry file with the decoder for its
// extension, using the config options for .prim files.
// Files that are not text are rejected before decoding.
func (c *Config) Open(fname string) (*Result, error) {
	if err := fileinfo.CheckText(fname); err != nil {
		return nil, err
	}
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec, err := xyz.DecoderFor(fname)
	if err != nil {
		return nil, err
	}
	pd, isPrim := dec.(*prim.Decoder)
	if isPrim {
		pd.Options = c.Options()
	}
	sc, err := xyz.DecodeWith(dec, filepath.Base(fname), f)
	if err != nil {
		return nil, err
	}
	res := &Result{Scene: sc}
	if isPrim {
		res.Warnings = pd.Warnings
	}
	return res, nil
}
