// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prim

import (
	"io"
	"path/filepath"

	"cogentcore.org/prim/xyz"
)

func init() {
	xyz.RegisterDecoder(".prim", &Decoder{})
}

// Decoder is the [xyz.Decoder] for .prim geometry files.
type Decoder struct {
	// Options are the interpreter options; defaults are used if nil.
	Options *Options

	// File is the name of the file being decoded.
	File string

	// Warnings are the warnings from the last decoding.
	Warnings []string

	scene *xyz.Scene
}

func (dec *Decoder) New() xyz.Decoder {
	return &Decoder{Options: dec.Options}
}

func (dec *Decoder) Desc() string {
	return "DAWN / Geant4 PRIM geometry format"
}

func (dec *Decoder) SetFile(fname string) {
	dec.File = fname
}

func (dec *Decoder) Decode(r io.Reader) error {
	ip := NewInterpreter(dec.Options)
	ip.Scene.Name = filepath.Base(dec.File)
	sc, err := ip.Decode(r)
	if err != nil {
		return err
	}
	dec.scene = sc
	dec.Warnings = ip.Warnings
	return nil
}

func (dec *Decoder) SetScene(sc *xyz.Scene) {
	if dec.scene == nil {
		return
	}
	sc.Add(dec.scene.Children...)
	for _, txt := range dec.scene.Texts {
		sc.AddText(txt)
	}
}
