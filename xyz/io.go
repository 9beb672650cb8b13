// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Decoder parses a 3D scene file and fills a [Scene] with its contents.
// This interface is implemented by the different format-specific decoders.
type Decoder interface {
	// New returns a new instance of the decoder used for a specific decoding.
	New() Decoder

	// Desc returns the description of this decoder.
	Desc() string

	// SetFile sets the file name being used for decoding.
	SetFile(fname string)

	// Decode reads the given data and decodes it, keeping
	// all the decoded info in the decoder.
	Decode(r io.Reader) error

	// SetScene adds the decoded nodes and texts to the given scene.
	SetScene(sc *Scene)
}

// Decoders is the master list of decoders, indexed by the primary extension.
var Decoders = map[string]Decoder{}

// RegisterDecoder adds the given decoder for the given file extension,
// which includes the leading dot.
func RegisterDecoder(ext string, dec Decoder) {
	Decoders[strings.ToLower(ext)] = dec
}

// DecoderExts returns the sorted list of registered file extensions.
func DecoderExts() []string {
	exts := make([]string, 0, len(Decoders))
	for ext := range Decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// DecoderFor returns a new instance of the decoder for the given file name,
// based on its extension.
func DecoderFor(fname string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(fname))
	dt, has := Decoders[ext]
	if !has {
		return nil, fmt.Errorf("xyz.DecodeFile: file extension %q not found in Decoders list for file %v", ext, fname)
	}
	dec := dt.New()
	dec.SetFile(fname)
	return dec, nil
}

// DecodeFile decodes the given file into a new [Scene] named after the file,
// using a decoder based on the file extension.
func DecodeFile(fname string) (*Scene, error) {
	dec, err := DecoderFor(fname)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeWith(dec, filepath.Base(fname), f)
}

// DecodeWith decodes the given reader with the given decoder
// into a new [Scene] with the given name.
func DecodeWith(dec Decoder, name string, r io.Reader) (*Scene, error) {
	if err := dec.Decode(r); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	sc := NewScene(name)
	dec.SetScene(sc)
	return sc, nil
}
