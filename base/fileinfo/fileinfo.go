// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fileinfo identifies the content type of input files.
package fileinfo

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/h2non/filetype"
)

// HeaderSize is the number of leading bytes read to identify a file.
const HeaderSize = 512

// Info is what is known about the content of a file.
type Info struct {
	// Mime is the mime type, if it is a known binary type.
	Mime string

	// Ext is the canonical extension of a known binary type.
	Ext string

	// Binary is whether the file is not plain text.
	Binary bool
}

func (fi Info) String() string {
	if !fi.Binary {
		return "text"
	}
	if fi.Mime == "" {
		return "binary"
	}
	return fi.Mime
}

// Identify returns the [Info] for the given file header bytes.
// A header is binary if it matches a known binary type, has
// a NUL byte, or is not valid UTF-8.
func Identify(head []byte) Info {
	kind, _ := filetype.Match(head)
	if kind != filetype.Unknown {
		return Info{Mime: kind.MIME.Value, Ext: kind.Extension, Binary: true}
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return Info{Binary: true}
	}
	// a multi-byte rune may be cut at the end of the header
	for i := 0; i < utf8.UTFMax && len(head) > 0; i++ {
		if utf8.Valid(head) {
			return Info{}
		}
		head = head[:len(head)-1]
	}
	return Info{Binary: len(head) > 0}
}

// IdentifyFile returns the [Info] for the given file, from its header.
func IdentifyFile(fname string) (Info, error) {
	f, err := os.Open(fname)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()
	head := make([]byte, HeaderSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Info{}, fmt.Errorf("fileinfo: reading %s: %w", fname, err)
	}
	return Identify(head[:n]), nil
}

// CheckText returns an error if the given file is not a text file.
func CheckText(fname string) error {
	fi, err := IdentifyFile(fname)
	if err != nil {
		return err
	}
	if fi.Binary {
		return fmt.Errorf("%s is not a text file (%s)", fname, fi)
	}
	return nil
}
