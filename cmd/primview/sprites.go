// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/prim/xyz"
	"github.com/anthonynsimon/bild/imgio"
)

// WriteSprites saves every billboard texture in the scene as a PNG file
// in the given directory, creating it if needed, and returns the file names.
func WriteSprites(sc *xyz.Scene, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	var files []string
	for i, tx := range sc.Textures() {
		fn := filepath.Join(dir, fmt.Sprintf("%03d-%s.png", i, tx.Name))
		if err := imgio.Save(fn, tx.RGBA, imgio.PNGEncoder()); err != nil {
			return files, fmt.Errorf("saving sprite %d: %w", i, err)
		}
		files = append(files, fn)
	}
	return files, nil
}
