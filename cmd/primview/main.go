// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command primview inspects, converts and serves DAWN / Geant4 PRIM
// geometry files.
//
// Configuration is taken from `default:` tags, then a primview.toml
// file in the current or home directory (or --config), then flags.
package main

import (
	"os"

	"cogentcore.org/prim/base/errors"
)

func main() {
	cmd := newRootCmd(&Config{})
	if errors.Log(cmd.Execute()) != nil {
		os.Exit(1)
	}
}
