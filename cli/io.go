// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/prim/base/errors"
	"cogentcore.org/prim/base/iox/tomlx"
)

// Open reads the config struct from the given TOML config file.
// If the file does not exist and optional is true, the config is
// left unchanged and no error is returned.
func Open(cfg any, file string, optional bool) error {
	_, err := os.Stat(file)
	if errors.Is(err, fs.ErrNotExist) && optional {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cli.Open: %w", err)
	}
	return tomlx.Open(cfg, file)
}

// FindConfigFile returns the first of the given directories that contains
// a file with the given name, joined with that name, or "" if none do.
func FindConfigFile(name string, dirs ...string) string {
	for _, dir := range dirs {
		fn := filepath.Join(dir, name)
		if _, err := os.Stat(fn); err == nil {
			return fn
		}
	}
	return ""
}

// Load sets the config from its defaults and then from the given TOML
// file, if non-empty. An explicitly named file must exist.
func Load(cfg any, file string) error {
	if err := SetFromDefaults(cfg); err != nil {
		return err
	}
	if file == "" {
		return nil
	}
	return Open(cfg, file, false)
}
