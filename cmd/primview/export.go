// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"cogentcore.org/prim/xyz"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// WriteExport writes the scene document in the given format.
func WriteExport(w io.Writer, sc *xyz.Scene, format string) error {
	doc := sc.Export()
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "toml":
		return toml.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("unknown export format %q", format)
}
