// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli provides the configuration layering used by command line
// tools: `default:` struct tags, then TOML config files, then flags.
package cli

import (
	"cogentcore.org/prim/base/errors"
	"cogentcore.org/prim/base/reflectx"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}
