// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"time"

	"cogentcore.org/prim/cli"
	"cogentcore.org/prim/prim"
	"github.com/mitchellh/go-homedir"
)

// ConfigFile is the name of the config file searched for
// in the current and home directories.
const ConfigFile = "primview.toml"

// Formats are the export formats.
var Formats = []string{"yaml", "json", "toml"}

// Config has the settings for all commands.
type Config struct {
	// Divisions is the initial number of segments for curved surfaces.
	Divisions int `default:"24" toml:"divisions"`

	// Font is the initial font for text.
	Font string `default:"Times-Roman" toml:"font"`

	// Format is the export format: yaml, json or toml.
	Format string `default:"yaml" toml:"format"`

	// Addr is the address that serve listens on.
	Addr string `default:"localhost:8080" toml:"addr"`

	// Debounce is how long to wait for more file changes
	// before reloading. It is only set by flag.
	Debounce time.Duration `default:"200ms" toml:"-"`

	// Highlight are extra volumes that are rendered as opaque solids.
	Highlight []string `toml:"highlight"`

	// Config is the config file given on the command line.
	Config string `toml:"-"`

	// Verbose, VeryVerbose and Quiet set the log level.
	Verbose     bool `toml:"-"`
	VeryVerbose bool `toml:"-"`
	Quiet       bool `toml:"-"`
}

// Load sets the config from its defaults and the config file,
// which is either the given one or the first primview.toml found.
func (c *Config) Load(file string) error {
	if file == "" {
		dirs := []string{"."}
		if home, err := homedir.Dir(); err == nil {
			dirs = append(dirs, home)
		}
		file = cli.FindConfigFile(ConfigFile, dirs...)
	}
	if err := cli.Load(c, file); err != nil {
		return err
	}
	return c.Validate()
}

// Validate returns an error if a setting is out of range.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case "yaml", "yml":
		c.Format = "yaml"
	case "json", "toml":
	default:
		return fmt.Errorf("unknown format %q: must be one of %s", c.Format, strings.Join(Formats, ", "))
	}
	if c.Divisions < 3 {
		return fmt.Errorf("divisions must be at least 3, not %d", c.Divisions)
	}
	return nil
}

// Options returns the interpreter options for the config.
func (c *Config) Options() *prim.Options {
	return &prim.Options{Divisions: c.Divisions, Font: c.Font, Highlight: c.Highlight}
}
