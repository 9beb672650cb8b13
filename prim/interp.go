// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prim interprets the DAWN / Geant4 PRIM geometry format,
// a line oriented list of commands describing the primitives of a
// detector geometry, into an [xyz.Scene].
//
// Commands update a persistent [Context] (color, origin, basis, font,
// divisions and current volume) or emit primitives that use it.
// Polylines and polyhedra are given as multi-line blocks.
// Malformed lines and unknown commands are skipped without error.
package prim

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/prim/base/errors"
	"cogentcore.org/prim/base/reflectx"
	"cogentcore.org/prim/paint"
	"cogentcore.org/prim/xyz"
)

// Options are the options for an [Interpreter].
type Options struct {
	// Divisions is the initial number of segments for curved surfaces.
	Divisions int `default:"24" toml:"divisions"`

	// Font is the initial font name for text.
	Font string `default:"Times-Roman" toml:"font"`

	// Highlight are volumes rendered as opaque shaded solids,
	// in addition to [HighlightVolumes].
	Highlight []string `toml:"highlight"`

	// Rasterizer renders text labels. A [paint.TextRenderer] is used if nil.
	Rasterizer TextRasterizer `toml:"-"`
}

// Defaults sets the default values from the default struct tags.
func (o *Options) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(o))
}

// Interpreter runs geometry commands, accumulating the results
// in a [xyz.Scene]. It is not safe for concurrent use.
type Interpreter struct {
	// Options are the options, which set the initial context.
	Options Options

	// Context is the current rendering state.
	Context Context

	// Scene has the primitives and overlay texts emitted so far.
	Scene *xyz.Scene

	// Warnings are messages about labels that could not be rendered.
	Warnings []string

	// block is the current block state.
	block BlockStates

	polyline   polyline
	polyhedron polyhedron

	// line is the current line number, starting at 1.
	line int
}

// NewInterpreter returns a new [Interpreter] with the given options,
// or the defaults if opts is nil.
func NewInterpreter(opts *Options) *Interpreter {
	ip := &Interpreter{}
	if opts != nil {
		ip.Options = *opts
	} else {
		ip.Options.Defaults()
	}
	if ip.Options.Divisions < 3 {
		ip.Options.Divisions = 24
	}
	ip.Options.Divisions = clampDivisions(ip.Options.Divisions)
	if ip.Options.Font == "" {
		ip.Options.Font = "Times-Roman"
	}
	ip.Reset("")
	return ip
}

// Reset starts a new pass with a new scene of the given name,
// and the initial context.
func (ip *Interpreter) Reset(name string) {
	ip.Context.Defaults(&ip.Options)
	ip.Scene = xyz.NewScene(name)
	ip.Warnings = nil
	ip.block = DefaultBlock
	ip.polyline = polyline{}
	ip.polyhedron = polyhedron{}
	ip.line = 0
}

// Block returns the current block state.
func (ip *Interpreter) Block() BlockStates {
	return ip.block
}

// Interpret runs all of the lines of the given source in a new pass,
// and returns the resulting scene.
func (ip *Interpreter) Interpret(src string) *xyz.Scene {
	ip.Reset(ip.Scene.Name)
	for _, line := range strings.Split(src, "\n") {
		ip.Line(line)
	}
	ip.finish()
	return ip.Scene
}

// Decode runs all of the lines read from the given reader in a new pass,
// and returns the resulting scene. Only read errors are returned.
func (ip *Interpreter) Decode(r io.Reader) (*xyz.Scene, error) {
	ip.Reset(ip.Scene.Name)
	bufin := bufio.NewReader(r)
	for {
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("prim: reading line %d: %w", ip.line+1, err)
		}
		ip.Line(line)
		if err == io.EOF {
			break
		}
	}
	ip.finish()
	return ip.Scene, nil
}

// Interpret runs the given source with the default options
// and returns the resulting scene.
func Interpret(src string) *xyz.Scene {
	return NewInterpreter(nil).Interpret(src)
}

// Decode runs the source read from the given reader with the default
// options and returns the resulting scene.
func Decode(r io.Reader) (*xyz.Scene, error) {
	return NewInterpreter(nil).Decode(r)
}

// Line runs one line of source.
func (ip *Interpreter) Line(line string) {
	ip.line++
	line = strings.TrimSpace(line)
	kind := Classify(line)
	switch kind {
	case BlankLine, HeaderLine, CommentLine:
		return
	}
	fields := strings.Fields(line)
	if kind == VolumeLine {
		ip.Context.SetVolume(VolumeName(fields))
	}
	if ip.Context.Skip {
		return
	}
	switch ip.block {
	case PolylineBlock:
		ip.polylineLine(fields)
		return
	case PolyhedronBlock:
		ip.polyhedronLine(fields)
		return
	}
	if kind != CommandLine {
		return
	}
	cm := commands[fields[0]]
	if cm == nil || cm.IsNoOp() && cm.Args == NoArgs {
		return
	}
	a, ok := cm.Parse(fields[1:])
	if !ok {
		ip.skipped(cm.Name, "malformed arguments")
		return
	}
	if cm.Run == nil {
		return
	}
	if !cm.Run(ip, &a) {
		ip.skipped(cm.Name, "argument out of range")
	}
}

// finish ends the pass, dropping any unterminated block.
func (ip *Interpreter) finish() {
	if ip.block != DefaultBlock {
		slog.Debug("prim: unterminated block dropped", "block", ip.block, "line", ip.line)
		ip.block = DefaultBlock
		ip.polyline = polyline{}
		ip.polyhedron = polyhedron{}
	}
}

// skipped logs a line that has no effect because of its arguments.
func (ip *Interpreter) skipped(command, reason string) {
	slog.Debug("prim: skipped line", "line", ip.line, "command", command, "reason", reason)
}

// add adds the given node to the top level of the scene.
func (ip *Interpreter) add(n xyz.Node) {
	ip.Scene.Add(n)
}

// nodeName returns the name for a new node of the given kind,
// qualified by the current volume.
func (ip *Interpreter) nodeName(kind string) string {
	if ip.Context.Volume == "" {
		return kind
	}
	return ip.Context.Volume + "/" + kind
}

func (ip *Interpreter) rasterizer() TextRasterizer {
	if ip.Options.Rasterizer == nil {
		ip.Options.Rasterizer = paint.NewTextRenderer()
	}
	return ip.Options.Rasterizer
}
