// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prim

import (
	"sort"
)

// Command is an entry in the command table, which declares the
// arguments of a command token and the function that runs it.
type Command struct {
	// Name is the command token, including its leading / or !.
	Name string

	// Args is the kind of arguments the command takes.
	Args ArgKinds

	// NFloats is the number of leading float arguments.
	NFloats int

	// Run applies the command with the parsed arguments, returning
	// false if an argument is out of range, in which case it must
	// not have changed anything. It is nil for commands that are
	// recognized but do nothing.
	Run func(ip *Interpreter, a *Args) bool
}

// commandList has all of the commands handled outside of blocks.
var commandList = []*Command{
	{Name: "/Origin", Args: FloatArgs, NFloats: 3, Run: (*Interpreter).origin},
	{Name: "/ColorRGB", Args: FloatArgs, NFloats: 3, Run: (*Interpreter).colorRGB},
	{Name: "/BaseVector", Args: FloatArgs, NFloats: 6, Run: (*Interpreter).baseVector},
	{Name: "/FontName", Args: TextArgs, Run: (*Interpreter).fontName},
	{Name: "/Ndiv", Args: IntArg, Run: (*Interpreter).ndiv},
	{Name: "/ForceWireframe", Args: IntArg},
	{Name: "/BoundingBox", Args: FloatArgs, NFloats: 6, Run: (*Interpreter).boundingBox},

	{Name: "/Polyline", Args: NoArgs, Run: (*Interpreter).beginPolyline},
	{Name: "/Polyhedron", Args: NoArgs, Run: (*Interpreter).beginPolyhedron},

	{Name: "/Box", Args: FloatArgs, NFloats: 3, Run: (*Interpreter).box},
	{Name: "/Sphere", Args: FloatArgs, NFloats: 1, Run: (*Interpreter).sphere},
	{Name: "/Column", Args: FloatArgs, NFloats: 2, Run: (*Interpreter).column},
	{Name: "/Cons", Args: FloatArgs, NFloats: 7, Run: (*Interpreter).cons},
	{Name: "/Torus", Args: FloatArgs, NFloats: 5, Run: (*Interpreter).torus},
	{Name: "/Tubs", Args: FloatArgs, NFloats: 5, Run: (*Interpreter).tubs},

	{Name: "/MarkCircle2D", Args: FloatArgs, NFloats: 4, Run: (*Interpreter).markCircle},
	{Name: "/MarkCircle2DS", Args: FloatArgs, NFloats: 4, Run: (*Interpreter).markCircleSprite},
	{Name: "/MarkSquare2D", Args: FloatArgs, NFloats: 4, Run: (*Interpreter).markSquare},
	{Name: "/MarkSquare2DS", Args: FloatArgs, NFloats: 4, Run: (*Interpreter).markSquareSprite},
	{Name: "/MarkText2D", Args: FloatsTextArgs, NFloats: 6, Run: (*Interpreter).markText},
	{Name: "/MarkText2DS", Args: FloatsTextArgs, NFloats: 6, Run: (*Interpreter).markText},
	{Name: "/Text2DS", Args: FloatsTextArgs, NFloats: 3, Run: (*Interpreter).text2D},

	{Name: "/Parallelepiped"},
	{Name: "/PolyCone"},
	{Name: "/PolyGon"},
	{Name: "/SphereSeg"},
	{Name: "/Trap"},
	{Name: "/Trd"},
	{Name: "!SetCamera"},
	{Name: "!OpenDevice"},
	{Name: "!DrawAll"},
	{Name: "!CloseDevice"},
	{Name: "!BeginModeling"},
	{Name: "!EndModeling"},
}

// Block commands, which are only recognized inside their block.
var (
	plVertexCommand      = &Command{Name: "/PLVertex", Args: FloatArgs, NFloats: 3}
	endPolylineCommand   = &Command{Name: "/EndPolyline", Args: NoArgs}
	vertexCommand        = &Command{Name: "/Vertex", Args: FloatArgs, NFloats: 3}
	facetCommand         = &Command{Name: "/Facet", Args: IntListArgs}
	endPolyhedronCommand = &Command{Name: "/EndPolyhedron", Args: NoArgs}
)

// commands is the command table, indexed by token.
var commands = map[string]*Command{}

func init() {
	for _, cm := range commandList {
		commands[cm.Name] = cm
	}
}

// LookupCommand returns the command for the given token, or nil.
// Block commands are not included.
func LookupCommand(token string) *Command {
	return commands[token]
}

// CommandNames returns the sorted list of all recognized command tokens,
// including block commands.
func CommandNames() []string {
	names := make([]string, 0, len(commands)+5)
	for nm := range commands {
		names = append(names, nm)
	}
	for _, cm := range []*Command{plVertexCommand, endPolylineCommand, vertexCommand, facetCommand, endPolyhedronCommand} {
		names = append(names, cm.Name)
	}
	sort.Strings(names)
	return names
}

// IsNoOp returns whether the command is recognized but does nothing.
func (cm *Command) IsNoOp() bool {
	return cm.Run == nil
}
