// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prim

import (
	"math"
	"strconv"
	"strings"

	"cogentcore.org/prim/math64"
)

// ArgKinds are the kinds of arguments that a [Command] takes.
type ArgKinds int32

const (
	// NoArgs ignores any arguments.
	NoArgs ArgKinds = iota

	// FloatArgs is a fixed number of floating point values.
	FloatArgs

	// IntArg is a single integer.
	IntArg

	// IntListArgs is any number of integers. Tokens that are not
	// integers are dropped instead of failing the line.
	IntListArgs

	// FloatsTextArgs is a fixed number of floating point values
	// followed by text made from the remaining tokens.
	FloatsTextArgs

	// TextArgs is text made from all of the tokens.
	TextArgs
)

// Args are the parsed arguments of a command line.
type Args struct {
	// Floats are the floating point values, for [FloatArgs]
	// and [FloatsTextArgs].
	Floats []float64

	// Int is the value for [IntArg].
	Int int

	// Ints are the values for [IntListArgs].
	Ints []int

	// Text is the remaining tokens joined by single spaces,
	// for [TextArgs] and [FloatsTextArgs].
	Text string
}

// Vector3 returns the three floats starting at the given index as a vector.
func (a *Args) Vector3(i int) math64.Vector3 {
	return math64.Vec3(a.Floats[i], a.Floats[i+1], a.Floats[i+2])
}

// ParseFloat parses a finite floating point number.
func ParseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseInt parses a base 10 integer, with an optional sign.
// It uses [strconv.Atoi], so the whole field must be an integer:
// "24.0" and "3abc" are rejected rather than read as 24 and 3
// as lenient readers of the format do.
func ParseInt(s string) (int, bool) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

// parseFloats parses the first n fields as floats.
// Extra fields are ignored.
func parseFloats(fields []string, n int) ([]float64, bool) {
	if len(fields) < n {
		return nil, false
	}
	fs := make([]float64, n)
	for i := range n {
		f, ok := ParseFloat(fields[i])
		if !ok {
			return nil, false
		}
		fs[i] = f
	}
	return fs, true
}

// Parse parses the given argument fields, which follow the command
// token, according to the argument kind of the command.
// It returns false if any required argument is missing or malformed,
// in which case the whole line has no effect.
func (cm *Command) Parse(fields []string) (Args, bool) {
	var a Args
	var ok bool
	switch cm.Args {
	case NoArgs:
		return a, true
	case FloatArgs:
		a.Floats, ok = parseFloats(fields, cm.NFloats)
		return a, ok
	case IntArg:
		if len(fields) == 0 {
			return a, false
		}
		a.Int, ok = ParseInt(fields[0])
		return a, ok
	case IntListArgs:
		for _, f := range fields {
			if i, ok := ParseInt(f); ok {
				a.Ints = append(a.Ints, i)
			}
		}
		return a, true
	case FloatsTextArgs:
		a.Floats, ok = parseFloats(fields, cm.NFloats)
		if !ok {
			return a, false
		}
		a.Text = strings.Join(fields[cm.NFloats:], " ")
		return a, true
	case TextArgs:
		a.Text = strings.Join(fields, " ")
		return a, true
	}
	return a, false
}
