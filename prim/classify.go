// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prim

import (
	"strings"
)

const (
	// HeaderPrefix starts the format header line.
	HeaderPrefix = "##G4.PRIM-FORMAT"

	// VolumePrefix starts a volume directive, which names the
	// physical volume that the following commands belong to.
	VolumePrefix = "#/PVName"
)

// LineKinds are the kinds of lines in a geometry file.
type LineKinds int32

const (
	// BlankLine is an empty or whitespace-only line.
	BlankLine LineKinds = iota

	// HeaderLine is the ##G4.PRIM-FORMAT header.
	HeaderLine

	// CommentLine starts with # and is not a volume directive.
	CommentLine

	// VolumeLine is a #/PVName volume directive.
	VolumeLine

	// CommandLine starts with / or !.
	CommandLine

	// OtherLine is anything else, which is ignored.
	OtherLine
)

var lineKindNames = [...]string{"blank", "header", "comment", "volume", "command", "other"}

func (lk LineKinds) String() string {
	if lk < 0 || int(lk) >= len(lineKindNames) {
		return "unknown"
	}
	return lineKindNames[lk]
}

// Classify returns the kind of the given trimmed line.
func Classify(line string) LineKinds {
	switch {
	case line == "":
		return BlankLine
	case strings.HasPrefix(line, HeaderPrefix):
		return HeaderLine
	case strings.HasPrefix(line, VolumePrefix):
		return VolumeLine
	case line[0] == '#':
		return CommentLine
	case line[0] == '/' || line[0] == '!':
		return CommandLine
	}
	return OtherLine
}

// VolumeName returns the volume name from the whitespace-separated
// fields of a volume directive: the part of the second field before
// the first colon. It is empty if there is no second field.
func VolumeName(fields []string) string {
	if len(fields) < 2 {
		return ""
	}
	name, _, _ := strings.Cut(fields[1], ":")
	return strings.TrimSpace(name)
}
