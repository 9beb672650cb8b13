// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/prim/xyz"
	"github.com/muesli/termenv"
)

// WriteInfo writes a summary of the result to the given output:
// node counts by type, triangles, points, overlay texts, the bounding
// box and any warnings.
func WriteInfo(out *termenv.Output, res *Result) {
	sc := res.Scene
	st := sc.Stats()
	title := out.String(sc.Name).Bold()
	fmt.Fprintln(out, title)

	key := func(s string) termenv.Style {
		return out.String(fmt.Sprintf("  %-10s", s)).Foreground(out.Color("6"))
	}
	for nt := xyz.NodeTypes(0); nt < xyz.NodeTypesN; nt++ {
		if n := st.Nodes[nt]; n > 0 {
			fmt.Fprintf(out, "%s %d\n", key(nt.String()), n)
		}
	}
	fmt.Fprintf(out, "%s %d\n", key("triangles"), st.Triangles)
	fmt.Fprintf(out, "%s %d\n", key("points"), st.Points)
	fmt.Fprintf(out, "%s %d\n", key("texts"), st.Texts)
	bb := sc.BBox()
	if bb.IsEmpty() {
		fmt.Fprintf(out, "%s empty\n", key("bbox"))
	} else {
		fmt.Fprintf(out, "%s %v to %v\n", key("bbox"), bb.Min, bb.Max)
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(out, out.String("warning: "+w).Foreground(out.Color("3")))
	}
}
