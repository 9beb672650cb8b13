// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prim

import (
	"fmt"
	"log/slog"

	"cogentcore.org/prim/base/errors"
	"cogentcore.org/prim/math64"
	"cogentcore.org/prim/paint"
	"cogentcore.org/prim/xyz"
)

// marker adds a flat or billboard marker of the given shape and size
// at the given local position.
func (ip *Interpreter) marker(a *Args, shape xyz.MarkerShapes, billboard bool) bool {
	size := a.Floats[3]
	if size <= 0 {
		return false
	}
	cx := &ip.Context
	kind := shape.String()
	var mk *xyz.Marker
	if billboard {
		var tex *xyz.Texture
		if shape == xyz.SquareMarker {
			tex = xyz.NewTexture(kind, paint.SquareImage(size, cx.Color.RGBA()))
		} else {
			tex = xyz.NewTexture(kind, paint.DiscImage(size, cx.Color.RGBA()))
		}
		mk = xyz.NewBillboardMarker(ip.nodeName(kind), shape, size, tex, cx.Material())
	} else {
		mk = xyz.NewFlatMarker(ip.nodeName(kind), shape, size, cx.Material())
	}
	mk.Pose.Pos = cx.Transform(a.Vector3(0))
	ip.add(mk)
	return true
}

func (ip *Interpreter) markCircle(a *Args) bool {
	return ip.marker(a, xyz.DiscMarker, false)
}

func (ip *Interpreter) markCircleSprite(a *Args) bool {
	return ip.marker(a, xyz.DiscMarker, true)
}

func (ip *Interpreter) markSquare(a *Args) bool {
	return ip.marker(a, xyz.SquareMarker, false)
}

func (ip *Interpreter) markSquareSprite(a *Args) bool {
	return ip.marker(a, xyz.SquareMarker, true)
}

// markText: x y z size xoff yoff text. The offset is added
// after the position is transformed.
func (ip *Interpreter) markText(a *Args) bool {
	size := a.Floats[3]
	if size <= 0 || a.Text == "" {
		return false
	}
	cx := &ip.Context
	rs := ip.rasterizer()
	w, _, err := rs.Measure(a.Text, cx.Font, size)
	if err == nil && w <= 0 {
		err = errors.New("text has no width")
	}
	if err != nil {
		ip.warn("label dropped", err, "text", a.Text, "font", cx.Font)
		return true
	}
	img, err := rs.Rasterize(a.Text, cx.Font, size, cx.Color.RGBA())
	if err != nil {
		ip.warn("label dropped", err, "text", a.Text, "font", cx.Font)
		return true
	}
	tex := xyz.NewTexture("label", img)
	lb := xyz.NewLabel(ip.nodeName("label"), a.Text, cx.Font, size, tex, cx.Material())
	lb.Pose.Pos = cx.Transform(a.Vector3(0)).Add(math64.Vec3(a.Floats[4], a.Floats[5], 0))
	ip.add(lb)
	return true
}

// text2D: x y size text, as an overlay text in millimeters and points.
func (ip *Interpreter) text2D(a *Args) bool {
	size := a.Floats[2]
	if size <= 0 || a.Text == "" {
		return false
	}
	ip.Scene.AddText(xyz.OverlayText{
		X:     a.Floats[0],
		Y:     a.Floats[1],
		Size:  size,
		Text:  a.Text,
		Color: ip.Context.Color.Style(),
		Font:  ip.Context.Font,
	})
	return true
}

// warn records a recoverable problem in [Interpreter.Warnings] and logs it.
func (ip *Interpreter) warn(msg string, err error, args ...any) {
	ip.Warnings = append(ip.Warnings, fmt.Sprintf("line %d: %s: %v", ip.line, msg, err))
	slog.Warn("prim: "+msg, append([]any{"line", ip.line, "err", err}, args...)...)
}
