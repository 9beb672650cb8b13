// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"

	"cogentcore.org/prim/math64"
)

// LabelScale is the world size of one pixel of a [Label] texture.
const LabelScale = 0.1

// Label is a text billboard placed at a 3D position, which always faces
// the camera. The text is rendered into its [Texture], and the [Pose]
// scale is set from the texture size times [LabelScale].
type Label struct {
	NodeBase

	// Text is the text of the label.
	Text string

	// Font is the font family name.
	Font string

	// FontSize is the font size in points.
	FontSize float64

	// Texture is the rendered text image.
	Texture *Texture

	// Material has the opacity of the label.
	Material Material
}

// NewLabel returns a new [Label] for the given text rendered into
// the given texture.
func NewLabel(name, text, font string, size float64, tex *Texture, mat Material) *Label {
	lb := &Label{Text: text, Font: font, FontSize: size, Texture: tex, Material: mat}
	lb.init(name)
	lb.SetScaleFromTexture()
	return lb
}

func (lb *Label) NodeType() NodeTypes {
	return LabelNode
}

// SetScaleFromTexture sets the pose scale from the texture pixel size.
func (lb *Label) SetScaleFromTexture() {
	sz := lb.Texture.Size()
	if sz == (image.Point{}) {
		return
	}
	lb.Pose.Scale.Set(float64(sz.X)*LabelScale, float64(sz.Y)*LabelScale, 1)
}

func (lb *Label) LocalBBox() math64.Box3 {
	return unitSquare()
}
