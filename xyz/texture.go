// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
)

// Texture is an image used to color a billboard [Marker] or [Label].
type Texture struct {
	// Name is the name of the texture, used as the file name
	// when textures are exported.
	Name string

	// RGBA is the image, with transparent pixels outside of the drawn shape.
	RGBA *image.RGBA
}

// NewTexture returns a new [Texture] with the given name and image.
func NewTexture(name string, img *image.RGBA) *Texture {
	return &Texture{Name: name, RGBA: img}
}

// Size returns the size of the texture image in pixels.
func (tx *Texture) Size() image.Point {
	if tx == nil || tx.RGBA == nil {
		return image.Point{}
	}
	return tx.RGBA.Bounds().Size()
}
