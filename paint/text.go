// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextPadding is the default padding in pixels around rendered text.
const TextPadding = 10

// TextRenderer renders single lines of text into images with
// a transparent background, using fonts from a [FontLibrary].
// Text is left and top aligned inside the padding.
type TextRenderer struct {
	// Fonts is the font library; [Fonts] if nil.
	Fonts *FontLibrary

	// Padding is the transparent margin in pixels added on each side.
	Padding int
}

// NewTextRenderer returns a new [TextRenderer] using the default
// font library and padding.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{Fonts: Fonts, Padding: TextPadding}
}

func (tr *TextRenderer) face(fontName string, size float64) (font.Face, error) {
	fl := tr.Fonts
	if fl == nil {
		fl = Fonts
	}
	return fl.Face(fontName, size)
}

// Measure returns the width and height in pixels of the given text
// in the given font and size in points, without padding.
// The height is the font size.
func (tr *TextRenderer) Measure(text, fontName string, size float64) (float64, float64, error) {
	face, err := tr.face(fontName, size)
	if err != nil {
		return 0, 0, err
	}
	adv := font.MeasureString(face, text)
	return float64(adv) / 64, size, nil
}

// Rasterize returns an image of the given text in the given font, size
// and color, sized to the measured text plus the padding on each side.
// Text that would not fit in [MaxTextureSize] is drawn at the largest
// size that fits, and an error is returned if that is below one point.
func (tr *TextRenderer) Rasterize(text, fontName string, size float64, clr color.Color) (*image.RGBA, error) {
	if text == "" {
		return nil, fmt.Errorf("paint.Rasterize: empty text")
	}
	size, w, h, err := tr.fit(text, fontName, size)
	if err != nil {
		return nil, err
	}
	face, err := tr.face(fontName, size)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, max(int(math.Ceil(w)), 1), max(int(math.Ceil(h)), 1)))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: face.Metrics().Ascent},
	}
	d.DrawString(text)
	if tr.Padding > 0 {
		img = clone.Pad(img, tr.Padding, tr.Padding, clone.NoFill)
	}
	return FitMax(img, MaxTextureSize), nil
}

// fit returns the font size at which the text plus padding fits in
// [MaxTextureSize], along with the measured text size at that font size.
func (tr *TextRenderer) fit(text, fontName string, size float64) (fsize, w, h float64, err error) {
	avail := float64(MaxTextureSize - 2*tr.Padding)
	if avail < 1 {
		return 0, 0, 0, fmt.Errorf("paint.Rasterize: padding %d leaves no room in %dpx", tr.Padding, MaxTextureSize)
	}
	size = min(size, MaxFontSize)
	// metrics are close to linear in the size, but rounded, so it can take a second pass
	for range 4 {
		w, h, err = tr.Measure(text, fontName, size)
		if err != nil {
			return 0, 0, 0, err
		}
		if math.Ceil(w) <= avail && math.Ceil(h) <= avail {
			return size, w, h, nil
		}
		size *= 0.99 * min(avail/math.Ceil(w), avail/math.Ceil(h))
		if size < 1 {
			return 0, 0, 0, fmt.Errorf("paint.Rasterize: text %q is too long to fit in %dpx", text, MaxTextureSize)
		}
	}
	return size, w, h, nil
}
