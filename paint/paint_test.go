// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{255, 0, 0, 255}

func TestFontFile(t *testing.T) {
	ff, ok := FontFile("Times-Roman")
	assert.True(t, ok)
	assert.Equal(t, "lmroman10regular", ff)
	ff, ok = FontFile(" Courier ")
	assert.True(t, ok)
	assert.Equal(t, "lmmono10regular", ff)
	ff, ok = FontFile("lmsans10bold")
	assert.True(t, ok)
	assert.Equal(t, "lmsans10bold", ff)
	ff, ok = FontFile("Comic Sans")
	assert.False(t, ok)
	assert.Equal(t, DefaultFont, ff)
}

func TestFace(t *testing.T) {
	fl := NewFontLibrary()
	f1, err := fl.Face("Helvetica", 12)
	require.NoError(t, err)
	f2, err := fl.Face("arial", 12)
	require.NoError(t, err)
	assert.Same(t, f1, f2)
	_, err = fl.Face("Helvetica", 0)
	assert.Error(t, err)
	_, err = fl.Face("Unknown", 10)
	assert.NoError(t, err)
	_, err = fl.Face("Helvetica", 2*MaxFontSize)
	assert.Error(t, err)
}

func TestMeasure(t *testing.T) {
	tr := NewTextRenderer()
	w1, h, err := tr.Measure("Hello", "Times-Roman", 12)
	require.NoError(t, err)
	assert.Greater(t, w1, 0.0)
	assert.Equal(t, 12.0, h)
	w2, _, err := tr.Measure("Hello", "Times-Roman", 24)
	require.NoError(t, err)
	assert.Greater(t, w2, w1)
	_, _, err = tr.Measure("Hello", "Times-Roman", -1)
	assert.Error(t, err)
}

func TestRasterize(t *testing.T) {
	tr := NewTextRenderer()
	w, _, err := tr.Measure("Detector", "Courier", 20)
	require.NoError(t, err)
	img, err := tr.Rasterize("Detector", "Courier", 20, red)
	require.NoError(t, err)
	sz := img.Bounds().Size()
	assert.Equal(t, int(math.Ceil(w))+2*TextPadding, sz.X)
	assert.Equal(t, 20+2*TextPadding, sz.Y)

	// padding stays transparent, and some text pixels are drawn
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), img.RGBAAt(sz.X-1, sz.Y-1).A)
	drawn := 0
	for y := 0; y < sz.Y; y++ {
		for x := 0; x < sz.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				drawn++
				assert.Zero(t, img.RGBAAt(x, y).G)
			}
		}
	}
	assert.Greater(t, drawn, 0)

	_, err = tr.Rasterize("", "Courier", 20, red)
	assert.Error(t, err)
	_, err = tr.Rasterize("x", "Courier", 0, red)
	assert.Error(t, err)
}

func TestDiscImage(t *testing.T) {
	img := DiscImage(10, red)
	assert.Equal(t, image.Pt(22, 22), img.Bounds().Size())
	assert.Equal(t, red, img.RGBAAt(11, 11))
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), img.RGBAAt(2, 2).A)

	small := DiscImage(0.4, red)
	assert.Equal(t, image.Pt(2, 2), small.Bounds().Size())
}

func TestSquareImage(t *testing.T) {
	img := SquareImage(5, red)
	assert.Equal(t, image.Pt(12, 12), img.Bounds().Size())
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(6, 6))
	assert.Equal(t, red, img.RGBAAt(11, 11))
}

func TestFitMax(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 100))
	assert.Same(t, img, FitMax(img, 1000))
	fit := FitMax(img, 200)
	assert.Equal(t, image.Pt(200, 50), fit.Bounds().Size())

	tall := image.NewNRGBA(image.Rect(0, 0, 10, 40))
	fit = FitMax(tall, 20)
	assert.Equal(t, image.Pt(5, 20), fit.Bounds().Size())
	assert.Equal(t, image.Pt(10, 40), AsRGBA(tall).Bounds().Size())
}

func TestMarkerImageLimit(t *testing.T) {
	full := image.Pt(MaxTextureSize, MaxTextureSize)
	img := DiscImage(1e6, red)
	assert.Equal(t, full, img.Bounds().Size())
	assert.Equal(t, red, img.RGBAAt(MaxTextureSize/2, MaxTextureSize/2))
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)

	img = SquareImage(1e12, red)
	assert.Equal(t, full, img.Bounds().Size())
	assert.Equal(t, red, img.RGBAAt(0, 0))

	// just fits
	half := float64(MaxTextureSize-2) / 2
	assert.Equal(t, full, DiscImage(half, red).Bounds().Size())
}

func TestRasterizeLimit(t *testing.T) {
	tr := NewTextRenderer()
	img, err := tr.Rasterize("Detector", "Times-Roman", 20000, red)
	require.NoError(t, err)
	sz := img.Bounds().Size()
	assert.LessOrEqual(t, sz.X, MaxTextureSize)
	assert.LessOrEqual(t, sz.Y, MaxTextureSize)
	assert.Greater(t, sz.X, MaxTextureSize/2)

	_, err = tr.Rasterize(strings.Repeat("x", 100000), "Courier", 12, red)
	assert.ErrorContains(t, err, "too long")
}
