// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmmono10italic"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10oblique"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// DefaultFont is the font file used for unknown font names.
const DefaultFont = "lmroman10regular"

// fontFiles are the embedded Latin Modern fonts, by file name.
var fontFiles = map[string][]byte{
	"lmroman10regular":    lmroman10regular.TTF,
	"lmroman10bold":       lmroman10bold.TTF,
	"lmroman10italic":     lmroman10italic.TTF,
	"lmroman10bolditalic": lmroman10bolditalic.TTF,
	"lmsans10regular":     lmsans10regular.TTF,
	"lmsans10bold":        lmsans10bold.TTF,
	"lmsans10oblique":     lmsans10oblique.TTF,
	"lmmono10regular":     lmmono10regular.TTF,
	"lmmono10italic":      lmmono10italic.TTF,
}

// FontFamilies maps lower-case font names, including the standard
// PostScript names used by geometry files, to font file names.
var FontFamilies = map[string]string{
	"times-roman":       "lmroman10regular",
	"times":             "lmroman10regular",
	"serif":             "lmroman10regular",
	"roman":             "lmroman10regular",
	"times-bold":        "lmroman10bold",
	"times-italic":      "lmroman10italic",
	"times-bolditalic":  "lmroman10bolditalic",
	"helvetica":         "lmsans10regular",
	"arial":             "lmsans10regular",
	"sans-serif":        "lmsans10regular",
	"sans":              "lmsans10regular",
	"helvetica-bold":    "lmsans10bold",
	"helvetica-oblique": "lmsans10oblique",
	"courier":           "lmmono10regular",
	"monospace":         "lmmono10regular",
	"mono":              "lmmono10regular",
	"courier-oblique":   "lmmono10italic",
}

// FontFile returns the font file name for the given font name,
// and whether it was found. Unknown names give [DefaultFont].
// Font file names are also accepted directly.
func FontFile(name string) (string, bool) {
	nm := strings.ToLower(strings.TrimSpace(name))
	if ff, ok := FontFamilies[nm]; ok {
		return ff, true
	}
	if _, ok := fontFiles[nm]; ok {
		return nm, true
	}
	return DefaultFont, false
}

// MaxFontSize is the largest font size in points that faces are made for.
// Text metrics overflow 26.6 fixed point not far above it.
const MaxFontSize = 1 << 16

type faceKey struct {
	file string
	size float64
}

// FontLibrary loads fonts and caches font faces by file and size.
// It is safe for concurrent use, but the returned faces are not.
type FontLibrary struct {
	mu    sync.Mutex
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
}

// Fonts is the default font library.
var Fonts = NewFontLibrary()

// NewFontLibrary returns a new empty [FontLibrary].
func NewFontLibrary() *FontLibrary {
	return &FontLibrary{fonts: map[string]*opentype.Font{}, faces: map[faceKey]font.Face{}}
}

// Face returns the face for the given font name at the given size in points,
// at 72 DPI so that one point is one pixel.
func (fl *FontLibrary) Face(name string, size float64) (font.Face, error) {
	if size <= 0 || size > MaxFontSize {
		return nil, fmt.Errorf("paint.Face: invalid font size %g", size)
	}
	file, ok := FontFile(name)
	if !ok {
		slog.Debug("unknown font, using default", "font", name, "default", DefaultFont)
	}
	fl.mu.Lock()
	defer fl.mu.Unlock()
	key := faceKey{file, size}
	if face, has := fl.faces[key]; has {
		return face, nil
	}
	f, has := fl.fonts[file]
	if !has {
		var err error
		f, err = opentype.Parse(fontFiles[file])
		if err != nil {
			return nil, fmt.Errorf("paint.Face: parsing font %s: %w", file, err)
		}
		fl.fonts[file] = f
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("paint.Face: %s at %gpt: %w", file, size, err)
	}
	fl.faces[key] = face
	return face, nil
}
