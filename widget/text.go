// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"sashui.org/geom"
)

// DefaultFontSize is the point size used by widgets created without
// an explicit size.
const DefaultFontSize = 15

var fontOnce struct {
	sync.Once
	font *sfnt.Font
	err  error
}

func defaultFont() (*sfnt.Font, error) {
	fontOnce.Do(func() {
		fontOnce.font, fontOnce.err = opentype.Parse(goregular.TTF)
	})
	return fontOnce.font, fontOnce.err
}

// newFace derives a face of the given point size from the default
// font.
func newFace(size float32) (font.Face, error) {
	fnt, err := defaultFont()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// measureText returns the pixel extent of text rendered with face.
func measureText(face font.Face, text string) geom.Size {
	if text == "" {
		return geom.Size{}
	}
	adv := font.MeasureString(face, text)
	metrics := face.Metrics()
	return geom.Sz(
		float32(adv.Ceil()),
		float32((metrics.Ascent + metrics.Descent).Ceil()),
	)
}
