// SPDX-License-Identifier: MIT
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font is a fixed-width glyph source. Glyph returns the coverage in [0,1] of
// pixel (dx, dy) inside the cell of c.
type Font struct {
	Width  int
	Height int
	Glyph  func(c rune, dx, dy int) float64
}

// BasicFont returns the 7x13 bitmap face from x/image.
func BasicFont() Font {
	face := basicfont.Face7x13
	cache := make(map[rune][]float64)

	glyph := func(c rune, dx, dy int) float64 {
		if dx < 0 || dy < 0 || dx >= face.Advance || dy >= face.Height {
			return 0
		}
		cells, ok := cache[c]
		if !ok {
			cells = rasterize(face, c)
			cache[c] = cells
		}
		if cells == nil {
			return 0
		}
		return cells[dy*face.Advance+dx]
	}
	return Font{Width: face.Advance, Height: face.Height, Glyph: glyph}
}

// rasterize copies the coverage of c into an Advance x Height cell, or
// returns nil when the face has no glyph for c.
func rasterize(face *basicfont.Face, c rune) []float64 {
	dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, face.Ascent), c)
	if !ok {
		return nil
	}
	cells := make([]float64, face.Advance*face.Height)
	for y := 0; y < face.Height; y++ {
		for x := 0; x < face.Advance; x++ {
			p := image.Pt(x, y)
			if !p.In(dr) {
				continue
			}
			src := maskp.Add(p.Sub(dr.Min))
			a := color.AlphaModel.Convert(mask.At(src.X, src.Y)).(color.Alpha)
			cells[y*face.Advance+x] = float64(a.A) / 0xff
		}
	}
	return cells
}
