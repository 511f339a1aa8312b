// SPDX-License-Identifier: MIT
package render

import (
	"image"
	"image/color"
	"math"
)

// Frame is an 8-bit RGB raster stored row-major, top to bottom, with
// channels in R, G, B order. It implements image.Image.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame allocates a black frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// Clear paints the whole frame black.
func (f *Frame) Clear() {
	clear(f.Pix)
}

func (f *Frame) offset(x, y int) int {
	return (y*f.Width + x) * 3
}

// RGBAt returns the pixel at (x, y). Out of range pixels are black.
func (f *Frame) RGBAt(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return color.RGBA{A: 0xff}
	}
	o := f.offset(x, y)
	return color.RGBA{f.Pix[o], f.Pix[o+1], f.Pix[o+2], 0xff}
}

// Set writes the pixel at (x, y). Out of range writes are dropped.
func (f *Frame) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	o := f.offset(x, y)
	f.Pix[o], f.Pix[o+1], f.Pix[o+2] = c.R, c.G, c.B
}

// ColorModel implements image.Image.
func (f *Frame) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.Width, f.Height) }

// At implements image.Image.
func (f *Frame) At(x, y int) color.Color { return f.RGBAt(x, y) }

// Disk draws an anti-aliased filled disk centered at (cx, cy). Coverage is
// full inside r0 and falls to zero at r1 along a smoothstep. The scan is
// clipped to the frame.
func (f *Frame) Disk(cx, cy, r0, r1 float64, c color.RGBA) {
	x0 := max(int(math.Floor(cx-r1-1)), 0)
	x1 := min(int(math.Ceil(cx+r1+1)), f.Width-1)
	y0 := max(int(math.Floor(cy-r1-1)), 0)
	y1 := min(int(math.Ceil(cy+r1+1)), f.Height-1)
	for py := y0; py <= y1; py++ {
		dy := float64(py) - cy
		for px := x0; px <= x1; px++ {
			dx := float64(px) - cx
			a := Smoothstep(r1, r0, math.Hypot(dx, dy))
			if a <= 0 {
				continue
			}
			f.Set(px, py, Blend(c, f.RGBAt(px, py), a))
		}
	}
}

// Text overlays s with its top-left corner at (x, y), one font cell per
// rune. Glyph coverage only ever adds brightness.
func (f *Frame) Text(font Font, s string, x, y int, c color.RGBA) {
	col := 0
	for _, r := range s {
		ox := x + col*font.Width
		for dy := 0; dy < font.Height; dy++ {
			for dx := 0; dx < font.Width; dx++ {
				a := font.Glyph(r, dx, dy)
				if a <= 0 {
					continue
				}
				px, py := ox+dx, y+dy
				f.Set(px, py, Add(c, f.RGBAt(px, py), a))
			}
		}
		col++
	}
}
