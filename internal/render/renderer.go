// SPDX-License-Identifier: MIT

// Package render draws the working array as a ring of colored disks and
// serializes frames as binary PPM.
package render

import (
	"image/color"
	"math"
)

// Renderer owns the reusable frame and the ring geometry.
type Renderer struct {
	frame *Frame
	n     int
	r0    float64 // solid disk radius
	r1    float64 // outer edge of the anti-aliasing ramp
	pad   int
	font  Font
}

// NewRenderer returns a renderer for n elements on a size x size frame.
// Disk radii and the text padding scale with n.
func NewRenderer(size, n int, font Font) *Renderer {
	return &Renderer{
		frame: NewFrame(size, size),
		n:     n,
		r0:    float64(n) / 180,
		r1:    float64(n) / 90,
		pad:   n / 64,
		font:  font,
	}
}

// Radii returns the inner and outer disk radius.
func (r *Renderer) Radii() (float64, float64) {
	return r.r0, r.r1
}

// Position returns the disk center for index i holding value v. Angle is
// fixed by i. The ring radius shrinks linearly with |i - v| so misplaced
// elements sit closer to the center.
func (r *Renderer) Position(i, v int) (x, y float64) {
	size := float64(r.frame.Width)
	n := float64(r.n)
	delta := math.Abs(float64(i-v)) / (n / 2)
	theta := float64(i) * 2 * math.Pi / n
	radius := size * 15 / 32 * (1 - delta)
	return -math.Sin(theta)*radius + size/2, -math.Cos(theta)*radius + size/2
}

// Render draws array and the optional message into the reused frame and
// returns it. The frame is overwritten by the next call.
func (r *Renderer) Render(array []int, message string) *Frame {
	f := r.frame
	f.Clear()
	for i, v := range array {
		x, y := r.Position(i, v)
		f.Disk(x, y, r.r0, r.r1, Hue(v, r.n))
	}
	if message != "" && r.font.Glyph != nil {
		f.Text(r.font, message, r.pad, r.pad, color.RGBA{0xff, 0xff, 0xff, 0xff})
	}
	return f
}
