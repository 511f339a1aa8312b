// SPDX-License-Identifier: MIT
package render

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Hue maps v in [0, n) onto a six sector wheel running
// red, yellow, green, cyan, blue, magenta and back to red.
func Hue(v, n int) color.RGBA {
	if n <= 0 {
		return color.RGBA{A: 0xff}
	}
	scaled := v * 6
	sector := scaled / n
	t := uint8(0xff * (scaled - sector*n) / n)
	q := 0xff - t
	switch sector {
	case 0:
		return color.RGBA{0xff, t, 0, 0xff}
	case 1:
		return color.RGBA{q, 0xff, 0, 0xff}
	case 2:
		return color.RGBA{0, 0xff, t, 0xff}
	case 3:
		return color.RGBA{0, q, 0xff, 0xff}
	case 4:
		return color.RGBA{t, 0, 0xff, 0xff}
	default:
		return color.RGBA{0xff, 0, q, 0xff}
	}
}

// split converts an 8-bit color into square-root space.
func split(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: math.Sqrt(float64(c.R) / 255),
		G: math.Sqrt(float64(c.G) / 255),
		B: math.Sqrt(float64(c.B) / 255),
	}
}

// join squares a square-root space color back, saturating to [0,1] before
// quantizing to 8 bits.
func join(c colorful.Color) color.RGBA {
	sq := colorful.Color{R: c.R * c.R, G: c.G * c.G, B: c.B * c.B}
	if c.R < 0 {
		sq.R = 0
	}
	if c.G < 0 {
		sq.G = 0
	}
	if c.B < 0 {
		sq.B = 0
	}
	r, g, b := sq.Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// Blend mixes fg over bg with weight a in square-root space.
func Blend(fg, bg color.RGBA, a float64) color.RGBA {
	return join(split(bg).BlendRgb(split(fg), a))
}

// Add brightens bg by a*fg in square-root space without darkening it.
func Add(fg, bg color.RGBA, a float64) color.RGBA {
	f, b := split(fg), split(bg)
	return join(colorful.Color{R: b.R + a*f.R, G: b.G + a*f.G, B: b.B + a*f.B})
}

// Smoothstep is the cubic Hermite step from lower to upper. lower may exceed
// upper, which inverts the ramp.
func Smoothstep(lower, upper, x float64) float64 {
	x = clamp((x-lower)/(upper-lower), 0, 1)
	return x * x * (3 - 2*x)
}

func clamp(x, lower, upper float64) float64 {
	if x < lower {
		return lower
	}
	if x > upper {
		return upper
	}
	return x
}
