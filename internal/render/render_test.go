// SPDX-License-Identifier: MIT
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"testing"
)

const (
	testSize = 800
	testN    = 360
)

func TestHueSectors(t *testing.T) {
	tests := []struct {
		v    int
		want color.RGBA
	}{
		{0, color.RGBA{0xff, 0, 0, 0xff}},
		{30, color.RGBA{0xff, 127, 0, 0xff}},
		{60, color.RGBA{0xff, 0xff, 0, 0xff}},
		{120, color.RGBA{0, 0xff, 0, 0xff}},
		{180, color.RGBA{0, 0xff, 0xff, 0xff}},
		{240, color.RGBA{0, 0, 0xff, 0xff}},
		{300, color.RGBA{0xff, 0, 0xff, 0xff}},
		{359, color.RGBA{0xff, 0, 5, 0xff}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.v), func(t *testing.T) {
			if got := Hue(tt.v, testN); got != tt.want {
				t.Errorf("Hue(%d) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestHueOddSizeStaysInRange(t *testing.T) {
	for _, n := range []int{1, 7, 100, 361} {
		for v := 0; v < n; v++ {
			_ = Hue(v, n) // must not panic for sizes not divisible by six
		}
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		lower, upper, x, want float64
	}{
		{0, 1, -1, 0},
		{0, 1, 0.5, 0.5},
		{0, 1, 2, 1},
		{4, 2, 1, 1}, // inverted ramp: inside the solid radius
		{4, 2, 3, 0.5},
		{4, 2, 5, 0},
	}
	for _, tt := range tests {
		if got := Smoothstep(tt.lower, tt.upper, tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Smoothstep(%v,%v,%v) = %v, want %v", tt.lower, tt.upper, tt.x, got, tt.want)
		}
	}
}

func TestBlend(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	blue := color.RGBA{0, 0, 0xff, 0xff}
	if got := Blend(red, blue, 1); got != red {
		t.Errorf("full weight = %v, want %v", got, red)
	}
	if got := Blend(red, blue, 0); got != blue {
		t.Errorf("zero weight = %v, want %v", got, blue)
	}
	// Square-root space keeps a half mix brighter than a linear average.
	got := Blend(red, blue, 0.5)
	if got.R != 64 || got.B != 64 || got.G != 0 {
		t.Errorf("half mix = %v, want {64 0 64}", got)
	}
	if got := Add(red, red, 1); got != red {
		t.Errorf("Add saturates to %v, want %v", got, red)
	}
}

func TestFrameGeometryInBounds(t *testing.T) {
	r := NewRenderer(testSize, testN, Font{})
	_, r1 := r.Radii()
	margin := r1 + 1
	for i := 0; i < testN; i++ {
		for _, v := range []int{0, i, testN - 1, (i + testN/2) % testN} {
			x, y := r.Position(i, v)
			if x-margin < 0 || y-margin < 0 || x+margin > testSize-1 || y+margin > testSize-1 {
				t.Fatalf("disk %d (value %d) at (%.2f, %.2f) leaves the frame", i, v, x, y)
			}
		}
	}
}

func TestRenderSortedRing(t *testing.T) {
	r := NewRenderer(testSize, testN, Font{})
	array := make([]int, testN)
	for i := range array {
		array[i] = i
	}
	f := r.Render(array, "")

	// Element 0 sits at the top of the ring, drawn pure red at its center.
	x, y := r.Position(0, 0)
	if got := f.RGBAt(int(math.Round(x)), int(math.Round(y))); got != Hue(0, testN) {
		t.Errorf("center pixel = %v, want %v", got, Hue(0, testN))
	}
	if got := f.RGBAt(testSize/2, testSize/2); got != (color.RGBA{A: 0xff}) {
		t.Errorf("frame center = %v, want black", got)
	}
	if got := f.RGBAt(0, 0); got != (color.RGBA{A: 0xff}) {
		t.Errorf("corner = %v, want black", got)
	}
}

func TestRenderClearsBetweenFrames(t *testing.T) {
	r := NewRenderer(100, 12, Font{})
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	first := append([]byte(nil), r.Render(a, "").Pix...)
	b := []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	r.Render(b, "")
	second := r.Render(a, "")
	if !bytes.Equal(first, second.Pix) {
		t.Error("render depends on previous frame contents")
	}
}

func TestTextOverlay(t *testing.T) {
	font := BasicFont()
	if font.Width != 7 || font.Height != 13 {
		t.Fatalf("font cell = %dx%d, want 7x13", font.Width, font.Height)
	}
	f := NewFrame(64, 32)
	f.Text(font, "Hi", 2, 2, color.RGBA{0xff, 0xff, 0xff, 0xff})
	lit := 0
	for i := 0; i < len(f.Pix); i += 3 {
		if f.Pix[i] > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("text overlay drew nothing")
	}
	// Nothing is drawn beyond the two glyph cells.
	for y := 0; y < f.Height; y++ {
		for x := 2 + 2*font.Width; x < f.Width; x++ {
			if f.RGBAt(x, y).R != 0 {
				t.Fatalf("pixel (%d,%d) lit outside text", x, y)
			}
		}
	}
	if font.Glyph('A', -1, 0) != 0 || font.Glyph('A', 0, font.Height) != 0 {
		t.Error("glyph outside the cell should have zero coverage")
	}
}

func TestPPMWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewPPMWriter(&buf)
	f := NewFrame(2, 1)
	f.Set(0, 0, color.RGBA{1, 2, 3, 0xff})
	f.Set(1, 0, color.RGBA{4, 5, 6, 0xff})
	for n := 0; n < 2; n++ {
		if err := w.WriteFrame(f); err != nil {
			t.Fatal(err)
		}
	}
	one := "P6\n2 1\n255\n\x01\x02\x03\x04\x05\x06"
	if got := buf.String(); got != one+one {
		t.Errorf("stream = %q, want %q", got, one+one)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestPPMWriterError(t *testing.T) {
	w := NewPPMWriter(failWriter{})
	if err := w.WriteFrame(NewFrame(4, 4)); err == nil {
		t.Error("expected write error")
	}
}

func BenchmarkRender(b *testing.B) {
	r := NewRenderer(testSize, testN, BasicFont())
	array := make([]int, testN)
	for i := range array {
		array[i] = (i * 7) % testN
	}
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		r.Render(array, "Bubble")
	}
}
