// SPDX-License-Identifier: MIT
/*
Package audio turns per-index swap activity into mono 16-bit PCM and writes
it as a WAV stream.

Each frame covers sampleRate/fps samples. Every index touched since the last
frame contributes one enveloped sine voice whose pitch rises linearly with
the index. A voice is weighted by its swap count over the total swap count,
so the weights always sum to one and the mix cannot clip.
*/
package audio

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Default synthesis parameters.
const (
	DefaultSampleRate = 44100
	DefaultFPS        = 60
	DefaultMinHz      = 20
	DefaultMaxHz      = 1000
)

// MixerConfig describes one frame's audio slice.
type MixerConfig struct {
	SampleRate int     // samples per second
	FPS        int     // frames per second
	MinHz      float64 // pitch of index 0
	MaxHz      float64 // pitch approached by index n
	Points     int     // working set size n
}

// Mixer synthesizes audio slices. All buffers are allocated once and reused,
// so the slice returned by Mix is only valid until the next call.
type Mixer struct {
	cfg      MixerConfig
	samples  []float64
	voice    []float64
	envelope []float64
	pcm      []int16
}

// NewMixer allocates the per-frame buffers and precomputes the envelope.
func NewMixer(cfg MixerConfig) *Mixer {
	n := 0
	if cfg.FPS > 0 {
		n = cfg.SampleRate / cfg.FPS
	}
	m := &Mixer{
		cfg:      cfg,
		samples:  make([]float64, n),
		voice:    make([]float64, n),
		envelope: make([]float64, n),
		pcm:      make([]int16, n),
	}
	// Cubed parabola: zero at both ends, one at the center.
	if n > 1 {
		for j := range m.envelope {
			u := 1 - float64(j)/float64(n-1)
			p := 1 - (u*2-1)*(u*2-1)
			m.envelope[j] = p * p * p
		}
	}
	return m
}

// SamplesPerFrame returns the slice length.
func (m *Mixer) SamplesPerFrame() int {
	return len(m.pcm)
}

// Frequency returns the voice pitch for index i.
func (m *Mixer) Frequency(i int) float64 {
	if m.cfg.Points <= 0 {
		return m.cfg.MinHz
	}
	return float64(i)*(m.cfg.MaxHz-m.cfg.MinHz)/float64(m.cfg.Points) + m.cfg.MinHz
}

// Mix renders one audio slice from activity and returns it with the total
// swap count used as the voice divisor. With no activity the slice is
// silent.
func (m *Mixer) Mix(activity []int) ([]int16, int) {
	voices := 0
	for _, a := range activity {
		voices += a
	}

	clear(m.samples)
	if voices > 0 {
		step := 2 * math.Pi / float64(m.cfg.SampleRate)
		for i, a := range activity {
			if a == 0 {
				continue
			}
			w := step * m.Frequency(i)
			for j := range m.voice {
				m.voice[j] = math.Sin(float64(j)*w) * m.envelope[j]
			}
			floats.AddScaled(m.samples, float64(a)/float64(voices), m.voice)
		}
	}

	for j, s := range m.samples {
		m.pcm[j] = int16(clamp(s, -1, 1) * math.MaxInt16)
	}
	return m.pcm, voices
}

// Samples returns the float mix of the last Mix call.
func (m *Mixer) Samples() []float64 {
	return m.samples
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
