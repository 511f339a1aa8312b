// SPDX-License-Identifier: MIT
package audio

import (
	"math"
	"testing"
)

const testPoints = 360

func newTestMixer() *Mixer {
	return NewMixer(MixerConfig{
		SampleRate: DefaultSampleRate,
		FPS:        DefaultFPS,
		MinHz:      DefaultMinHz,
		MaxHz:      DefaultMaxHz,
		Points:     testPoints,
	})
}

func TestMixerSilence(t *testing.T) {
	m := newTestMixer()
	if m.SamplesPerFrame() != 735 {
		t.Fatalf("samples per frame = %d, want 735", m.SamplesPerFrame())
	}
	pcm, voices := m.Mix(make([]int, testPoints))
	if voices != 0 {
		t.Errorf("voices = %d, want 0", voices)
	}
	for i, s := range pcm {
		if s != 0 {
			t.Fatalf("sample %d = %d, want silence", i, s)
		}
	}
}

func TestMixerBounds(t *testing.T) {
	m := newTestMixer()
	tests := []struct {
		name     string
		activity func([]int)
	}{
		{"single", func(a []int) { a[100] = 1 }},
		{"heavy single", func(a []int) { a[5] = 500 }},
		{"all", func(a []int) {
			for i := range a {
				a[i] = 1
			}
		}},
		{"uneven", func(a []int) {
			for i := range a {
				a[i] = i % 7
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activity := make([]int, testPoints)
			tt.activity(activity)
			pcm, _ := m.Mix(activity)
			for j, s := range m.Samples() {
				if math.IsNaN(s) || s < -1 || s > 1 {
					t.Fatalf("float sample %d = %v out of [-1,1]", j, s)
				}
			}
			if pcm[0] != 0 || pcm[len(pcm)-1] != 0 {
				t.Errorf("envelope should silence the slice edges, got %d and %d", pcm[0], pcm[len(pcm)-1])
			}
		})
	}
}

func TestMixerWeighting(t *testing.T) {
	m := newTestMixer()
	one := make([]int, testPoints)
	one[200] = 1
	pcm, _ := m.Mix(one)
	solo := append([]int16(nil), pcm...)

	// The same index swapped three times alone has the same weight of one.
	three := make([]int, testPoints)
	three[200] = 3
	pcm, voices := m.Mix(three)
	if voices != 3 {
		t.Errorf("voices = %d, want 3", voices)
	}
	for j := range pcm {
		if pcm[j] != solo[j] {
			t.Fatalf("sample %d = %d, want %d", j, pcm[j], solo[j])
		}
	}

	// Sharing with another voice scales the first by its swap share.
	shared := make([]int, testPoints)
	shared[200] = 3
	shared[10] = 1
	m.Mix(shared)
	mid := m.SamplesPerFrame() / 2
	w := 2 * math.Pi / DefaultSampleRate
	want := 0.75*math.Sin(float64(mid)*w*m.Frequency(200))*m.envelope[mid] +
		0.25*math.Sin(float64(mid)*w*m.Frequency(10))*m.envelope[mid]
	if got := m.Samples()[mid]; math.Abs(got-want) > 1e-9 {
		t.Errorf("mixed sample = %v, want %v", got, want)
	}
}

func TestFrequencyRange(t *testing.T) {
	m := newTestMixer()
	if got := m.Frequency(0); got != DefaultMinHz {
		t.Errorf("Frequency(0) = %v, want %v", got, DefaultMinHz)
	}
	last := m.Frequency(testPoints - 1)
	if last >= DefaultMaxHz || last <= DefaultMinHz {
		t.Errorf("Frequency(n-1) = %v outside (%v, %v)", last, DefaultMinHz, DefaultMaxHz)
	}
}

func TestEnvelopeShape(t *testing.T) {
	m := newTestMixer()
	n := len(m.envelope)
	if m.envelope[0] != 0 || m.envelope[n-1] != 0 {
		t.Error("envelope must start and end at zero")
	}
	peak := 0.0
	for _, e := range m.envelope {
		peak = math.Max(peak, e)
	}
	if math.Abs(peak-1) > 1e-3 {
		t.Errorf("envelope peak = %v, want ~1", peak)
	}
}

func TestMixerDegenerateConfig(t *testing.T) {
	m := NewMixer(MixerConfig{SampleRate: 60, FPS: 60, Points: 4})
	pcm, _ := m.Mix([]int{1, 0, 0, 1})
	if len(pcm) != 1 || pcm[0] != 0 {
		t.Errorf("single sample slice = %v, want [0]", pcm)
	}
	m = NewMixer(MixerConfig{SampleRate: 44100, FPS: 0, Points: 4})
	if pcm, _ := m.Mix([]int{1, 1, 1, 1}); len(pcm) != 0 {
		t.Errorf("zero fps slice length = %d, want 0", len(pcm))
	}
}

func TestMixNoAllocsHotPath(t *testing.T) {
	m := newTestMixer()
	activity := make([]int, testPoints)
	activity[3], activity[4], activity[300] = 1, 1, 2
	allocs := testing.AllocsPerRun(20, func() {
		m.Mix(activity)
	})
	if allocs > 0 {
		t.Errorf("Expected zero allocations in Mix, got %.1f", allocs)
	}
}

func BenchmarkMix(b *testing.B) {
	m := newTestMixer()
	activity := make([]int, testPoints)
	for i := range activity {
		activity[i] = i % 2
	}
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m.Mix(activity)
	}
}
