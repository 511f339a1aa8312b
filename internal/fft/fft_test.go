// SPDX-License-Identifier: MIT
package fft

import (
	"math"
	"testing"

	"sortvis/pkg/utils"
)

const (
	testSliceLen   = 735
	testSampleRate = 44100
)

func TestProcessorSize(t *testing.T) {
	p := NewProcessor(testSliceLen, testSampleRate)
	if p.Size() != 1024 {
		t.Errorf("fft size = %d, want 1024", p.Size())
	}
	if len(p.Magnitudes()) != 513 {
		t.Errorf("bins = %d, want 513", len(p.Magnitudes()))
	}
}

func TestPeakFollowsTone(t *testing.T) {
	p := NewProcessor(testSliceLen, testSampleRate)
	for _, hz := range []float64{220, 440, 880} {
		p.Process(utils.GenerateSineWave(testSliceLen, testSampleRate, hz))
		mags := p.Magnitudes()
		peak := utils.FindPeakBin(mags, 1, len(mags)-1)
		binWidth := float64(testSampleRate) / float64(p.Size())
		if got := p.FrequencyBin(peak); math.Abs(got-hz) > binWidth {
			t.Errorf("peak at %.1f Hz, want %.1f Hz", got, hz)
		}
	}
}

func TestBands(t *testing.T) {
	p := NewProcessor(testSliceLen, testSampleRate)
	p.Process(utils.GenerateSineWave(testSliceLen, testSampleRate, 900))
	bands := make([]float64, 10)
	p.Bands(bands, 0, 1000)
	loudest := utils.FindPeakBin(bands, 0, len(bands)-1)
	if loudest != 9 {
		t.Errorf("loudest band = %d, want 9 (%v)", loudest, bands)
	}

	p.Process(make([]float64, testSliceLen))
	p.Bands(bands, 0, 1000)
	for i, b := range bands {
		if b != 0 {
			t.Errorf("silent band %d = %v", i, b)
		}
	}
}

func TestFFTHotPath(t *testing.T) {
	p := NewProcessor(testSliceLen, testSampleRate)
	input := utils.GenerateSineWave(testSliceLen, testSampleRate, 440)
	bands := make([]float64, 16)

	p.Process(input)
	allocs := testing.AllocsPerRun(100, func() {
		p.Process(input)
		p.Bands(bands, 20, 1000)
	})
	if allocs > 0 {
		t.Errorf("Expected zero allocations in FFT hot path, got %.1f", allocs)
	}
}

func BenchmarkProcess(b *testing.B) {
	p := NewProcessor(testSliceLen, testSampleRate)
	input := utils.GenerateSineWave(testSliceLen, testSampleRate, 440)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		p.Process(input)
	}
}
