// SPDX-License-Identifier: MIT

// Package fft summarizes each audio slice as a coarse magnitude spectrum for
// telemetry consumers.
package fft

import (
	"math"
	"math/cmplx"

	"sortvis/pkg/bitint"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// Workspace holds pre-allocated buffers for FFT calculations.
type Workspace struct {
	input     []float64    // windowed, zero padded samples
	fftOutput []complex128 // complex coefficients
	magnitude []float64    // normalized magnitudes
	window    []float64    // Hann coefficients for the slice length
}

// Processor computes band magnitudes for fixed-length audio slices.
type Processor struct {
	fftSize    int
	sliceLen   int
	sampleRate float64
	workspace  Workspace
	fftObj     *fourier.FFT
}

// NewProcessor sizes the transform to the next power of two at or above
// sliceLen and precomputes a Hann window over the slice.
func NewProcessor(sliceLen int, sampleRate float64) *Processor {
	fftSize := bitint.NextPowerOfTwo(sliceLen)

	coeffs := make([]float64, sliceLen)
	for i := range coeffs {
		coeffs[i] = 1
	}
	window.Hann(coeffs)

	outputSize := fftSize/2 + 1
	return &Processor{
		fftSize:    fftSize,
		sliceLen:   sliceLen,
		sampleRate: sampleRate,
		fftObj:     fourier.NewFFT(fftSize),
		workspace: Workspace{
			input:     make([]float64, fftSize),
			fftOutput: make([]complex128, outputSize),
			magnitude: make([]float64, outputSize),
			window:    coeffs,
		},
	}
}

// Process transforms one slice of samples in [-1,1]. Extra samples are
// ignored and missing ones are zero.
func (p *Processor) Process(samples []float64) {
	for i := range p.workspace.input {
		if i < p.sliceLen && i < len(samples) {
			p.workspace.input[i] = samples[i] * p.workspace.window[i]
		} else {
			p.workspace.input[i] = 0
		}
	}
	p.fftObj.Coefficients(p.workspace.fftOutput, p.workspace.input)
	scale := 2 / float64(max(p.sliceLen, 1))
	for i, c := range p.workspace.fftOutput {
		p.workspace.magnitude[i] = cmplx.Abs(c) * scale
	}
}

// Magnitudes returns the spectrum of the last slice. The slice is reused.
func (p *Processor) Magnitudes() []float64 {
	return p.workspace.magnitude
}

// FrequencyBin returns the frequency in Hz of bin i.
func (p *Processor) FrequencyBin(i int) float64 {
	if i < 0 || i >= len(p.workspace.fftOutput) {
		return 0
	}
	return p.fftObj.Freq(i) * p.sampleRate
}

// Bands writes into dst the peak magnitude of len(dst) equal-width bands
// spanning minHz to maxHz.
func (p *Processor) Bands(dst []float64, minHz, maxHz float64) {
	clear(dst)
	if len(dst) == 0 || maxHz <= minHz {
		return
	}
	width := (maxHz - minHz) / float64(len(dst))
	for i, m := range p.workspace.magnitude {
		hz := p.FrequencyBin(i)
		if hz < minHz || hz >= maxHz {
			continue
		}
		b := int(math.Floor((hz - minHz) / width))
		if b >= len(dst) {
			b = len(dst) - 1
		}
		dst[b] = math.Max(dst[b], m)
	}
}

// Size returns the transform length.
func (p *Processor) Size() int {
	return p.fftSize
}
