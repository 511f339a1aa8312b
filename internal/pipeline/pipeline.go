// SPDX-License-Identifier: MIT

/*
Package pipeline connects the instrumented sorts to their outputs.

A Pipeline is the frame sink: every frame requested by a sort is rendered and
written to the video stream, its activity is mixed into one audio slice, and a
FrameReport is published to the optional telemetry transport. A Runner drives
the stages of a run through a Pipeline.
*/
package pipeline

import (
	"errors"
	"fmt"

	"sortvis/internal/audio"
	"sortvis/internal/fft"
	applog "sortvis/internal/log"
	"sortvis/internal/render"
	"sortvis/internal/sorts"
	"sortvis/internal/transport"
)

// BandCount is the number of spectrum bands in each FrameReport.
const BandCount = 16

// FrameWriter consumes rendered frames.
type FrameWriter interface {
	WriteFrame(*render.Frame) error
}

// Config holds the geometry and synthesis parameters of a pipeline.
type Config struct {
	Size        int // frame edge in pixels
	Points      int // working set size
	FPS         int
	SampleRate  int
	MinHz       float64
	MaxHz       float64
	SkipSilence bool // write no samples for frames without activity
}

// Pipeline renders, sonifies and reports frames. It is not safe for
// concurrent use.
type Pipeline struct {
	cfg       Config
	renderer  *render.Renderer
	video     FrameWriter
	mixer     *audio.Mixer
	audio     audio.Writer        // nil when audio is disabled
	telemetry transport.Transport // nil when telemetry is disabled
	spectrum  *fft.Processor
	bands     []float64
	seq       uint32
}

// New returns a pipeline writing frames to video. audioOut and telemetry
// may be nil.
func New(cfg Config, video FrameWriter, audioOut audio.Writer, telemetry transport.Transport) *Pipeline {
	mixer := audio.NewMixer(audio.MixerConfig{
		SampleRate: cfg.SampleRate,
		FPS:        cfg.FPS,
		MinHz:      cfg.MinHz,
		MaxHz:      cfg.MaxHz,
		Points:     cfg.Points,
	})
	p := &Pipeline{
		cfg:       cfg,
		renderer:  render.NewRenderer(cfg.Size, cfg.Points, render.BasicFont()),
		video:     video,
		mixer:     mixer,
		audio:     audioOut,
		telemetry: telemetry,
	}
	if telemetry != nil {
		p.spectrum = fft.NewProcessor(mixer.SamplesPerFrame(), float64(cfg.SampleRate))
		p.bands = make([]float64, BandCount)
	}
	return p
}

// Emit implements sorts.Emitter. Video and audio errors abort the run;
// telemetry errors are logged and dropped.
func (p *Pipeline) Emit(array, activity []int, message string) error {
	p.seq++

	frame := p.renderer.Render(array, message)
	if err := p.video.WriteFrame(frame); err != nil {
		return fmt.Errorf("video: %w", err)
	}

	if p.audio == nil && p.telemetry == nil {
		return nil
	}

	pcm, voices := p.mixer.Mix(activity)
	if p.audio != nil && (voices > 0 || !p.cfg.SkipSilence) {
		if err := p.audio.WriteSamples(pcm); err != nil {
			return fmt.Errorf("audio: %w", err)
		}
	}

	if p.telemetry != nil {
		report := p.report(activity, message, pcm, voices)
		if err := p.telemetry.Send(report); err != nil {
			applog.Warnf("Telemetry send failed for frame %d: %v", p.seq, err)
		}
	}
	return nil
}

// Frames returns the number of frames emitted so far.
func (p *Pipeline) Frames() int {
	return int(p.seq)
}

func (p *Pipeline) report(activity []int, message string, pcm []int16, voices int) transport.FrameReport {
	active := 0
	for _, a := range activity {
		if a > 0 {
			active++
		}
	}

	peak := 0
	for _, s := range pcm {
		peak = max(peak, abs(int(s)))
	}

	p.spectrum.Process(p.mixer.Samples())
	p.spectrum.Bands(p.bands, p.cfg.MinHz, p.cfg.MaxHz)
	// Transports may hold the report after Send returns.
	bands := make([]float32, len(p.bands))
	for i, b := range p.bands {
		bands[i] = float32(b)
	}

	return transport.FrameReport{
		Seq:       p.seq,
		Stage:     message,
		Exchanges: voices / 2,
		Active:    active,
		Voices:    voices,
		Peak:      int16(min(peak, 1<<15-1)),
		Bands:     bands,
	}
}

// Close closes the audio writer and telemetry transport.
func (p *Pipeline) Close() error {
	var errs []error
	if p.audio != nil {
		if err := p.audio.Close(); err != nil {
			errs = append(errs, fmt.Errorf("audio: %w", err))
		}
	}
	if p.telemetry != nil {
		if err := p.telemetry.Close(); err != nil {
			errs = append(errs, fmt.Errorf("telemetry: %w", err))
		}
	}
	return errors.Join(errs...)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var _ sorts.Emitter = (*Pipeline)(nil)
