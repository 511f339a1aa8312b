// SPDX-License-Identifier: MIT
package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// FileWriter records PCM through the go-audio WAV encoder, which rewrites the
// RIFF and data lengths when closed. It needs a seekable destination.
type FileWriter struct {
	encoder   *wav.Encoder
	sampleBuf *audio.IntBuffer // reused for format conversion
	out       io.WriteSeeker
}

// NewFileWriter starts a mono 16-bit recording on ws.
func NewFileWriter(ws io.WriteSeeker, sampleRate, samplesPerFrame int) *FileWriter {
	return &FileWriter{
		encoder: wav.NewEncoder(ws, sampleRate, bitsPerSample, channels, formatPCM),
		sampleBuf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			Data:           make([]int, samplesPerFrame),
			SourceBitDepth: bitsPerSample,
		},
		out: ws,
	}
}

// WriteSamples encodes one slice.
func (f *FileWriter) WriteSamples(pcm []int16) error {
	if cap(f.sampleBuf.Data) < len(pcm) {
		f.sampleBuf.Data = make([]int, len(pcm))
	}
	f.sampleBuf.Data = f.sampleBuf.Data[:len(pcm)]
	for i, s := range pcm {
		f.sampleBuf.Data[i] = int(s)
	}
	if err := f.encoder.Write(f.sampleBuf); err != nil {
		return fmt.Errorf("failed to encode audio samples: %w", err)
	}
	return nil
}

// Close finalizes the header and closes the destination if it is closable.
func (f *FileWriter) Close() error {
	if err := f.encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	if c, ok := f.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

var _ Writer = (*FileWriter)(nil)

// Create opens path for audio output. With finalize set the lengths are
// patched on Close; otherwise the header declares open-ended lengths and
// samples are streamed as they are produced.
func Create(path string, sampleRate, samplesPerFrame int, finalize bool) (Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio output: %w", err)
	}
	if finalize {
		return NewFileWriter(file, sampleRate, samplesPerFrame), nil
	}
	w, err := NewStreamWriter(file, sampleRate)
	if err != nil {
		file.Close()
		return nil, err
	}
	return w, nil
}
