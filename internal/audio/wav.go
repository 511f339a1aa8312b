// SPDX-License-Identifier: MIT
package audio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// Writer consumes PCM slices.
type Writer interface {
	WriteSamples(pcm []int16) error
	Close() error
}

// openLength is written to both length fields of a streamed header. The
// total is unknown up front, so readers must treat the data chunk as
// running to end of stream.
const openLength = 0xffffffff

const (
	formatPCM     = 1
	channels      = 1
	bitsPerSample = 16
	blockAlign    = channels * bitsPerSample / 8
)

// StreamWriter writes a mono 16-bit WAV stream without seeking.
type StreamWriter struct {
	w      *bufio.Writer
	closer io.Closer
}

// NewStreamWriter writes the WAV header to w. If w is an io.Closer it is
// closed by Close.
func NewStreamWriter(w io.Writer, sampleRate int) (*StreamWriter, error) {
	sw := &StreamWriter{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		sw.closer = c
	}
	if err := writeHeader(sw.w, sampleRate); err != nil {
		return nil, fmt.Errorf("failed to write WAV header: %w", err)
	}
	if err := sw.w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write WAV header: %w", err)
	}
	return sw, nil
}

// writeHeader emits big-endian chunk ids with little-endian fields.
func writeHeader(w io.Writer, sampleRate int) error {
	fields := []any{
		riff.RiffID,
		uint32(openLength),
		riff.WavFormatID,
		riff.FmtID,
		uint32(16), // fmt chunk size
		uint16(formatPCM),
		uint16(channels),
		uint32(sampleRate),
		uint32(sampleRate * blockAlign), // byte rate
		uint16(blockAlign),
		uint16(bitsPerSample),
		riff.DataFormatID,
		uint32(openLength),
	}
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	return nil
}

// WriteSamples appends pcm as little-endian samples and flushes.
func (s *StreamWriter) WriteSamples(pcm []int16) error {
	if err := binary.Write(s.w, binary.LittleEndian, pcm); err != nil {
		return fmt.Errorf("failed to write audio samples: %w", err)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush audio samples: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer when it is closable.
func (s *StreamWriter) Close() error {
	if err := s.w.Flush(); err != nil {
		return err
	}
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

var _ Writer = (*StreamWriter)(nil)
