// SPDX-License-Identifier: MIT
package render

import (
	"bufio"
	"fmt"
	"io"
)

// PPMWriter streams frames as concatenated binary PPM (P6) images.
type PPMWriter struct {
	w *bufio.Writer
}

// NewPPMWriter wraps w. Each frame is flushed as soon as it is written.
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriterSize(w, 64*1024)}
}

// WriteFrame writes the header and raw pixels of f.
func (p *PPMWriter) WriteFrame(f *Frame) error {
	if _, err := fmt.Fprintf(p.w, "P6\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	if _, err := p.w.Write(f.Pix); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush frame: %w", err)
	}
	return nil
}
