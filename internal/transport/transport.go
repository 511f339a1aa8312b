// SPDX-License-Identifier: MIT
package transport

// Transport sends per-frame telemetry to an observer. Implementations must
// not block the render loop and must be safe to Close once.
type Transport interface {
	Send(data any) error
	Close() error
}

// FrameReport summarizes one rendered frame.
type FrameReport struct {
	Seq       uint32    `json:"seq"`       // frame number, starting at 1
	Stage     string    `json:"stage"`     // overlay message at render time
	Exchanges int       `json:"exchanges"` // exchanges since the previous frame
	Active    int       `json:"active"`    // indices touched since the previous frame
	Voices    int       `json:"voices"`    // total activity used as the mix divisor
	Peak      int16     `json:"peak"`      // largest absolute PCM sample
	Bands     []float32 `json:"bands,omitempty"`
}

// Multi fans a report out to several transports and returns the first error.
type Multi []Transport

// Send forwards data to every transport.
func (m Multi) Send(data any) error {
	var first error
	for _, t := range m {
		if err := t.Send(data); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Close closes every transport.
func (m Multi) Close() error {
	var first error
	for _, t := range m {
		if err := t.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

var _ Transport = Multi(nil)
