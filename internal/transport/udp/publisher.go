// SPDX-License-Identifier: MIT
package udp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	applog "sortvis/internal/log"
	"sortvis/internal/transport"
)

/*
Frame report packet (BigEndian):

	| Field      | Type      | Bytes |
	|------------|-----------|-------|
	| Sequence   | uint32    | 4     |
	| Exchanges  | uint32    | 4     |
	| Active     | uint16    | 2     |
	| Voices     | uint32    | 4     |
	| Peak       | int16     | 2     |
	| Band count | uint16    | 2     |
	| Bands      | []float32 | N * 4 |

The stage label is not sent; consumers correlate by sequence number.
*/

// HeaderSize is the packet length without bands.
const HeaderSize = 18

// Publisher packs frame reports into datagrams and sends them through a
// UDPSender. It satisfies transport.Transport.
type Publisher struct {
	sender       *UDPSender
	packetBuffer *bytes.Buffer // reused between packets
}

// NewPublisher wraps sender.
func NewPublisher(sender *UDPSender) (*Publisher, error) {
	if sender == nil {
		return nil, fmt.Errorf("UDPPublisher: UDP sender cannot be nil")
	}
	return &Publisher{sender: sender, packetBuffer: new(bytes.Buffer)}, nil
}

// Dial resolves target and returns a ready publisher.
func Dial(target string) (*Publisher, error) {
	sender, err := NewUDPSender(target)
	if err != nil {
		return nil, err
	}
	return NewPublisher(sender)
}

// Send packs a transport.FrameReport (value or pointer) and sends it. Other
// types are rejected.
func (p *Publisher) Send(data any) error {
	var r transport.FrameReport
	switch v := data.(type) {
	case transport.FrameReport:
		r = v
	case *transport.FrameReport:
		r = *v
	default:
		return fmt.Errorf("UDPPublisher: unsupported payload %T", data)
	}

	if err := Encode(p.packetBuffer, r); err != nil {
		return fmt.Errorf("UDPPublisher: error packing frame %d: %w", r.Seq, err)
	}
	if err := p.sender.Send(p.packetBuffer.Bytes()); err != nil {
		return err
	}
	applog.Debugf("UDPPublisher: Sent packet %d (%d bytes)", r.Seq, p.packetBuffer.Len())
	return nil
}

// Close closes the sender.
func (p *Publisher) Close() error {
	return p.sender.Close()
}

// Encode resets buf and writes r in packet layout.
func Encode(buf *bytes.Buffer, r transport.FrameReport) error {
	buf.Reset()
	fields := []any{
		r.Seq,
		uint32(min(int64(r.Exchanges), math.MaxUint32)),
		uint16(min(r.Active, math.MaxUint16)),
		uint32(min(int64(r.Voices), math.MaxUint32)),
		r.Peak,
		uint16(len(r.Bands)),
	}
	for _, f := range fields {
		if err := binary.Write(buf, binary.BigEndian, f); err != nil {
			return err
		}
	}
	if len(r.Bands) == 0 {
		return nil
	}
	return binary.Write(buf, binary.BigEndian, r.Bands)
}

// Decode parses a packet produced by Encode.
func Decode(packet []byte) (transport.FrameReport, error) {
	var r transport.FrameReport
	if len(packet) < HeaderSize {
		return r, fmt.Errorf("short packet: %d bytes", len(packet))
	}
	be := binary.BigEndian
	r.Seq = be.Uint32(packet[0:])
	r.Exchanges = int(be.Uint32(packet[4:]))
	r.Active = int(be.Uint16(packet[8:]))
	r.Voices = int(be.Uint32(packet[10:]))
	r.Peak = int16(be.Uint16(packet[14:]))
	n := int(be.Uint16(packet[16:]))
	if len(packet) != HeaderSize+4*n {
		return r, fmt.Errorf("packet declares %d bands but is %d bytes", n, len(packet))
	}
	if n > 0 {
		r.Bands = make([]float32, n)
		for i := range r.Bands {
			r.Bands[i] = math.Float32frombits(be.Uint32(packet[HeaderSize+4*i:]))
		}
	}
	return r, nil
}

var _ transport.Transport = (*Publisher)(nil)
