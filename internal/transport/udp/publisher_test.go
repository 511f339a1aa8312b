// SPDX-License-Identifier: MIT
package udp

import (
	"bytes"
	"net"
	"testing"
	"time"

	"sortvis/internal/transport"
)

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		name   string
		report transport.FrameReport
		size   int
	}{
		{"no bands", transport.FrameReport{Seq: 1, Exchanges: 359, Active: 2, Voices: 4, Peak: -12}, HeaderSize},
		{"bands", transport.FrameReport{Seq: 77, Exchanges: 3, Active: 6, Voices: 6, Peak: 32767,
			Bands: []float32{0, 0.5, 1}}, HeaderSize + 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, tt.report); err != nil {
				t.Fatal(err)
			}
			if buf.Len() != tt.size {
				t.Fatalf("packet size = %d, want %d", buf.Len(), tt.size)
			}
			got, err := Decode(buf.Bytes())
			if err != nil {
				t.Fatal(err)
			}
			if got.Seq != tt.report.Seq || got.Exchanges != tt.report.Exchanges ||
				got.Active != tt.report.Active || got.Voices != tt.report.Voices ||
				got.Peak != tt.report.Peak || len(got.Bands) != len(tt.report.Bands) {
				t.Errorf("decoded %+v, want %+v", got, tt.report)
			}
			for i := range got.Bands {
				if got.Bands[i] != tt.report.Bands[i] {
					t.Errorf("band %d = %v, want %v", i, got.Bands[i], tt.report.Bands[i])
				}
			}
		})
	}
}

func TestDecodeRejectsTruncated(t *testing.T) {
	if _, err := Decode(make([]byte, HeaderSize-1)); err == nil {
		t.Error("expected error for short packet")
	}
	var buf bytes.Buffer
	_ = Encode(&buf, transport.FrameReport{Bands: []float32{1, 2}})
	if _, err := Decode(buf.Bytes()[:buf.Len()-1]); err == nil {
		t.Error("expected error for truncated bands")
	}
}

func TestPublisherSend(t *testing.T) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Skipf("cannot listen on loopback: %v", err)
	}
	defer conn.Close()

	p, err := Dial(conn.LocalAddr().String())
	if err != nil {
		t.Fatal(err)
	}
	report := transport.FrameReport{Seq: 9, Stage: "Bubble", Exchanges: 10, Active: 11, Voices: 20, Peak: 100}
	if err := p.Send(&report); err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 1500)
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, _, err := conn.ReadFromUDP(buf)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(buf[:n])
	if err != nil {
		t.Fatal(err)
	}
	if got.Seq != 9 || got.Exchanges != 10 || got.Voices != 20 {
		t.Errorf("received %+v", got)
	}
	if packets, size := p.sender.Sent(); packets != 1 || size != HeaderSize {
		t.Errorf("Sent() = (%d, %d), want (1, %d)", packets, size, HeaderSize)
	}

	if err := p.Send("not a report"); err == nil {
		t.Error("expected error for unsupported payload")
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
	if err := p.Send(report); err == nil {
		t.Error("expected error after close")
	}
}

func TestNewPublisherNilSender(t *testing.T) {
	if _, err := NewPublisher(nil); err == nil {
		t.Error("expected error for nil sender")
	}
}
