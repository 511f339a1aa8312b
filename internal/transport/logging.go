// SPDX-License-Identifier: MIT
package transport

import (
	applog "sortvis/internal/log"
)

// LoggingTransport writes each report to the debug log.
type LoggingTransport struct{}

// NewLoggingTransport creates a new LoggingTransport instance.
func NewLoggingTransport() *LoggingTransport {
	applog.Debugf("Transport: Using LoggingTransport")
	return &LoggingTransport{}
}

// Send logs frame reports. Other values are logged with %+v.
func (lt *LoggingTransport) Send(data any) error {
	if r, ok := data.(FrameReport); ok {
		applog.Debugf("frame %d [%s] exchanges=%d active=%d peak=%d",
			r.Seq, r.Stage, r.Exchanges, r.Active, r.Peak)
		return nil
	}
	applog.Debugf("telemetry: %+v", data)
	return nil
}

// Close is a no-op for LoggingTransport.
func (lt *LoggingTransport) Close() error {
	return nil
}

var _ Transport = (*LoggingTransport)(nil)
