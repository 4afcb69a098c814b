package core

import "github.com/rs/zerolog"

// LogHook is a TelemetryHook that writes request lifecycle events through a
// zerolog logger. Events carry operational metadata only, so the output is
// safe to keep in ordinary application logs.
type LogHook struct {
	logger zerolog.Logger
}

// NewLogHook creates a telemetry hook backed by the given logger.
func NewLogHook(logger zerolog.Logger) *LogHook {
	return &LogHook{logger: logger}
}

// OnRequestStart implements TelemetryHook.
func (h *LogHook) OnRequestStart(e RequestStartEvent) {
	h.logger.Debug().
		Str("operation", e.Operation).
		Str("method", e.Method).
		Str("path", e.Path).
		Str("client_id", e.ClientID).
		Int("attempt", e.Attempt).
		Msg("request start")
}

// OnRequestEnd implements TelemetryHook.
func (h *LogHook) OnRequestEnd(e RequestEndEvent) {
	evt := h.logger.Debug()
	if e.Err != nil {
		evt = h.logger.Warn().Err(e.Err)
	}
	evt.
		Str("operation", e.Operation).
		Str("method", e.Method).
		Str("path", e.Path).
		Str("client_id", e.ClientID).
		Str("request_id", e.RequestID).
		Int("attempt", e.Attempt).
		Int("status", e.Status).
		Dur("duration", e.Duration).
		Msg("request end")
}

// Compile-time check that LogHook implements TelemetryHook.
var _ TelemetryHook = (*LogHook)(nil)
