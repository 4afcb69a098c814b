package core

import "time"

// TelemetryHook receives notifications about request lifecycle events.
// Implementations can use this for logging, metrics, or tracing.
//
// Event types never include sensitive data: API keys are stored separately
// as Secret, and neither prompt content nor model output appears in any
// event. Only operational metadata is exposed (operation, timing, status,
// request IDs), so telemetry can be logged or shipped to monitoring systems
// without credential or privacy exposure. Keep that property when extending
// the interface.
type TelemetryHook interface {
	// OnRequestStart is called when a request to the API begins.
	OnRequestStart(e RequestStartEvent)

	// OnRequestEnd is called when a request to the API completes.
	OnRequestEnd(e RequestEndEvent)
}

// RequestStartEvent contains metadata about a starting request.
type RequestStartEvent struct {
	Operation string    // Operation identifier (e.g., "chat.create", "files.upload")
	Method    string    // HTTP method
	Path      string    // Request path, without the base URL
	ClientID  string    // Client-generated request correlation ID
	Attempt   int       // 0 for the initial attempt, then 1, 2, ... for retries
	Start     time.Time // When the request started
}

// RequestEndEvent contains metadata about a completed request.
//
// Err carries the classified error (sentinel-wrapped APIError), never raw
// response bodies, which might include prompt or output fragments.
type RequestEndEvent struct {
	Operation string
	Method    string
	Path      string
	ClientID  string        // Client-generated request correlation ID
	RequestID string        // Server-reported request ID, if any
	Attempt   int
	Status    int           // HTTP status, 0 if the request never completed
	Duration  time.Duration
	Err       error
}

// NoopTelemetryHook is a TelemetryHook that does nothing.
type NoopTelemetryHook struct{}

// OnRequestStart implements TelemetryHook.
func (NoopTelemetryHook) OnRequestStart(RequestStartEvent) {}

// OnRequestEnd implements TelemetryHook.
func (NoopTelemetryHook) OnRequestEnd(RequestEndEvent) {}
