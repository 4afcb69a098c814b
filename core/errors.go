package core

import (
	"errors"
	"fmt"
)

// APIError represents an error returned by the platform API with full context.
type APIError struct {
	Status    int
	RequestID string
	Code      string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("vireo: %s (status=%d, code=%s, request_id=%s)",
			e.Message, e.Status, e.Code, e.RequestID)
	}
	return fmt.Sprintf("vireo: %s (status=%d, code=%s)",
		e.Message, e.Status, e.Code)
}

// Unwrap returns the underlying error for error chaining.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Sentinel errors for transport-level classification.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
	ErrDecode       = errors.New("decode error")
	ErrNotSupported = errors.New("operation not supported")
)

// Sentinel errors for codec-level failures. These are deterministic data
// errors: they are never retried internally and always surface to the caller
// with the offending raw value attached via %w wrapping.
var (
	// ErrMalformedContent indicates a content block matched a known
	// discriminator but is missing required sub-fields.
	ErrMalformedContent = errors.New("malformed content")

	// ErrUnknownContentType indicates a content block carried a
	// discriminator outside the known table. Unknown discriminators fail
	// loudly rather than being dropped.
	ErrUnknownContentType = errors.New("unknown content type")

	// ErrUnknownResponseFormat indicates a response_format wire value
	// outside the known table.
	ErrUnknownResponseFormat = errors.New("unknown response format")

	// ErrUnknownEnumValue indicates a wire string outside an enum's
	// documented table. Decoding never defaults silently; defaulting would
	// mask API evolution.
	ErrUnknownEnumValue = errors.New("unknown enum value")

	// ErrToolNotFound indicates a tool-choice hint matched neither a mode
	// keyword nor any declared function name.
	ErrToolNotFound = errors.New("tool not found")
)
