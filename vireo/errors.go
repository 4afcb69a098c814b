package vireo

import (
	"encoding/json"
	"net/http"

	"github.com/vireo-ai/vireo-go/core"
)

// apiErrorEnvelope represents the API's error body shape:
// {"error":{"message":"...","type":"...","code":"..."}}
type apiErrorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// normalizeError converts an HTTP error response to an APIError wrapping the
// appropriate sentinel.
func normalizeError(status int, body []byte, requestID string) error {
	var envelope apiErrorEnvelope
	_ = json.Unmarshal(body, &envelope)

	message := envelope.Error.Message
	if message == "" {
		message = http.StatusText(status)
	}

	code := envelope.Error.Code
	if code == "" {
		code = envelope.Error.Type
	}

	return &core.APIError{
		Status:    status,
		RequestID: requestID,
		Code:      code,
		Message:   message,
		Err:       sentinelForStatus(status),
	}
}

// newNetworkError wraps transport failures.
func newNetworkError(err error) error {
	return &core.APIError{
		Code:    "network_error",
		Message: err.Error(),
		Err:     core.ErrNetwork,
	}
}

// newDecodeError wraps response parsing failures.
func newDecodeError(err error) error {
	return &core.APIError{
		Code:    "decode_error",
		Message: err.Error(),
		Err:     core.ErrDecode,
	}
}

// sentinelForStatus maps an HTTP status code to a core sentinel error.
func sentinelForStatus(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return core.ErrBadRequest
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return core.ErrUnauthorized
	case status == http.StatusNotFound:
		return core.ErrNotFound
	case status == http.StatusTooManyRequests:
		return core.ErrRateLimited
	case status >= 500:
		return core.ErrServer
	default:
		return core.ErrBadRequest
	}
}
