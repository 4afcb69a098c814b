// Package core provides cross-cutting primitives shared by the vireo client:
// error classification, secret handling, retry policies, telemetry hooks,
// and wire-value conveniences.
//
// # Error Handling
//
// Transport failures are classified with sentinel errors wrapped inside
// [APIError]:
//   - [ErrUnauthorized]: invalid or missing API key
//   - [ErrRateLimited]: rate limit exceeded
//   - [ErrBadRequest]: invalid request parameters
//   - [ErrNotFound]: resource does not exist
//   - [ErrServer]: server error (5xx)
//   - [ErrNetwork]: connectivity failure
//   - [ErrDecode]: response parsing failed
//
// Codec failures are deterministic data errors with their own sentinels:
//   - [ErrMalformedContent]: known variant missing required fields
//   - [ErrUnknownContentType]: content discriminator outside the known table
//   - [ErrUnknownResponseFormat]: response_format value outside the table
//   - [ErrUnknownEnumValue]: wire string outside an enum's table
//   - [ErrToolNotFound]: tool-choice hint matched nothing
//
// Use errors.Is to classify:
//
//	if errors.Is(err, core.ErrRateLimited) {
//	    // back off and retry
//	}
//
// # Retry Policy
//
// [RetryPolicy] controls retry behavior for transient transport errors.
// Codec errors never retry: they fail the same way every time.
//
// # Telemetry
//
// Implement [TelemetryHook] to observe request lifecycle events, or use
// [NewLogHook] for a zerolog-backed implementation. Events never contain
// prompts, outputs, or credentials.
//
// # Timestamps
//
// The API transmits timestamps as integer Unix seconds. [UnixTime] keeps the
// wire form and derives time.Time values on demand.
package core
