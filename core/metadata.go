package core

import "fmt"

// Metadata limits enforced by the platform. The server is authoritative;
// these constants exist so callers can validate before spending a request.
const (
	MetadataMaxEntries     = 16
	MetadataMaxKeyLength   = 64
	MetadataMaxValueLength = 512
)

// ValidateMetadata checks a metadata map against the platform's documented
// limits: at most 16 entries, keys up to 64 characters, values up to 512
// characters.
//
// This is a defensive convenience only. Encoders do NOT call it: an
// over-limit map still serializes, and the server rejects it with its own
// error. Callers who want to fail fast can call this themselves.
func ValidateMetadata(md map[string]string) error {
	if len(md) > MetadataMaxEntries {
		return fmt.Errorf("metadata has %d entries, server limit is %d: %w",
			len(md), MetadataMaxEntries, ErrBadRequest)
	}
	for k, v := range md {
		if len(k) > MetadataMaxKeyLength {
			return fmt.Errorf("metadata key %q is %d chars, server limit is %d: %w",
				k, len(k), MetadataMaxKeyLength, ErrBadRequest)
		}
		if len(v) > MetadataMaxValueLength {
			return fmt.Errorf("metadata value for key %q is %d chars, server limit is %d: %w",
				k, len(v), MetadataMaxValueLength, ErrBadRequest)
		}
	}
	return nil
}
