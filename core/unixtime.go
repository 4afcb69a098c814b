package core

import "time"

// UnixTime is a timestamp transmitted on the wire as integer seconds since
// the Unix epoch. The API reports creation and expiry times in this form;
// UnixTime keeps the wire representation intact while offering a typed
// conversion to time.Time.
//
// The zero value corresponds to the epoch itself, which the API never emits
// for real resources, so IsZero doubles as an absent check on optional
// pointer fields that were present-but-zero.
type UnixTime int64

// Time interprets the value as seconds since the Unix epoch, UTC.
// It is pure and total: every input maps to a valid instant.
func (u UnixTime) Time() time.Time {
	return time.Unix(int64(u), 0).UTC()
}

// IsZero reports whether the timestamp is the zero value.
func (u UnixTime) IsZero() bool {
	return u == 0
}

// String returns the RFC 3339 rendering of the instant.
func (u UnixTime) String() string {
	return u.Time().Format(time.RFC3339)
}
