package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixTimeEpoch(t *testing.T) {
	assert.Equal(t, time.Unix(0, 0).UTC(), UnixTime(0).Time())
	assert.True(t, UnixTime(0).IsZero())
}

func TestUnixTimeMonotonic(t *testing.T) {
	prev := UnixTime(0).Time()
	for _, n := range []UnixTime{1, 60, 86400, 1700000000, 1700000001} {
		cur := n.Time()
		assert.True(t, cur.After(prev), "Time(%d) should be after Time of previous input", n)
		prev = cur
	}
}

func TestUnixTimeKnownInstant(t *testing.T) {
	// 2023-11-14T22:13:20Z
	got := UnixTime(1700000000).Time()

	assert.Equal(t, 2023, got.Year())
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, "2023-11-14T22:13:20Z", UnixTime(1700000000).String())
}

func TestUnixTimeWireFormat(t *testing.T) {
	type resource struct {
		CreatedAt UnixTime `json:"created_at"`
	}

	data, err := json.Marshal(resource{CreatedAt: 1700000000})
	require.NoError(t, err)
	assert.JSONEq(t, `{"created_at":1700000000}`, string(data))

	var decoded resource
	require.NoError(t, json.Unmarshal([]byte(`{"created_at":1700000000}`), &decoded))
	assert.Equal(t, UnixTime(1700000000), decoded.CreatedAt)
}
