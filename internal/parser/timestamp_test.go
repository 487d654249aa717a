package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parseNow = time.Date(2026, 3, 11, 15, 0, 0, 0, time.Local)

func TestParseTimestampNow(t *testing.T) {
	for _, input := range []string{"", "now", "NOW", "  now  "} {
		got, err := ParseTimestamp(input, parseNow)
		require.NoError(t, err, "input %q", input)
		assert.True(t, got.Equal(parseNow), "input %q", input)
	}
}

func TestParseTimestampAbsolute(t *testing.T) {
	got, err := ParseTimestamp("2026-08-30 17:00", parseNow)
	require.NoError(t, err)

	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.August, got.Month())
	assert.Equal(t, 30, got.Day())
	assert.Equal(t, 17, got.Hour())
	assert.Equal(t, 0, got.Minute())
}

func TestParseTimestampRelative(t *testing.T) {
	got, err := ParseTimestamp("2 hours ago", parseNow)
	require.NoError(t, err)
	assert.Equal(t, 13, got.Hour())
}

func TestParseTimestampInvalid(t *testing.T) {
	_, err := ParseTimestamp("@@not-a-time@@", parseNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}
