// Package parser turns the free-text values of the --at and --on flags into
// timestamps.
package parser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// ErrInvalidTimestamp is wrapped by all parse failures.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// ParseTimestamp parses a natural language timestamp expression relative to
// now. Empty input and "now" resolve to now itself.
func ParseTimestamp(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return now, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidTimestamp, input, err)
	}

	return result.Time, nil
}
