package runtime

import (
	"errors"

	"github.com/manav03panchal/timeclock/internal/parser"
	"github.com/manav03panchal/timeclock/internal/timeclock"
	"github.com/manav03panchal/timeclock/internal/timesheet"
)

// ErrStorageUnavailable means the per-user data directory could not be
// resolved. It aborts before any operation runs.
var ErrStorageUnavailable = errors.New("unable to locate the timesheet")

// Suggestions provides helpful suggestions for common errors.
var Suggestions = map[error]string{
	timeclock.ErrAlreadyClockedIn:  "Use 'timeclock out' to close the open session first.",
	timeclock.ErrAlreadyClockedOut: "Use 'timeclock in' to start a session first.",
	timesheet.ErrUnknownPeriod:     "Valid periods are: today, week, month, year.",
	parser.ErrInvalidTimestamp:     "Try formats like '9am', '2 hours ago', or '2026-08-30 17:00'.",
	ErrStorageUnavailable:          "Set " + EnvTimesheet + " to a writable file path.",
}

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}
	return ""
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
