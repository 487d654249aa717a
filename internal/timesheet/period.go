package timesheet

import (
	"fmt"
	"time"
)

// Period is an aggregation window evaluated against the local calendar at
// query time. It is supplied per query and never persisted.
type Period string

const (
	Day   Period = "day"
	Week  Period = "week"
	Month Period = "month"
	Year  Period = "year"
)

// ErrUnknownPeriod is returned by ParsePeriod for unrecognized spellings.
var ErrUnknownPeriod = fmt.Errorf("unknown period")

// ParsePeriod maps a CLI spelling to a Period. "today" is an alias for day.
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "today", "day":
		return Day, nil
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	case "year":
		return Year, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownPeriod, s)
}

// Contains reports whether ts falls inside the period window ending at now.
// Day matches the calendar date of now exactly; the other periods match any
// date on or after the window start.
func (p Period) Contains(ts, now time.Time) bool {
	if p == Day {
		return sameDate(ts, now)
	}
	return !dateOf(ts).Before(p.Start(now))
}

// Start returns the first day of the window: today for Day, the most recent
// Monday on or before now for Week, the first of the month for Month, and
// January 1 for Year.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case Week:
		return startOfWeek(now)
	case Month:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case Year:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return dateOf(now)
	}
}

// startOfWeek returns midnight of the Monday on or before t.
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return dateOf(t).AddDate(0, 0, -(weekday - 1))
}

// dateOf truncates t to midnight in its own location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// sameDate reports whether a and b fall on the same calendar date.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
