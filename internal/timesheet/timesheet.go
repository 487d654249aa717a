// Package timesheet defines the core tracking model: an ordered log of clock
// actions plus the pure aggregation logic that reduces it to durations.
package timesheet

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind discriminates the two clock actions.
type Kind string

const (
	KindIn  Kind = "in"
	KindOut Kind = "out"
)

// Valid reports whether k is a known action kind.
func (k Kind) Valid() bool {
	return k == KindIn || k == KindOut
}

// Action is a single clock-in or clock-out event. Immutable once recorded.
type Action struct {
	Kind Kind      `json:"action"`
	Time time.Time `json:"time"`
}

// UnmarshalJSON decodes an action and rejects unknown discriminators, so a
// corrupted file fails loudly instead of producing silent zero-value actions.
func (a *Action) UnmarshalJSON(data []byte) error {
	type alias Action
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if !aux.Kind.Valid() {
		return fmt.Errorf("unknown action kind %q", aux.Kind)
	}
	*a = Action(aux)
	return nil
}

// Timesheet is the full ordered log of actions. Insertion order represents
// chronological order by convention; timestamps are not forced to be
// monotonic.
type Timesheet struct {
	Clocks []Action `json:"clocks"`
}

// ClockIn appends an in action. No validation happens at this layer; the
// service is responsible for rejecting a double clock-in.
func (t *Timesheet) ClockIn(when time.Time) {
	t.Clocks = append(t.Clocks, Action{Kind: KindIn, Time: when})
}

// ClockOut appends an out action.
func (t *Timesheet) ClockOut(when time.Time) {
	t.Clocks = append(t.Clocks, Action{Kind: KindOut, Time: when})
}

// LastAction returns the most recently appended action. The second return
// value is false when the log is empty.
func (t *Timesheet) LastAction() (Action, bool) {
	if len(t.Clocks) == 0 {
		return Action{}, false
	}
	return t.Clocks[len(t.Clocks)-1], true
}

// TotalTime sums the paired in/out durations for actions whose date falls
// inside the period window ending at now.
//
// Pairing walks the filtered log in order keeping the last unmatched in as
// pending: each out closes the pending in and adds the delta, an out with no
// pending in contributes nothing, and a later in overwrites an unmatched
// earlier one. A trailing unmatched in is an open session and is excluded
// here; RunningTime counts it.
func (t *Timesheet) TotalTime(p Period, now time.Time) time.Duration {
	var total time.Duration
	var pending time.Time
	var open bool

	for _, a := range t.Clocks {
		if !p.Contains(a.Time, now) {
			continue
		}
		switch a.Kind {
		case KindIn:
			pending, open = a.Time, true
		case KindOut:
			if open {
				total += a.Time.Sub(pending)
				open = false
			}
		}
	}

	return total
}

// RunningTime returns the time worked today, including the currently open
// session up to now. With no actions today it returns zero.
func (t *Timesheet) RunningTime(now time.Time) time.Duration {
	total, pending, open := t.dayTotal(now)
	if open {
		total += now.Sub(pending)
	}
	return total
}

// WeeklyHours returns the paired totals for each day, Monday through Sunday,
// of the week containing on. Open sessions are excluded, matching TotalTime.
func (t *Timesheet) WeeklyHours(on time.Time) [7]time.Duration {
	var days [7]time.Duration
	monday := startOfWeek(on)
	for i := range days {
		days[i], _, _ = t.dayTotal(monday.AddDate(0, 0, i))
	}
	return days
}

// dayTotal runs the pairing algorithm over the actions of day's calendar
// date, returning the paired total and any trailing unmatched in.
func (t *Timesheet) dayTotal(day time.Time) (total time.Duration, pending time.Time, open bool) {
	for _, a := range t.Clocks {
		if !sameDate(a.Time, day) {
			continue
		}
		switch a.Kind {
		case KindIn:
			pending, open = a.Time, true
		case KindOut:
			if open {
				total += a.Time.Sub(pending)
				open = false
			}
		}
	}
	return total, pending, open
}

// Validate checks the alternation invariant: actions alternate strictly
// between in and out, starting with in. The aggregation methods tolerate
// violations (see TotalTime), so callers decide how hard to fail.
func (t *Timesheet) Validate() error {
	want := KindIn
	for i, a := range t.Clocks {
		if a.Kind != want {
			return fmt.Errorf("action %d: got %q, want %q", i, a.Kind, want)
		}
		if want == KindIn {
			want = KindOut
		} else {
			want = KindIn
		}
	}
	return nil
}
