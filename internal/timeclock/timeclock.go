// Package timeclock orchestrates load, validate, mutate, save cycles around
// the timesheet and exposes the user-facing operations.
package timeclock

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/manav03panchal/timeclock/internal/timesheet"
)

// Common errors.
var (
	ErrAlreadyClockedIn  = errors.New("you are already clocked in")
	ErrAlreadyClockedOut = errors.New("you are already clocked out")
)

// Store abstracts timesheet persistence.
type Store interface {
	Load() (*timesheet.Timesheet, error)
	Save(*timesheet.Timesheet) error
	Path() string
}

// Clock supplies the current time. It is injected so tests can pin it.
type Clock func() time.Time

// Timeclock is the service over a persisted timesheet. Every operation is a
// single load, an optional mutation, and an optional save; the process holds
// no state between calls.
type Timeclock struct {
	store Store
	now   Clock
}

// New creates a Timeclock over the given store. A nil clock defaults to
// time.Now.
func New(store Store, now Clock) *Timeclock {
	if now == nil {
		now = time.Now
	}
	return &Timeclock{store: store, now: now}
}

// ClockIn records a clock-in at the given time, or at the current time when
// at is the zero value. It fails without writing when the last action is
// already a clock-in.
func (t *Timeclock) ClockIn(at time.Time) (time.Time, error) {
	ts, err := t.store.Load()
	if err != nil {
		return time.Time{}, err
	}

	if last, ok := ts.LastAction(); ok && last.Kind == timesheet.KindIn {
		return time.Time{}, ErrAlreadyClockedIn
	}

	if at.IsZero() {
		at = t.now()
	}
	ts.ClockIn(at)

	if err := t.store.Save(ts); err != nil {
		return time.Time{}, err
	}
	return at, nil
}

// ClockOut records a clock-out. An empty timesheet counts as clocked out, so
// clocking out with no prior clock-in is rejected. Rejections never write.
func (t *Timeclock) ClockOut(at time.Time) (time.Time, error) {
	ts, err := t.store.Load()
	if err != nil {
		return time.Time{}, err
	}

	last, ok := ts.LastAction()
	if !ok || last.Kind == timesheet.KindOut {
		return time.Time{}, ErrAlreadyClockedOut
	}

	if at.IsZero() {
		at = t.now()
	}
	ts.ClockOut(at)

	if err := t.store.Save(ts); err != nil {
		return time.Time{}, err
	}
	return at, nil
}

// TimeClocked returns the total paired time inside the given period. An open
// session contributes nothing; see RunningTime.
func (t *Timeclock) TimeClocked(p timesheet.Period) (time.Duration, error) {
	ts, err := t.store.Load()
	if err != nil {
		return 0, err
	}
	return ts.TotalTime(p, t.now()), nil
}

// RunningTime returns the time worked today including the open session, or
// zero when nothing was tracked today.
func (t *Timeclock) RunningTime() (time.Duration, error) {
	ts, err := t.store.Load()
	if err != nil {
		return 0, err
	}
	return ts.RunningTime(t.now()), nil
}

// WeeklyHours returns the Monday through Sunday totals for the week
// containing on, or the current week when on is the zero value.
func (t *Timeclock) WeeklyHours(on time.Time) ([7]time.Duration, error) {
	ts, err := t.store.Load()
	if err != nil {
		return [7]time.Duration{}, err
	}
	if on.IsZero() {
		on = t.now()
	}
	return ts.WeeklyHours(on), nil
}

// Status reports whether a session is open and since when.
func (t *Timeclock) Status() (clockedIn bool, since time.Time, err error) {
	ts, err := t.store.Load()
	if err != nil {
		return false, time.Time{}, err
	}
	last, ok := ts.LastAction()
	if !ok || last.Kind != timesheet.KindIn {
		return false, time.Time{}, nil
	}
	return true, last.Time, nil
}

// Raw returns the serialized timesheet for diagnostic inspection. The file is
// decoded and re-encoded, so an unreadable sheet fails here rather than being
// echoed through.
func (t *Timeclock) Raw() ([]byte, error) {
	ts, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(ts)
	if err != nil {
		return nil, fmt.Errorf("encode timesheet: %w", err)
	}
	return data, nil
}

// Wipe is reserved for clearing the timesheet. It currently performs no
// mutation and reports success.
// TODO: truncate the log once a confirmation flag is in place.
func (t *Timeclock) Wipe() error {
	return nil
}

// File returns the configured timesheet location without touching its
// contents.
func (t *Timeclock) File() string {
	return t.store.Path()
}
