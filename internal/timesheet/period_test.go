package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		input string
		want  Period
	}{
		{"today", Day},
		{"day", Day},
		{"week", Week},
		{"month", Month},
		{"year", Year},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParsePeriod("fortnight")
		assert.ErrorIs(t, err, ErrUnknownPeriod)
	})
}

func TestPeriodStart(t *testing.T) {
	wednesday := time.Date(2026, 3, 11, 15, 30, 0, 0, time.Local)

	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local), Day.Start(wednesday))
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), Week.Start(wednesday))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), Month.Start(wednesday))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), Year.Start(wednesday))
}

func TestPeriodStartWeekOnSunday(t *testing.T) {
	// Sunday belongs to the week of the preceding Monday.
	sunday := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), Week.Start(sunday))
}

func TestPeriodStartWeekOnMonday(t *testing.T) {
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	assert.Equal(t, monday, Week.Start(monday))
}

func TestPeriodContains(t *testing.T) {
	wednesday := time.Date(2026, 3, 11, 15, 0, 0, 0, time.Local)

	t.Run("day_matches_date_only", func(t *testing.T) {
		assert.True(t, Day.Contains(time.Date(2026, 3, 11, 0, 0, 1, 0, time.Local), wednesday))
		assert.False(t, Day.Contains(time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local), wednesday))
	})

	t.Run("week_boundary", func(t *testing.T) {
		assert.True(t, Week.Contains(time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), wednesday))
		assert.False(t, Week.Contains(time.Date(2026, 3, 8, 23, 0, 0, 0, time.Local), wednesday))
	})

	t.Run("month_boundary", func(t *testing.T) {
		assert.True(t, Month.Contains(time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local), wednesday))
		assert.False(t, Month.Contains(time.Date(2026, 2, 28, 8, 0, 0, 0, time.Local), wednesday))
	})

	t.Run("year_boundary", func(t *testing.T) {
		assert.True(t, Year.Contains(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), wednesday))
		assert.False(t, Year.Contains(time.Date(2025, 12, 31, 23, 0, 0, 0, time.Local), wednesday))
	})
}
