package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufFormatter() (*Formatter, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	f := NewFormatter()
	f.Writer = buf
	return f, buf
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{59 * time.Second, "00:00:59"},
		{time.Hour + 2*time.Minute + 3*time.Second, "01:02:03"},
		{8 * time.Hour, "08:00:00"},
		// Hours are not wrapped at 24.
		{30 * time.Hour, "30:00:00"},
		{152*time.Hour + 30*time.Minute, "152:30:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHMS(tt.d))
	}
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", ProgressBar(50, 10))
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(0, 10))
	assert.Equal(t, "██████████", ProgressBar(150, 10))
	assert.Equal(t, "", ProgressBar(50, 0))
}

func TestFormatterJSON(t *testing.T) {
	f, buf := bufFormatter()

	require.NoError(t, f.JSON(map[string]int{"n": 1}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1, got["n"])
}

func TestIsColorEnabled(t *testing.T) {
	f, _ := bufFormatter()

	// A buffer is not a terminal.
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())

	f.ColorMode = ColorAlways
	assert.True(t, f.IsColorEnabled())

	f.ColorMode = ColorNever
	assert.False(t, f.IsColorEnabled())
}

func TestCLIFormatterPlainWhenNoColor(t *testing.T) {
	f, buf := bufFormatter()
	cli := NewCLIFormatter(f)

	cli.Success("Clocked in at 09:00")
	assert.Equal(t, "✓ Clocked in at 09:00\n", buf.String())
}

func TestWeeklyTable(t *testing.T) {
	f, buf := bufFormatter()
	cli := NewCLIFormatter(f)

	var days [7]time.Duration
	days[0] = 8 * time.Hour
	days[6] = 90 * time.Minute
	cli.WeeklyTable(days)

	out := buf.String()
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Sunday")
	assert.Contains(t, out, "08:00:00")
	assert.Contains(t, out, "01:30:00")
	assert.Contains(t, out, "00:00:00")
}

func TestJSONFormatterPrintDuration(t *testing.T) {
	f, buf := bufFormatter()
	j := NewJSONFormatter(f)

	require.NoError(t, j.PrintDuration("week", 8*time.Hour))

	var got DurationResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "week", got.Period)
	assert.Equal(t, int64(28800), got.DurationSeconds)
	assert.Equal(t, "08:00:00", got.Display)
}

func TestJSONFormatterPrintStatus(t *testing.T) {
	f, buf := bufFormatter()
	j := NewJSONFormatter(f)

	since := time.Date(2026, 3, 11, 9, 0, 0, 0, time.Local)
	require.NoError(t, j.PrintStatus(true, since, 2*time.Hour))

	var got StatusResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.True(t, got.ClockedIn)
	assert.Equal(t, since.Format(time.RFC3339), got.Since)
	assert.Equal(t, "02:00:00", got.RunningDisplay)
}

func TestJSONFormatterPrintWeek(t *testing.T) {
	f, buf := bufFormatter()
	j := NewJSONFormatter(f)

	var days [7]time.Duration
	days[0] = time.Hour
	weekStart := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	require.NoError(t, j.PrintWeek(weekStart, days))

	var got WeekResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2026-03-09", got.WeekStart)
	assert.Equal(t, int64(3600), got.Days["Monday"])
	assert.Equal(t, int64(0), got.Days["Sunday"])
}
