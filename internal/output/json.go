package output

import (
	"time"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ClockedResponse reports a successful clock-in or clock-out.
type ClockedResponse struct {
	Action string `json:"action"`
	Time   string `json:"time"`
}

// DurationResponse reports an aggregated duration.
type DurationResponse struct {
	Period          string `json:"period,omitempty"`
	DurationSeconds int64  `json:"duration_seconds"`
	Display         string `json:"display"`
}

// StatusResponse reports the current clock state.
type StatusResponse struct {
	ClockedIn      bool   `json:"clocked_in"`
	Since          string `json:"since,omitempty"`
	RunningSeconds int64  `json:"running_seconds"`
	RunningDisplay string `json:"running_display"`
}

// WeekResponse reports the Monday through Sunday breakdown.
type WeekResponse struct {
	WeekStart string           `json:"week_start"`
	Days      map[string]int64 `json:"day_seconds"`
}

// FileResponse reports the timesheet location.
type FileResponse struct {
	Path string `json:"path"`
}

// ErrorResponse is the JSON shape for failures.
type ErrorResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintClocked emits a clock-in/out confirmation.
func (j *JSONFormatter) PrintClocked(action string, when time.Time) error {
	return j.JSON(ClockedResponse{Action: action, Time: when.Format(time.RFC3339)})
}

// PrintDuration emits an aggregated duration.
func (j *JSONFormatter) PrintDuration(period string, d time.Duration) error {
	return j.JSON(DurationResponse{
		Period:          period,
		DurationSeconds: int64(d.Seconds()),
		Display:         FormatHMS(d),
	})
}

// PrintStatus emits the current clock state.
func (j *JSONFormatter) PrintStatus(clockedIn bool, since time.Time, running time.Duration) error {
	resp := StatusResponse{
		ClockedIn:      clockedIn,
		RunningSeconds: int64(running.Seconds()),
		RunningDisplay: FormatHMS(running),
	}
	if clockedIn {
		resp.Since = since.Format(time.RFC3339)
	}
	return j.JSON(resp)
}

// PrintWeek emits the weekly breakdown.
func (j *JSONFormatter) PrintWeek(weekStart time.Time, days [7]time.Duration) error {
	resp := WeekResponse{
		WeekStart: weekStart.Format("2006-01-02"),
		Days:      make(map[string]int64, len(days)),
	}
	for i, d := range days {
		resp.Days[weekdayNames[i]] = int64(d.Seconds())
	}
	return j.JSON(resp)
}

// PrintFile emits the timesheet location.
func (j *JSONFormatter) PrintFile(path string) error {
	return j.JSON(FileResponse{Path: path})
}

// PrintError emits a failure.
func (j *JSONFormatter) PrintError(status, message, suggestion string) error {
	return j.JSON(ErrorResponse{Status: status, Message: message, Suggestion: suggestion})
}
