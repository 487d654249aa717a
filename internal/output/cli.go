package output

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWeekday = lipgloss.Color("#10B981") // Green
	colorWeekend = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleWeekday = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWeekday)

	styleWeekend = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWeekend)

	styleDuration = lipgloss.NewStyle().
			Bold(true)
)

// weekdayNames are the table headers, Monday first.
var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// Duration prints a duration in HH:MM:SS.
func (c *CLIFormatter) Duration(d time.Duration) {
	if c.IsColorEnabled() {
		c.Println(styleDuration.Render(FormatHMS(d)))
	} else {
		c.Println(FormatHMS(d))
	}
}

// WeeklyTable renders the Monday through Sunday hours as a single-row table.
// Weekend headers are styled apart from weekdays.
func (c *CLIFormatter) WeeklyTable(days [7]time.Duration) {
	color := c.IsColorEnabled()

	widths := [7]int{}
	cells := [7]string{}
	for i, d := range days {
		cells[i] = FormatHMS(d)
		widths[i] = len(weekdayNames[i])
		if len(cells[i]) > widths[i] {
			widths[i] = len(cells[i])
		}
	}

	var sep, head, row strings.Builder
	sep.WriteString("+")
	head.WriteString("|")
	row.WriteString("|")
	for i := range days {
		sep.WriteString(strings.Repeat("-", widths[i]+2))
		sep.WriteString("+")

		name := pad(weekdayNames[i], widths[i])
		if color {
			if i >= 5 {
				name = styleWeekend.Render(name)
			} else {
				name = styleWeekday.Render(name)
			}
		}
		head.WriteString(" " + name + " |")
		row.WriteString(" " + pad(cells[i], widths[i]) + " |")
	}

	c.Println(sep.String())
	c.Println(head.String())
	c.Println(sep.String())
	c.Println(row.String())
	c.Println(sep.String())
}

// pad right-pads s with spaces to the given width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
