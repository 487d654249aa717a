// Package tui implements the live watch view for the timeclock CLI.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/timeclock/internal/output"
	"github.com/manav03panchal/timeclock/internal/timeclock"
	"github.com/manav03panchal/timeclock/internal/timesheet"
)

// Styles for the watch view.
var (
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED")).
			Padding(1, 2)

	styleActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	styleInactive = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6B7280"))

	styleDuration = lipgloss.NewStyle().
			Bold(true)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// WatchConfig holds configuration for the watch view.
type WatchConfig struct {
	Clock           *timeclock.Timeclock
	Target          time.Duration
	RefreshInterval time.Duration
}

// WatchModel is the bubbletea model for the watch view. Every tick reloads
// the timesheet, so clock-ins from another terminal show up live.
type WatchModel struct {
	clock  *timeclock.Timeclock
	target time.Duration

	clockedIn bool
	since     time.Time
	running   time.Duration
	week      time.Duration

	width int
	err   error

	refreshInterval time.Duration
}

// NewWatchModel creates a new watch model.
func NewWatchModel(config WatchConfig) *WatchModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	return &WatchModel{
		clock:           config.Clock,
		target:          config.Target,
		refreshInterval: config.RefreshInterval,
	}
}

// Init initializes the model.
func (m *WatchModel) Init() tea.Cmd {
	m.refresh()
	return m.tickCmd()
}

// Update handles messages and updates the model.
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		m.refresh()
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the watch view.
func (m *WatchModel) View() string {
	if m.err != nil {
		return styleBox.Render("Error: " + m.err.Error())
	}

	var content strings.Builder

	if m.clockedIn {
		content.WriteString(styleActive.Render("● CLOCKED IN"))
		content.WriteString("\n")
		content.WriteString(styleSubtitle.Render("since " + output.FormatTime(m.since)))
	} else {
		content.WriteString(styleInactive.Render("Clocked out"))
	}
	content.WriteString("\n\n")

	content.WriteString("Today  ")
	content.WriteString(styleDuration.Render(output.FormatHMS(m.running)))
	content.WriteString("\n")
	content.WriteString("Week   ")
	content.WriteString(styleDuration.Render(output.FormatHMS(m.week)))
	content.WriteString("\n\n")

	percentage := 0.0
	if m.target > 0 {
		percentage = float64(m.week) / float64(m.target) * 100
	}
	content.WriteString(output.ProgressBar(percentage, 30))
	content.WriteString(fmt.Sprintf(" %3.0f%% of %s", percentage, output.FormatHMS(m.target)))
	content.WriteString("\n\n")
	content.WriteString(styleSubtitle.Render("q to quit"))

	return styleBox.Render(content.String())
}

// refresh reloads the timesheet and recomputes the displayed figures.
func (m *WatchModel) refresh() {
	clockedIn, since, err := m.clock.Status()
	if err != nil {
		m.err = err
		return
	}
	running, err := m.clock.RunningTime()
	if err != nil {
		m.err = err
		return
	}
	week, err := m.clock.TimeClocked(timesheet.Week)
	if err != nil {
		m.err = err
		return
	}
	if clockedIn {
		// TimeClocked excludes the open session; the weekly figure should
		// move while watching, so fold the running delta in.
		week += time.Since(since)
	}

	m.clockedIn = clockedIn
	m.since = since
	m.running = running
	m.week = week
	m.err = nil
}

// tickCmd schedules the next tick.
func (m *WatchModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the watch view and blocks until the user quits.
func Run(config WatchConfig) error {
	p := tea.NewProgram(NewWatchModel(config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
