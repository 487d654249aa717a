package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/timeclock/internal/parser"
	"github.com/manav03panchal/timeclock/internal/timesheet"
)

var timesheetFlagOn string

// timesheetCmd represents the timesheet command.
var timesheetCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "Show the weekly hours table",
	Long: `Show hours worked per day, Monday through Sunday, for the current
week or the week containing --on.

Examples:
  timeclock timesheet
  timeclock timesheet --on 2026-08-10`,
	Args: cobra.NoArgs,
	RunE: runTimesheet,
}

func init() {
	timesheetCmd.Flags().StringVar(&timesheetFlagOn, "on", "", "Show the week containing this date")
	rootCmd.AddCommand(timesheetCmd)
}

func runTimesheet(cmd *cobra.Command, args []string) error {
	var on time.Time
	if timesheetFlagOn != "" {
		parsed, err := parser.ParseTimestamp(timesheetFlagOn, time.Now())
		if err != nil {
			return err
		}
		on = parsed
	}

	days, err := ctx.Clock.WeeklyHours(on)
	if err != nil {
		return err
	}

	if on.IsZero() {
		on = time.Now()
	}
	weekStart := timesheet.Week.Start(on)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintWeek(weekStart, days)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Week of " + weekStart.Format("2006-01-02"))
	cli.WeeklyTable(days)
	return nil
}
