package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/timeclock/internal/timesheet"
)

// clockedCmd represents the clocked command.
var clockedCmd = &cobra.Command{
	Use:   "clocked {today|week|month|year}",
	Short: "Show total time clocked in a period",
	Long: `Show the total paired in/out time for the given period as HH:MM:SS.
An open session is not counted; use 'timeclock running' for that.

Examples:
  timeclock clocked today
  timeclock clocked week`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"today", "week", "month", "year"},
	RunE:      runClocked,
}

func init() {
	rootCmd.AddCommand(clockedCmd)
}

func runClocked(cmd *cobra.Command, args []string) error {
	period, err := timesheet.ParsePeriod(args[0])
	if err != nil {
		return err
	}

	total, err := ctx.Clock.TimeClocked(period)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintDuration(string(period), total)
	}
	ctx.CLIFormatter().Duration(total)
	return nil
}
