package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/timeclock/internal/output"
	"github.com/manav03panchal/timeclock/internal/parser"
)

var inFlagAt string

// inCmd represents the in command.
var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Clock in",
	Long: `Start a work session. Fails when a session is already open.

Examples:
  timeclock in
  timeclock in --at 9am
  timeclock in --at '10 minutes ago'`,
	Args: cobra.NoArgs,
	RunE: runIn,
}

func init() {
	inCmd.Flags().StringVar(&inFlagAt, "at", "", "Clock in at the given time instead of now")
	rootCmd.AddCommand(inCmd)
}

func runIn(cmd *cobra.Command, args []string) error {
	var at time.Time
	if inFlagAt != "" {
		parsed, err := parser.ParseTimestamp(inFlagAt, time.Now())
		if err != nil {
			return err
		}
		at = parsed
	}

	when, err := ctx.Clock.ClockIn(at)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintClocked("in", when)
	}
	ctx.CLIFormatter().Success("Clocked in at " + output.FormatTimeOnly(when))
	return nil
}
