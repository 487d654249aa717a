package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/timeclock/internal/output"
	"github.com/manav03panchal/timeclock/internal/parser"
)

var outFlagAt string

// outCmd represents the out command.
var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Clock out",
	Long: `End the open work session. Fails when no session is open.

Examples:
  timeclock out
  timeclock out --at 17:30`,
	Args: cobra.NoArgs,
	RunE: runOut,
}

func init() {
	outCmd.Flags().StringVar(&outFlagAt, "at", "", "Clock out at the given time instead of now")
	rootCmd.AddCommand(outCmd)
}

func runOut(cmd *cobra.Command, args []string) error {
	var at time.Time
	if outFlagAt != "" {
		parsed, err := parser.ParseTimestamp(outFlagAt, time.Now())
		if err != nil {
			return err
		}
		at = parsed
	}

	when, err := ctx.Clock.ClockOut(at)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintClocked("out", when)
	}
	ctx.CLIFormatter().Success("Clocked out at " + output.FormatTimeOnly(when))
	return nil
}
