package cmd

import (
	"github.com/spf13/cobra"
)

// runningCmd represents the running command.
var runningCmd = &cobra.Command{
	Use:   "running",
	Short: "Show time worked today including the open session",
	Long: `Show today's total as HH:MM:SS, counting the currently open session
up to now. Prints 00:00:00 when nothing was tracked today.`,
	Args: cobra.NoArgs,
	RunE: runRunning,
}

func init() {
	rootCmd.AddCommand(runningCmd)
}

func runRunning(cmd *cobra.Command, args []string) error {
	running, err := ctx.Clock.RunningTime()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintDuration("", running)
	}
	ctx.CLIFormatter().Duration(running)
	return nil
}
