package cmd

import (
	"github.com/spf13/cobra"
)

// fileCmd represents the file command.
var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Print the timesheet file location",
	Args:  cobra.NoArgs,
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(fileCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	path := ctx.Clock.File()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintFile(path)
	}
	ctx.Formatter.Println(path)
	return nil
}
