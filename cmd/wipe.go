package cmd

import (
	"github.com/spf13/cobra"
)

// wipeCmd represents the wipe command.
var wipeCmd = &cobra.Command{
	Use:    "wipe",
	Short:  "Wipe the timesheet",
	Long:   `Wipe the timesheet. Currently a placeholder: the file is left untouched.`,
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runWipe,
}

func init() {
	rootCmd.AddCommand(wipeCmd)
}

func runWipe(cmd *cobra.Command, args []string) error {
	if err := ctx.Clock.Wipe(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "ok"})
	}
	ctx.CLIFormatter().Muted("Nothing wiped; the timesheet is left as is.")
	return nil
}
