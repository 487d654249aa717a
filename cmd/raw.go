package cmd

import (
	"github.com/spf13/cobra"
)

// rawCmd represents the raw command.
var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Print the serialized timesheet",
	Long:  `Print the full timesheet as JSON for diagnostic inspection.`,
	Args:  cobra.NoArgs,
	RunE:  runRaw,
}

func init() {
	rootCmd.AddCommand(rawCmd)
}

func runRaw(cmd *cobra.Command, args []string) error {
	data, err := ctx.Clock.Raw()
	if err != nil {
		return err
	}
	ctx.Formatter.Println(string(data))
	return nil
}
