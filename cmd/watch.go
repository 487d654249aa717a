package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/timeclock/internal/tui"
)

var watchFlagHours int

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the running time live",
	Long: `Open a live view showing the open session, today's total, and
progress toward a weekly hours target. Updates every second.

Examples:
  timeclock watch
  timeclock watch --hours 35`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchFlagHours, "hours", 40, "Weekly hours target")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("watch needs an interactive terminal")
	}

	return tui.Run(tui.WatchConfig{
		Clock:  ctx.Clock,
		Target: time.Duration(watchFlagHours) * time.Hour,
	})
}
