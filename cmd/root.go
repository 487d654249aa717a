// Package cmd provides the CLI commands for timeclock.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/timeclock/internal/output"
	"github.com/manav03panchal/timeclock/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "timeclock",
	Short: "A personal clock-in/clock-out time tracker",
	Long: `Timeclock tracks your working hours with simple clock-in and
clock-out events and answers queries about time worked.

Examples:
  timeclock in
  timeclock out --at '5 minutes ago'
  timeclock clocked week
  timeclock running
  timeclock timesheet`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		default:
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		// Create runtime context
		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show current clock status
		return runStatus(cmd, args)
	},
}

// runStatus shows whether a session is open and today's running time.
func runStatus(cmd *cobra.Command, args []string) error {
	clockedIn, since, err := ctx.Clock.Status()
	if err != nil {
		return err
	}
	running, err := ctx.Clock.RunningTime()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(clockedIn, since, running)
	}

	cli := ctx.CLIFormatter()
	if clockedIn {
		cli.Success("Clocked in since " + output.FormatTime(since))
	} else {
		cli.Muted("Clocked out")
	}
	cli.Printf("Today: %s\n", output.FormatHMS(running))
	return nil
}

// Execute runs the root command and prints any propagated error with its
// suggestion.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if ctx != nil && ctx.IsJSON() {
			ctx.JSONFormatter().PrintError("error", err.Error(), runtime.GetSuggestion(err))
		} else {
			os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
		}
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("timeclock %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}
