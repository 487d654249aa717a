// Package runtime provides the application runtime context for timeclock.
package runtime

import (
	"os"
	"time"

	"github.com/manav03panchal/timeclock/internal/logging"
	"github.com/manav03panchal/timeclock/internal/output"
	"github.com/manav03panchal/timeclock/internal/storage"
	"github.com/manav03panchal/timeclock/internal/timeclock"
)

// EnvTimesheet overrides the timesheet location when set.
const EnvTimesheet = "TIMECLOCK_TIMESHEET"

// Context holds the application runtime context.
type Context struct {
	Clock     *timeclock.Timeclock
	Formatter *output.Formatter

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	TimesheetPath string
	Format        output.Format
	ColorMode     output.ColorMode
	Debug         bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		TimesheetPath: storage.DefaultPath(),
		Format:        output.FormatCLI,
		ColorMode:     output.ColorAuto,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv(EnvTimesheet); envPath != "" {
		opts.TimesheetPath = envPath
	}
	if opts.TimesheetPath == "" {
		opts.TimesheetPath = storage.DefaultPath()
	}
	if opts.TimesheetPath == "" {
		return nil, ErrStorageUnavailable
	}

	if opts.Debug {
		logging.Init(logging.DebugConfig())
	} else {
		logging.Init(logging.DefaultConfig())
	}

	store := storage.NewFileStore(opts.TimesheetPath)
	clock := timeclock.New(store, time.Now)

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Clock:     clock,
		Formatter: formatter,
		Debug:     opts.Debug,
	}, nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
