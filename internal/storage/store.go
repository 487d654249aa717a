// Package storage persists the timesheet as a single JSON file in the
// platform data directory.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/manav03panchal/timeclock/internal/logging"
	"github.com/manav03panchal/timeclock/internal/timesheet"
)

const (
	// AppName is the application name used for data directories.
	AppName = "timeclock"
	// FileName is the timesheet file name inside the data directory.
	FileName = "timesheet.json"
)

// DefaultPath returns the default timesheet path following the XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, FileName)
}

// FileStore reads and writes the timesheet at a fixed path. The whole log is
// rewritten on every save; there is no incremental on-disk format.
type FileStore struct {
	path string
}

// NewFileStore creates a store for the given path. An empty path falls back
// to DefaultPath.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{path: path}
}

// Path returns the timesheet location without touching its contents.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the timesheet. A missing file yields an empty
// timesheet, never an error; a file that exists but does not decode fails the
// whole operation with no partial recovery.
func (s *FileStore) Load() (*timesheet.Timesheet, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Info("no timesheet found, starting a new one", "path", s.path)
		return &timesheet.Timesheet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read timesheet: %w", err)
	}

	var ts timesheet.Timesheet
	if err := json.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("parse timesheet %s: %w", s.path, err)
	}

	// The aggregation logic tolerates alternation violations, so a sheet
	// written by an older build or edited by hand still loads; it is only
	// worth a warning.
	if err := ts.Validate(); err != nil {
		logging.Warn("timesheet violates in/out alternation", "path", s.path, "reason", err)
	}

	return &ts, nil
}

// Save rewrites the whole log. The write goes to a temp file in the same
// directory and is renamed into place, so a crash mid-write never leaves a
// torn timesheet behind.
func (s *FileStore) Save(ts *timesheet.Timesheet) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.MarshalIndent(ts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode timesheet: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("write timesheet: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write timesheet: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write timesheet: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write timesheet: %w", err)
	}

	logging.Debug("timesheet saved", "path", s.path, "actions", len(ts.Clocks))
	return nil
}
