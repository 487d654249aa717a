package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSONOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Config{Level: slog.LevelInfo, JSON: true, Output: buf})
	defer Init(DefaultConfig())

	Info("timesheet saved", "actions", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "timesheet saved", entry["msg"])
	assert.Equal(t, float64(2), entry["actions"])
}

func TestLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Config{Level: slog.LevelInfo, Output: buf})
	defer Init(DefaultConfig())

	Debug("hidden")
	Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestDebugConfig(t *testing.T) {
	cfg := DebugConfig()
	assert.Equal(t, slog.LevelDebug, cfg.Level)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.AddSource)
}

func TestWith(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Config{Level: slog.LevelInfo, Output: buf})
	defer Init(DefaultConfig())

	With("path", "/tmp/timesheet.json").Info("loaded")

	assert.True(t, strings.Contains(buf.String(), "path=/tmp/timesheet.json"))
}
