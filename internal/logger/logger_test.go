package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"icon": "star", "component": "chip"})
	log.Info("icon resolved")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "icon resolved", entry["message"])
	require.Equal(t, "star", entry["icon"])
	require.Equal(t, "chip", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"path": "theme.yaml"})
	log.Error(errors.New("boom"), "failed to load theme")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed to load theme", entry["message"])
	require.Equal(t, "theme.yaml", entry["path"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "shouting"})
	require.Error(t, err)
}

func TestNopLoggerIsSafe(t *testing.T) {
	t.Parallel()

	log := Nop()
	log.Info("discarded")
	log.Warn("discarded")
	log.Error(errors.New("x"), "discarded")

	var nilLogger *Logger
	nilLogger.Info("no panic")
	require.Nil(t, nilLogger.WithFields(map[string]any{"k": "v"}))
}

func TestWithLevelLowersThreshold(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.WithLevel("debug").Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	// bad level leaves the logger unchanged
	buf.Reset()
	log.WithLevel("shouty").Debug("still hidden")
	assert.Empty(t, buf.String())
}
