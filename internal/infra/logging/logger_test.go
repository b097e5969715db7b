package logging

import (
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/locrec/internal/domain"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel}, // default
		{"", zerolog.InfoLevel},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLogger_ListEntry(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, zerolog.InfoLevel)
	defer func() { _ = logger.Close() }()

	logger.Warn(domain.TodoListKey, "load", "discarding malformed value")

	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	line := string(content)
	assert.Contains(t, line, "WRN")
	assert.Contains(t, line, domain.TodoListKey)
	assert.Contains(t, line, "load")
	assert.Contains(t, line, "discarding malformed value")

	listContent, err := os.ReadFile(domain.ListLogPath(dataDir, domain.TodoListKey))
	require.NoError(t, err)
	assert.Contains(t, string(listContent), "discarding malformed value")
}

func TestLogger_GlobalOnly(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, zerolog.InfoLevel)
	defer func() { _ = logger.Close() }()

	logger.Info("", "startup", "opened store")

	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "global")
	assert.Contains(t, string(content), "opened store")

	entries, err := os.ReadDir(dataDir + "/logs")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no list log is created")
}

func TestLogger_LevelFiltering(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, zerolog.WarnLevel)
	defer func() { _ = logger.Close() }()

	logger.Debug(domain.OrderListKey, "save", "debug entry")
	logger.Info(domain.OrderListKey, "save", "info entry")
	logger.Error(domain.OrderListKey, "save", "error entry")

	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug entry")
	assert.NotContains(t, string(content), "info entry")
	assert.Contains(t, string(content), "error entry")
	assert.Equal(t, 1, strings.Count(string(content), "\n"))
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", zerolog.DebugLevel)

	logger.Error(domain.TodoListKey, "save", "ignored")

	require.NoError(t, logger.Close())
}

func TestLogger_Close_Reopens(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, zerolog.InfoLevel)

	logger.Info(domain.TodoListKey, "save", "first")
	require.NoError(t, logger.Close())
	logger.Info(domain.TodoListKey, "save", "second")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(domain.ListLogPath(dataDir, domain.TodoListKey))
	require.NoError(t, err)
	assert.Contains(t, string(content), "first")
	assert.Contains(t, string(content), "second")
}
