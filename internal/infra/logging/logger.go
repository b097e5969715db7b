// Package logging provides file-based logging for locrec.
// It outputs logs to both a global log file (<data-dir>/logs/locrec.log)
// and per-list log files (<data-dir>/logs/<key>.log).
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/runoshun/locrec/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

const timeFormat = "2006-01-02 15:04:05"

// Logger writes zerolog entries to the data directory log files.
// Fields are ordered to minimize memory padding.
type Logger struct {
	global     *zerolog.Logger
	globalFile *os.File
	listFiles  map[string]*os.File
	lists      map[string]*zerolog.Logger
	dataDir    string
	mu         sync.Mutex
	level      zerolog.Level
}

// New creates a new Logger that writes under dataDir/logs.
// If dataDir is empty, logging is disabled.
func New(dataDir string, level zerolog.Level) *Logger {
	return &Logger{
		dataDir:   dataDir,
		level:     level,
		listFiles: make(map[string]*os.File),
		lists:     make(map[string]*zerolog.Logger),
	}
}

// ParseLevel parses a log level string. Unknown values fall back to info.
func ParseLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func newFileLogger(w io.Writer, level zerolog.Level) *zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: timeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			"list",
			"category",
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{"list", "category"},
	}
	lg := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &lg
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// ensureGlobal opens or returns the global logger.
func (l *Logger) ensureGlobal() (*zerolog.Logger, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.global != nil {
		return l.global, nil
	}

	f, err := openLogFile(domain.GlobalLogPath(l.dataDir))
	if err != nil {
		return nil, err
	}
	l.globalFile = f
	l.global = newFileLogger(f, l.level)
	return l.global, nil
}

// ensureList opens or returns the logger of a list.
func (l *Logger) ensureList(list string) (*zerolog.Logger, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lg, ok := l.lists[list]; ok {
		return lg, nil
	}

	f, err := openLogFile(domain.ListLogPath(l.dataDir, list))
	if err != nil {
		return nil, err
	}
	l.listFiles[list] = f
	lg := newFileLogger(f, l.level)
	l.lists[list] = lg
	return lg, nil
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
		l.global = nil
	}
	for list, f := range l.listFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.listFiles, list)
		delete(l.lists, list)
	}
	return lastErr
}

// log writes an entry to the global log, and to the list log if list is set.
func (l *Logger) log(level zerolog.Level, list, category, msg string) {
	if l.dataDir == "" {
		return // Logging disabled
	}

	if level < l.level {
		return // Skip if below minimum level
	}

	scope := list
	if scope == "" {
		scope = "global"
	}

	if gl, err := l.ensureGlobal(); err == nil {
		gl.WithLevel(level).Str("list", scope).Str("category", category).Msg(msg)
	}

	if list != "" {
		if ll, err := l.ensureList(list); err == nil {
			ll.WithLevel(level).Str("list", scope).Str("category", category).Msg(msg)
		}
	}
}

// Info logs an info message.
func (l *Logger) Info(list, category, msg string) {
	l.log(zerolog.InfoLevel, list, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(list, category, msg string) {
	l.log(zerolog.DebugLevel, list, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(list, category, msg string) {
	l.log(zerolog.WarnLevel, list, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(list, category, msg string) {
	l.log(zerolog.ErrorLevel, list, category, msg)
}
