package domain

import (
	"context"
	"time"
)

// KVStore is the storage port for record lists.
// Each key holds the whole serialized list; every write replaces the value.
type KVStore interface {
	// GetItem returns the value stored under key. ok is false if the key is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem overwrites the value stored under key.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// HistoryStore is implemented by stores that keep earlier values of a key.
type HistoryStore interface {
	// History returns up to limit revisions of key, newest first (limit <= 0 means all).
	History(ctx context.Context, key string, limit int) ([]Revision, error)

	// Revision returns the value recorded by a revision.
	Revision(ctx context.Context, id string) (string, error)
}

// Revision describes one recorded value of a key.
type Revision struct {
	When time.Time
	ID   string
	Size int
}

// IDGenerator produces collision-resistant record identifiers.
type IDGenerator interface {
	// NewID returns a fresh identifier.
	NewID() string
}

// Logger is the developer-facing diagnostics channel.
// list is the storage key the entry relates to; empty means global only.
type Logger interface {
	Debug(list, category, msg string)
	Info(list, category, msg string)
	Warn(list, category, msg string)
	Error(list, category, msg string)
}

// NopLogger discards every entry.
type NopLogger struct{}

func (NopLogger) Debug(_, _, _ string) {}
func (NopLogger) Info(_, _, _ string)  {}
func (NopLogger) Warn(_, _, _ string)  {}
func (NopLogger) Error(_, _, _ string) {}

// ConfigLoader loads configuration from files and the environment.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- data dir <- env).
	Load() (*Config, error)
}

// ConfigManager manages configuration files on disk.
type ConfigManager interface {
	// GetDataConfigInfo returns information about the data directory config file.
	GetDataConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitDataConfig writes a commented template to the data directory config.
	InitDataConfig(cfg *Config) (string, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
