package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Storage  StorageConfig `toml:"storage"`
	Log      LogConfig     `toml:"log"`
	UI       UIConfig      `toml:"ui"`
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Backend string `toml:"backend,omitempty"` // "json" (default), "sqlite" or "git"
	Path    string `toml:"path,omitempty"`    // Backend location; empty = default under the data dir
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// UIConfig holds TUI settings from the [ui] section.
type UIConfig struct {
	DefaultScreen string `toml:"default_screen,omitempty"` // "todo" (default) or "order"
}

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendGit    = "git"
)

// Screens.
const (
	ScreenTodo  = "todo"
	ScreenOrder = "order"
)

// Default configuration values.
const (
	DefaultLogLevel = "info"
	DefaultBackend  = BackendJSON
	DefaultScreen   = ScreenTodo
)

// Directory and file names.
const (
	AppDirName      = "locrec"       // Directory name under XDG config/data homes
	ConfigFileName  = "config.toml"  // Config file name
	EnvFileName     = ".env"         // Optional environment overlay in the data dir
	JSONStoreName   = "storage.json" // Default json backend file
	SQLiteStoreName = "storage.db"   // Default sqlite backend file
	GitStoreName    = "storage.git"  // Default git backend repository
	LogsDirName     = "logs"         // Log directory under the data dir
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// DefaultDataDir returns the data directory under dataHome.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func DefaultDataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// StoragePath returns the location of the configured backend under dataDir.
func (c *Config) StoragePath(dataDir string) string {
	if c.Storage.Path != "" {
		if filepath.IsAbs(c.Storage.Path) {
			return c.Storage.Path
		}
		return filepath.Join(dataDir, c.Storage.Path)
	}
	switch c.Storage.Backend {
	case BackendSQLite:
		return filepath.Join(dataDir, SQLiteStoreName)
	case BackendGit:
		return filepath.Join(dataDir, GitStoreName)
	default:
		return filepath.Join(dataDir, JSONStoreName)
	}
}

// GlobalLogPath returns the global log file path.
func GlobalLogPath(dataDir string) string {
	return filepath.Join(dataDir, LogsDirName, "locrec.log")
}

// ListLogPath returns the per-list log file path.
func ListLogPath(dataDir, list string) string {
	return filepath.Join(dataDir, LogsDirName, list+".log")
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{Backend: DefaultBackend},
		Log:     LogConfig{Level: DefaultLogLevel},
		UI:      UIConfig{DefaultScreen: DefaultScreen},
	}
}

// templateData holds all data for rendering the config template.
type templateData struct {
	Backend       string
	Path          string
	LogLevel      string
	DefaultScreen string
}

// RenderConfigTemplate renders a commented config file from cfg.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		Backend:       cfg.Storage.Backend,
		Path:          cfg.Storage.Path,
		LogLevel:      cfg.Log.Level,
		DefaultScreen: cfg.UI.DefaultScreen,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
