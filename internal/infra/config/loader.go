// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/locrec/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Environment variables overriding file settings.
const (
	EnvDataDir       = "LOCREC_DATA_DIR"
	EnvBackend       = "LOCREC_STORAGE_BACKEND"
	EnvStoragePath   = "LOCREC_STORAGE_PATH"
	EnvLogLevel      = "LOCREC_LOG_LEVEL"
	EnvDefaultScreen = "LOCREC_UI_DEFAULT_SCREEN"
)

// Loader loads configuration from TOML files and the environment.
type Loader struct {
	lookupEnv     func(string) (string, bool)
	dataDir       string // Data directory holding config.toml and .env
	globalConfDir string // Path to global config directory (e.g., ~/.config/locrec)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
		lookupEnv:     os.LookupEnv,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory
// and environment lookup. This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string, lookupEnv func(string) (string, bool)) *Loader {
	if lookupEnv == nil {
		lookupEnv = func(string) (string, bool) { return "", false }
	}
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
		lookupEnv:     lookupEnv,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// ResolveDataDir returns the data directory: flag, then LOCREC_DATA_DIR,
// then $XDG_DATA_HOME/locrec, then ~/.local/share/locrec.
func ResolveDataDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return filepath.Abs(dir)
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DefaultDataDir(dataHome), nil
}

// Load returns the merged configuration.
// Precedence: default <- global <- data dir <- .env <- environment.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	// Merge files: default <- global <- data dir (later takes precedence)
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if global != nil {
		base = mergeConfigs(base, global)
	}

	local, err := l.loadFile(filepath.Join(l.dataDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	env, err := l.envOverlay()
	if err != nil {
		return nil, err
	}
	base = mergeConfigs(base, env)

	if err := validate(base); err != nil {
		return nil, err
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// envOverlay builds a config from the .env file in the data dir and the process environment.
// Process variables win over .env entries.
func (l *Loader) envOverlay() (*domain.Config, error) {
	dotenv := map[string]string{}
	if l.dataDir != "" {
		vals, err := godotenv.Read(filepath.Join(l.dataDir, domain.EnvFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", domain.EnvFileName, err)
		}
		if vals != nil {
			dotenv = vals
		}
	}

	get := func(name string) string {
		if v, ok := l.lookupEnv(name); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(dotenv[name])
	}

	return &domain.Config{
		Storage: domain.StorageConfig{
			Backend: get(EnvBackend),
			Path:    get(EnvStoragePath),
		},
		Log: domain.LogConfig{Level: get(EnvLogLevel)},
		UI:  domain.UIConfig{DefaultScreen: get(EnvDefaultScreen)},
	}, nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "storage":
			for k, v := range m {
				s, _ := v.(string)
				switch k {
				case "backend":
					res.Storage.Backend = s
				case "path":
					res.Storage.Path = s
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [storage]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "ui":
			for k, v := range m {
				switch k {
				case "default_screen":
					if s, ok := v.(string); ok {
						res.UI.DefaultScreen = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [ui]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: [%s]", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Storage:  base.Storage,
		Log:      base.Log,
		UI:       base.UI,
		Warnings: append([]string{}, base.Warnings...),
	}

	// Add override warnings
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Storage.Backend != "" {
		result.Storage.Backend = override.Storage.Backend
	}
	if override.Storage.Path != "" {
		result.Storage.Path = override.Storage.Path
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.UI.DefaultScreen != "" {
		result.UI.DefaultScreen = override.UI.DefaultScreen
	}

	return result
}

// validate rejects settings no component can act on.
func validate(cfg *domain.Config) error {
	switch cfg.Storage.Backend {
	case domain.BackendJSON, domain.BackendSQLite, domain.BackendGit:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownBackend, cfg.Storage.Backend)
	}
	switch cfg.UI.DefaultScreen {
	case domain.ScreenTodo, domain.ScreenOrder:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownScreen, cfg.UI.DefaultScreen)
	}
	return nil
}
