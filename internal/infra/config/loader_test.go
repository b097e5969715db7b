package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/locrec/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func envMap(vals map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vals[k]
		return v, ok
	}
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir(), nil)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig().Storage, cfg.Storage)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, domain.ScreenTodo, cfg.UI.DefaultScreen)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_DataDirConfigOnly(t *testing.T) {
	dataDir := t.TempDir()
	writeFile(t, dataDir, domain.ConfigFileName, `
[storage]
backend = "sqlite"
path = "kv.db"

[log]
level = "debug"

[ui]
default_screen = "order"
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, t.TempDir(), nil).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "kv.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, domain.ScreenOrder, cfg.UI.DefaultScreen)
}

func TestLoader_Load_DataDirOverridesGlobal(t *testing.T) {
	dataDir := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, globalDir, domain.ConfigFileName, `
[storage]
backend = "git"

[log]
level = "warn"
`)
	writeFile(t, dataDir, domain.ConfigFileName, `
[log]
level = "error"
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, globalDir, nil).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.BackendGit, cfg.Storage.Backend, "global value is kept when not overridden")
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoader_Load_EnvOverrides(t *testing.T) {
	dataDir := t.TempDir()
	writeFile(t, dataDir, domain.ConfigFileName, `
[storage]
backend = "sqlite"
`)
	writeFile(t, dataDir, domain.EnvFileName, "LOCREC_STORAGE_BACKEND=git\nLOCREC_LOG_LEVEL=debug\n")

	env := envMap(map[string]string{EnvLogLevel: "error"})
	cfg, err := NewLoaderWithGlobalDir(dataDir, t.TempDir(), env).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.BackendGit, cfg.Storage.Backend, ".env overrides files")
	assert.Equal(t, "error", cfg.Log.Level, "process environment overrides .env")
}

func TestLoader_Load_Warnings(t *testing.T) {
	dataDir := t.TempDir()
	writeFile(t, dataDir, domain.ConfigFileName, `
title = "x"

[storage]
engine = "json"

[theme]
color = "red"
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, t.TempDir(), nil).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{
		"unknown key in [storage]: engine",
		"unknown key: title",
		"unknown section: [theme]",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"backend", "[storage]\nbackend = \"redis\"\n", domain.ErrUnknownBackend},
		{"screen", "[ui]\ndefault_screen = \"home\"\n", domain.ErrUnknownScreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataDir := t.TempDir()
			writeFile(t, dataDir, domain.ConfigFileName, tt.content)

			_, err := NewLoaderWithGlobalDir(dataDir, t.TempDir(), nil).Load()

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_MalformedToml(t *testing.T) {
	dataDir := t.TempDir()
	writeFile(t, dataDir, domain.ConfigFileName, "[storage\n")

	_, err := NewLoaderWithGlobalDir(dataDir, t.TempDir(), nil).Load()

	assert.ErrorContains(t, err, "parse")
}

func TestResolveDataDir(t *testing.T) {
	dir := t.TempDir()

	got, err := ResolveDataDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	t.Setenv(EnvDataDir, filepath.Join(dir, "env"))
	got, err = ResolveDataDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "env"), got)

	t.Setenv(EnvDataDir, "")
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "share"))
	got, err = ResolveDataDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "share", "locrec"), got)
}
