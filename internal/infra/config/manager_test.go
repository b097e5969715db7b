package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/locrec/internal/domain"
)

func TestManager_GetDataConfigInfo(t *testing.T) {
	dataDir := t.TempDir()
	m := NewManagerWithGlobalDir(dataDir, t.TempDir())

	info := m.GetDataConfigInfo()
	assert.False(t, info.Exists)
	assert.Equal(t, filepath.Join(dataDir, domain.ConfigFileName), info.Path)

	writeFile(t, dataDir, domain.ConfigFileName, "[log]\nlevel = \"debug\"\n")

	info = m.GetDataConfigInfo()
	assert.True(t, info.Exists)
	assert.Contains(t, info.Content, `level = "debug"`)
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, globalDir, domain.ConfigFileName, "[ui]\n")

	info := NewManagerWithGlobalDir(t.TempDir(), globalDir).GetGlobalConfigInfo()

	assert.True(t, info.Exists)
	assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
}

func TestManager_GetGlobalConfigInfo_NoDir(t *testing.T) {
	info := NewManagerWithGlobalDir(t.TempDir(), "").GetGlobalConfigInfo()

	assert.False(t, info.Exists)
	assert.Empty(t, info.Path)
}

func TestManager_InitDataConfig(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "fresh")
	m := NewManagerWithGlobalDir(dataDir, t.TempDir())

	path, err := m.InitDataConfig(domain.NewDefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, domain.ConfigFileName), path)

	// Written template loads back cleanly.
	cfg, err := NewLoaderWithGlobalDir(dataDir, t.TempDir(), nil).Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.BackendJSON, cfg.Storage.Backend)

	_, err = m.InitDataConfig(domain.NewDefaultConfig())
	assert.ErrorIs(t, err, domain.ErrConfigExists)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[storage]")
}
