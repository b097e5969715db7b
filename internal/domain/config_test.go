package domain

import (
	"strings"
	"testing"
)

func TestGlobalConfigDir(t *testing.T) {
	got := GlobalConfigDir("/home/user/.config")
	want := "/home/user/.config/locrec"
	if got != want {
		t.Errorf("GlobalConfigDir() = %q, want %q", got, want)
	}
}

func TestDefaultDataDir(t *testing.T) {
	got := DefaultDataDir("/home/user/.local/share")
	want := "/home/user/.local/share/locrec"
	if got != want {
		t.Errorf("DefaultDataDir() = %q, want %q", got, want)
	}
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Storage.Backend != BackendJSON {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, BackendJSON)
	}
	if cfg.UI.DefaultScreen != ScreenTodo {
		t.Errorf("UI.DefaultScreen = %q, want %q", cfg.UI.DefaultScreen, ScreenTodo)
	}
}

func TestConfig_StoragePath(t *testing.T) {
	tests := []struct {
		name    string
		storage StorageConfig
		want    string
	}{
		{"json default", StorageConfig{Backend: BackendJSON}, "/data/storage.json"},
		{"sqlite default", StorageConfig{Backend: BackendSQLite}, "/data/storage.db"},
		{"git default", StorageConfig{Backend: BackendGit}, "/data/storage.git"},
		{"relative override", StorageConfig{Backend: BackendJSON, Path: "x/kv.json"}, "/data/x/kv.json"},
		{"absolute override", StorageConfig{Backend: BackendSQLite, Path: "/tmp/kv.db"}, "/tmp/kv.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Storage: tt.storage}
			if got := cfg.StoragePath("/data"); got != tt.want {
				t.Errorf("StoragePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogPaths(t *testing.T) {
	if got := GlobalLogPath("/data"); got != "/data/logs/locrec.log" {
		t.Errorf("GlobalLogPath() = %q", got)
	}
	if got := ListLogPath("/data", OrderListKey); got != "/data/logs/orderlist.log" {
		t.Errorf("ListLogPath() = %q", got)
	}
}

func TestRenderConfigTemplate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Log.Level = "debug"

	got := RenderConfigTemplate(cfg)

	for _, want := range []string{
		"[storage]",
		`backend = "json"`,
		`# path = "storage.json"`,
		"[log]",
		`level = "debug"`,
		"[ui]",
		`default_screen = "todo"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("template missing %q:\n%s", want, got)
		}
	}
}

func TestRenderConfigTemplate_WithPath(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Storage.Backend = BackendSQLite
	cfg.Storage.Path = "kv.db"

	got := RenderConfigTemplate(cfg)

	if !strings.Contains(got, `path = "kv.db"`) {
		t.Errorf("template missing path:\n%s", got)
	}
	if strings.Contains(got, "# path") {
		t.Errorf("template should not contain commented path:\n%s", got)
	}
}
