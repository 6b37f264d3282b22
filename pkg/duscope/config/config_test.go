package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoadDefaults loads with no config file present.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultPath != DefaultPath {
		t.Errorf("DefaultPath: got %q, want %q", cfg.DefaultPath, DefaultPath)
	}
	if cfg.IncludeProtected != DefaultIncludeProtected {
		t.Errorf("IncludeProtected: got %v", cfg.IncludeProtected)
	}
	if !cfg.BundleShortcut {
		t.Error("BundleShortcut should default on")
	}
	if cfg.AggregateInterval != DefaultAggregateInterval {
		t.Errorf("AggregateInterval: got %v", cfg.AggregateInterval)
	}
	if cfg.PacingFiles != DefaultPacingFiles {
		t.Errorf("PacingFiles: got %d", cfg.PacingFiles)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q", cfg.Logging.Level)
	}
}

// TestLoadConfigFile reads values from a YAML config.
func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())

	configDir := filepath.Join(dir, "duscope")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `default_path: /home/someone
include_protected: true
bundle_shortcut: false
aggregate_interval: 1s
pacing_files: 64
logging:
  level: debug
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultPath != "/home/someone" {
		t.Errorf("DefaultPath: got %q", cfg.DefaultPath)
	}
	if !cfg.IncludeProtected {
		t.Error("IncludeProtected should be true")
	}
	if cfg.BundleShortcut {
		t.Error("BundleShortcut should be false")
	}
	if cfg.AggregateInterval != time.Second {
		t.Errorf("AggregateInterval: got %v", cfg.AggregateInterval)
	}
	if cfg.PacingFiles != 64 {
		t.Errorf("PacingFiles: got %d", cfg.PacingFiles)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level: got %q", cfg.Logging.Level)
	}
}

// TestLoadEnvOverride verifies the DUSCOPE_ env binding.
func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DUSCOPE_DEFAULT_PATH", "/var/data")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultPath != "/var/data" {
		t.Errorf("DefaultPath: got %q, want env override", cfg.DefaultPath)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/Library")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != filepath.Join(home, "Library") {
		t.Errorf("got %q", got)
	}

	got, err = ExpandPath("/absolute")
	if err != nil || got != "/absolute" {
		t.Errorf("absolute path must pass through, got %q err %v", got, err)
	}
}
