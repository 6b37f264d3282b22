package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"", log.InfoLevel, false},
		{"WARN", log.WarnLevel, false},
		{"warning", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error: %v", tt.in, err)
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("ParseLevel(%q): error should wrap ErrInvalidLevel", tt.in)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duscope.log")

	if err := Init(Config{Level: "debug", Path: path}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer func() { _ = Close() }()

	Get("sizer").Info("walk started", "path", "/tmp/x")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "walk started") {
		t.Errorf("log file missing message: %q", string(data))
	}
	if !strings.Contains(string(data), "sizer") {
		t.Errorf("log file missing component prefix: %q", string(data))
	}
}

// TestGetBeforeInit: loggers must be safe (and silent) before Init.
func TestGetBeforeInit(t *testing.T) {
	_ = Close()

	logger := Get("early")
	logger.Info("this goes nowhere")
}

// TestGetReusesLogger: one logger instance per component.
func TestGetReusesLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duscope.log")
	if err := Init(Config{Level: "info", Path: path}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer func() { _ = Close() }()

	if Get("session") != Get("session") {
		t.Error("Get should return the same logger for a component")
	}
}

func TestInitRejectsBadLevel(t *testing.T) {
	if err := Init(Config{Level: "shout"}); err == nil {
		t.Error("expected error for invalid level")
		_ = Close()
	}
}
