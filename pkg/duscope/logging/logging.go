// Package logging provides file-backed structured logging for duscope.
// The TUI owns the terminal, so logs go to a file under the XDG state
// directory rather than stderr.
//
// Basic usage:
//
//	cfg := logging.Config{Level: "info"}
//	if err := logging.Init(cfg); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Close()
//
//	logger := logging.Get("sizer")
//	logger.Info("walk started", "path", "/home/user")
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/duscope/duscope/pkg/duscope/config"
)

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a level string into a charmbracelet/log level.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// Config configures the logging system.
type Config struct {
	// Level is the log level (debug, info, warn, error).
	Level string

	// Path is the log file path. Empty uses config.DefaultLogPath().
	Path string
}

// state holds the global logging state.
type state struct {
	mu          sync.Mutex
	initialized bool
	file        *os.File
	level       log.Level
	loggers     map[string]*log.Logger
}

var globalState = &state{
	loggers: make(map[string]*log.Logger),
}

// Init initializes the logging system. Before Init is called, loggers
// returned by Get write to io.Discard.
func Init(cfg Config) error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	path := cfg.Path
	if path == "" {
		path = config.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	if globalState.file != nil {
		_ = globalState.file.Close()
	}
	globalState.file = file
	globalState.level = level
	globalState.initialized = true

	// Recreate existing component loggers against the new writer.
	for component := range globalState.loggers {
		globalState.loggers[component] = newLogger(file, level, component)
	}

	return nil
}

// Get returns a logger for the given component, creating it on first use.
func Get(component string) *log.Logger {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if logger, ok := globalState.loggers[component]; ok {
		return logger
	}

	var (
		w     io.Writer = io.Discard
		level           = log.InfoLevel
	)
	if globalState.initialized {
		w = globalState.file
		level = globalState.level
	}

	logger := newLogger(w, level, component)
	globalState.loggers[component] = logger
	return logger
}

// Close flushes and closes the log file.
func Close() error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if globalState.file == nil {
		return nil
	}
	err := globalState.file.Close()
	globalState.file = nil
	globalState.initialized = false
	globalState.loggers = make(map[string]*log.Logger)
	return err
}

func newLogger(w io.Writer, level log.Level, component string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          component,
		ReportTimestamp: true,
	})
}
