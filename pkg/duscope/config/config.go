package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// Config represents the application configuration.
type Config struct {
	// DefaultPath is scanned when no path argument is given.
	DefaultPath string `mapstructure:"default_path"`

	// IncludeProtected lists OS-protected roots instead of hiding them.
	IncludeProtected bool `mapstructure:"include_protected"`

	// BundleShortcut enables external sizing of opaque bundles.
	BundleShortcut bool `mapstructure:"bundle_shortcut"`

	// AggregateInterval is the aggregation timer period.
	AggregateInterval time.Duration `mapstructure:"aggregate_interval"`

	// PacingFiles is the number of files between walk pacing yields.
	PacingFiles int `mapstructure:"pacing_files"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/duscope/config.yaml
//   - $HOME/.config/duscope/config.yaml
//
// Environment variables are prefixed with DUSCOPE_ (e.g. DUSCOPE_DEFAULT_PATH).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "duscope"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "duscope"))

	v.SetEnvPrefix("DUSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is acceptable; we use defaults.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.PacingFiles < 1 {
		cfg.PacingFiles = DefaultPacingFiles
	}
	if cfg.AggregateInterval <= 0 {
		cfg.AggregateInterval = DefaultAggregateInterval
	}

	return &cfg, nil
}

// SetDefaults registers the default values on a viper instance. The CLI
// shares this with Load so flag-bound vipers agree on defaults.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("default_path", DefaultPath)
	v.SetDefault("include_protected", DefaultIncludeProtected)
	v.SetDefault("bundle_shortcut", DefaultBundleShortcut)
	v.SetDefault("aggregate_interval", DefaultAggregateInterval)
	v.SetDefault("pacing_files", DefaultPacingFiles)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.path", "") // Empty means use DefaultLogPath.
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "duscope"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "duscope"), nil
}

// StateDir returns $XDG_STATE_HOME/duscope/ for log files.
func StateDir() string {
	return filepath.Join(xdg.StateHome, "duscope")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(StateDir(), "duscope.log")
}

// EnsureStateDir creates the state directory if it doesn't exist.
func EnsureStateDir() error {
	if err := os.MkdirAll(StateDir(), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	return nil
}

// ExpandPath expands ~ in a path to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}
