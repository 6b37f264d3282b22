package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/duscope/duscope/cmd/duscope/tui"
	"github.com/duscope/duscope/pkg/duscope/cache"
	"github.com/duscope/duscope/pkg/duscope/config"
	"github.com/duscope/duscope/pkg/duscope/errclass"
	"github.com/duscope/duscope/pkg/duscope/lister"
	"github.com/duscope/duscope/pkg/duscope/logging"
	"github.com/duscope/duscope/pkg/duscope/progress"
	"github.com/duscope/duscope/pkg/duscope/sizer"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "duscope [path]",
		Short: "Browse directory sizes interactively",
		Long: `Duscope computes the size of every child of a directory while you watch,
sorted largest-first, with partial totals streaming in as subtrees are
walked. Sizes are cached for the life of the process, so drilling into a
directory and backing out is instant the second time.

Examples:
  duscope                    # Browse the filesystem root
  duscope ~/Library          # Browse a specific directory
  duscope list ~/Downloads   # One-shot listing, no TUI
  duscope probe              # Re-test access to protected locations`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBrowse,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/duscope/config.yaml)")
	rootCmd.PersistentFlags().BoolP("include-protected", "a", false, "list well-known OS-protected directories too")
	rootCmd.PersistentFlags().Bool("no-bundle-shortcut", false, "always walk opaque bundles instead of asking du(1)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")

	_ = viper.BindPFlag("include_protected", rootCmd.PersistentFlags().Lookup("include-protected"))
	_ = viper.BindPFlag("no_bundle_shortcut", rootCmd.PersistentFlags().Lookup("no-bundle-shortcut"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "duscope"))
		}
		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "duscope"))
		}
	}

	viper.SetEnvPrefix("DUSCOPE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// engine bundles the long-lived services one process shares across
// every scan session.
type engine struct {
	cfg        *config.Config
	cache      *cache.Cache
	partial    *progress.Table
	classifier *errclass.Classifier
	lister     *lister.Lister
	sizer      *sizer.Sizer
}

// buildEngine wires config, cache, classifier, lister, and sizer.
func buildEngine() (*engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if viper.GetBool("verbose") {
		level = "debug"
	}
	if err := logging.Init(logging.Config{Level: level, Path: cfg.Logging.Path}); err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}

	c, err := cache.Open()
	if err != nil {
		return nil, fmt.Errorf("opening size cache: %w", err)
	}

	cfg.IncludeProtected = viper.GetBool("include_protected")
	if viper.GetBool("no_bundle_shortcut") {
		cfg.BundleShortcut = false
	}

	classifier := errclass.New()
	partial := progress.NewTable()

	var bundles sizer.BundleSizer
	if cfg.BundleShortcut {
		bundles = sizer.DuBundleSizer{}
	}

	return &engine{
		cfg:        cfg,
		cache:      c,
		partial:    partial,
		classifier: classifier,
		lister:     lister.New(cfg.IncludeProtected, classifier),
		sizer: sizer.New(sizer.Options{
			Cache:       c,
			Partial:     partial,
			Classifier:  classifier,
			Bundles:     bundles,
			PacingFiles: cfg.PacingFiles,
		}),
	}, nil
}

// close releases the engine's resources.
func (e *engine) close() {
	_ = e.cache.Close()
	_ = logging.Close()
}

// targetPath resolves the positional path argument, falling back to the
// configured default (the filesystem root out of the box).
func (e *engine) targetPath(args []string) (string, error) {
	path := e.cfg.DefaultPath
	if len(args) > 0 {
		path = args[0]
	}

	path, err := config.ExpandPath(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(path)
}

// runBrowse launches the interactive browser.
func runBrowse(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}
	defer eng.close()

	path, err := eng.targetPath(args)
	if err != nil {
		return err
	}

	return tui.Run(tui.Options{
		Path:       path,
		Cache:      eng.cache,
		Partial:    eng.partial,
		Lister:     eng.lister,
		Sizer:      eng.sizer,
		Classifier: eng.classifier,
		Interval:   eng.cfg.AggregateInterval,
	})
}
