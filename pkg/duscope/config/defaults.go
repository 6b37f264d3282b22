package config

import "time"

// Default configuration values.
const (
	// DefaultPath is scanned when no path is given: the filesystem root,
	// so the first view answers "where did my disk go".
	DefaultPath = "/"

	// DefaultIncludeProtected controls whether well-known OS-protected
	// roots appear in listings at all.
	DefaultIncludeProtected = false

	// DefaultBundleShortcut enables the external sizing shortcut for
	// opaque bundle directories.
	DefaultBundleShortcut = true

	// DefaultAggregateInterval is the period of the per-session timer
	// that recomputes totals and re-sorts while sizers are running.
	DefaultAggregateInterval = 300 * time.Millisecond

	// DefaultPacingFiles is how many files a directory walk processes
	// between pacing yields, keeping partial progress observable.
	DefaultPacingFiles = 256
)
