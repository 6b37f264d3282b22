// Package sizer resolves the byte size of files and directory trees.
// File sizing is a single stat; directory sizing is a recursive walk
// that streams partial totals, tolerates per-file failures, and prefers
// partial knowledge over discarding accessible bytes.
package sizer

import (
	"github.com/duscope/duscope/pkg/duscope/cache"
	"github.com/duscope/duscope/pkg/duscope/config"
	"github.com/duscope/duscope/pkg/duscope/errclass"
	"github.com/duscope/duscope/pkg/duscope/progress"
)

// Options configures a Sizer.
type Options struct {
	// Cache receives every final outcome, success or failure. Required.
	Cache *cache.Cache

	// Partial is the shared table of live walk totals. Required.
	Partial *progress.Table

	// Classifier decides which walk failures are routine and logged at
	// debug instead of warn. Required.
	Classifier *errclass.Classifier

	// Bundles is the opaque-bundle shortcut strategy. Nil disables the
	// shortcut and every directory gets the generic walk.
	Bundles BundleSizer

	// PacingFiles is how many files a walk processes between yields.
	PacingFiles int
}

// Validate applies defaults for unset values.
func (o *Options) Validate() {
	if o.PacingFiles < 1 {
		o.PacingFiles = config.DefaultPacingFiles
	}
}
