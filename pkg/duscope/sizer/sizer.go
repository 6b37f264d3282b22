package sizer

import (
	"context"
	"io/fs"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
	"github.com/duscope/duscope/pkg/duscope/errclass"
	"github.com/duscope/duscope/pkg/duscope/logging"
	"github.com/duscope/duscope/pkg/duscope/types"
)

// Sizer computes sizes for files and directory trees, writing every
// final outcome through to the shared cache.
type Sizer struct {
	opts Options
}

// New creates a Sizer with the given options.
func New(opts Options) *Sizer {
	opts.Validate()
	return &Sizer{opts: opts}
}

// SizeFile resolves the size of one regular file: a single stat, no
// recursion, no partial state. The outcome is written through to the
// cache before returning.
func (s *Sizer) SizeFile(ctx context.Context, path string) types.SizeOutcome {
	_ = ctx // a stat has no useful cancellation point

	var outcome types.SizeOutcome
	info, err := os.Lstat(path)
	if err != nil {
		s.diagnose(path, err)
		outcome = types.Errored(types.ErrPermissionDenied)
	} else {
		outcome = types.Computed(uint64(info.Size()))
	}

	s.putCache(path, false, outcome)
	return outcome
}

// SizeDirectory resolves the total size of the tree rooted at path. It
// registers the path in the partial-progress table for the duration of
// the walk, consults the bundle shortcut first, and applies the
// resolution policy: an unopenable directory or zero accessible files
// is an error; otherwise the total over the accessible subset wins even
// when some files failed.
func (s *Sizer) SizeDirectory(ctx context.Context, path string) types.SizeOutcome {
	s.opts.Partial.Begin(path)

	outcome := s.resolveDirectory(ctx, path)

	// Publish the final outcome before dropping the partial entry so no
	// aggregation tick sees the path in neither form.
	s.putCache(path, true, outcome)
	s.opts.Partial.Finish(path)
	return outcome
}

// resolveDirectory computes the outcome without touching cache or
// partial-table lifecycle.
func (s *Sizer) resolveDirectory(ctx context.Context, path string) types.SizeOutcome {
	if s.opts.Bundles != nil && errclass.IsBundle(path) {
		if n, ok := s.opts.Bundles.SizeBundle(ctx, path); ok {
			return types.Computed(n)
		}
	}

	var (
		total      atomic.Uint64
		okFiles    atomic.Int64
		failed     atomic.Int64
		sinceYield atomic.Int64
		rootFailed atomic.Bool
	)

	pacing := int64(s.opts.PacingFiles)
	conf := fastwalk.Config{
		Follow: false, // symlinks are never followed
	}

	walkErr := fastwalk.Walk(&conf, path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// A failed entry doesn't abort the walk, but a root that
			// can't be opened decides the whole outcome.
			if p == path {
				rootFailed.Store(true)
			}
			failed.Add(1)
			s.diagnose(p, err)
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		info, ierr := d.Info()
		if ierr != nil {
			failed.Add(1)
			s.diagnose(p, ierr)
			return nil
		}

		okFiles.Add(1)
		s.opts.Partial.Set(path, total.Add(uint64(info.Size())))

		if sinceYield.Add(1)%pacing == 0 {
			runtime.Gosched()
		}
		return nil
	})

	if walkErr != nil {
		rootFailed.Store(true)
		s.diagnose(path, walkErr)
	}

	switch {
	case rootFailed.Load():
		return types.Errored(types.ErrPermissionDenied)
	case okFiles.Load() == 0 && failed.Load() > 0:
		return types.Errored(types.ErrPermissionDenied)
	default:
		// Empty directories resolve to zero bytes, and partial failures
		// are absorbed into the accessible total.
		return types.Computed(total.Load())
	}
}

// putCache writes the outcome through to the cache. Cache failures are
// logged, not propagated: a missing cache entry only costs a recompute.
func (s *Sizer) putCache(path string, isDir bool, outcome types.SizeOutcome) {
	if err := s.opts.Cache.Put(path, isDir, outcome); err != nil {
		logging.Get("sizer").Warn("cache write failed", "path", path, "error", err)
	}
}

// diagnose logs a sizing failure: debug for expected OS-protected
// locations, warn otherwise. Classification never changes the outcome.
func (s *Sizer) diagnose(path string, err error) {
	logger := logging.Get("sizer")
	if s.opts.Classifier.IsExpected(path, err.Error()) {
		logger.Debug("access denied at protected location", "path", path, "error", err)
		return
	}
	logger.Warn("cannot size entry", "path", path, "error", err)
}
