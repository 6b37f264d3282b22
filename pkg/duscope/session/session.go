// Package session orchestrates one directory listing end to end: list
// the children, seed what the cache already knows, fan out sizers for
// the rest, and stream ordered snapshots to an observer while totals
// are still arriving. One session exists per open directory view; the
// cache it consults outlives them all.
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/duscope/duscope/pkg/duscope/cache"
	"github.com/duscope/duscope/pkg/duscope/config"
	"github.com/duscope/duscope/pkg/duscope/lister"
	"github.com/duscope/duscope/pkg/duscope/logging"
	"github.com/duscope/duscope/pkg/duscope/progress"
	"github.com/duscope/duscope/pkg/duscope/sizer"
	"github.com/duscope/duscope/pkg/duscope/types"
)

// Observer receives a snapshot on every aggregation tick and once more
// when the last entry resolves. It must be safe to call from other
// goroutines.
type Observer func(types.Snapshot)

// Options configures a Session.
type Options struct {
	// Path is the directory to scan. Empty means the filesystem root.
	Path string

	// Cache is the shared process-wide size cache. Required.
	Cache *cache.Cache

	// Lister lists the children. Required.
	Lister *lister.Lister

	// Sizer resolves sizes. Required.
	Sizer *sizer.Sizer

	// Partial is the live-walk table shared with the Sizer. Required.
	Partial *progress.Table

	// Interval is the aggregation timer period.
	Interval time.Duration

	// OnSnapshot is the observer. Nil means snapshots are only
	// available by polling Snapshot.
	OnSnapshot Observer
}

// Session is one scan of one directory.
type Session struct {
	// ID identifies the session in logs.
	ID string

	opts    Options
	cache   *cache.Cache
	partial *progress.Table

	mu             sync.Mutex
	rows           []types.EntryStatus
	index          map[string]int
	total          uint64
	anyCalculating bool
	hasErrors      bool
	finished       bool

	detached atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New creates a session. Start must be called to begin scanning.
func New(opts Options) *Session {
	if opts.Path == "" {
		opts.Path = config.DefaultPath
	}
	if opts.Interval <= 0 {
		opts.Interval = config.DefaultAggregateInterval
	}

	return &Session{
		ID:      uuid.New().String(),
		opts:    opts,
		cache:   opts.Cache,
		partial: opts.Partial,
		index:   make(map[string]int),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Path returns the directory this session scans.
func (s *Session) Path() string {
	return s.opts.Path
}

// Start lists the directory and launches one sizing task per uncached
// child, all concurrently, then returns. Sizing continues in the
// background; snapshots stream to the observer until everything
// resolves. A failure to list the directory itself is terminal: no
// tasks start, the error (a *types.ListError carrying the path and raw
// text) is returned for the caller to render, and Done is closed.
func (s *Session) Start(ctx context.Context) error {
	logger := logging.Get("session").With("id", s.ID, "path", s.opts.Path)

	entries, err := s.opts.Lister.List(s.opts.Path)
	if err != nil {
		logger.Warn("listing failed", "error", err)
		s.mu.Lock()
		s.hasErrors = true
		s.finished = true
		s.mu.Unlock()
		close(s.done)
		return err
	}

	s.seed(entries)
	logger.Debug("listed", "entries", len(entries), "pending", s.pendingCount())

	// Push the seeded view before any sizing lands.
	s.tick()

	g := new(errgroup.Group)
	s.mu.Lock()
	for i := range s.rows {
		if !s.rows[i].Calculating {
			continue
		}
		entry := s.rows[i].Entry
		g.Go(func() error {
			var outcome types.SizeOutcome
			if entry.Kind == types.KindDirectory {
				outcome = s.opts.Sizer.SizeDirectory(ctx, entry.Path)
			} else {
				outcome = s.opts.Sizer.SizeFile(ctx, entry.Path)
			}
			s.complete(entry.Path, outcome)
			return nil
		})
	}
	s.mu.Unlock()

	go func() {
		// Tasks run to completion even after Detach so the cache keeps
		// the work for the next visit to this directory.
		_ = g.Wait()
		s.finish()
	}()
	go s.run()

	return nil
}

// seed populates rows from the listing, resolving from cache where the
// path was sized before. Only cache misses get Calculating.
func (s *Session) seed(entries []types.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = make([]types.EntryStatus, 0, len(entries))
	for _, e := range entries {
		row := types.EntryStatus{Entry: e}
		if outcome, ok := s.cache.Get(e.Path); ok {
			row.Outcome = outcome
			if outcome.IsError() {
				s.hasErrors = true
			}
		} else {
			row.Outcome = types.Pending()
			row.Calculating = true
		}
		s.rows = append(s.rows, row)
	}
	s.reindex()
}

// run drives the aggregation timer. It stops exactly once: when the
// session finishes or when the view detaches.
func (s *Session) run() {
	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-s.stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick recomputes totals and ordering and pushes a snapshot.
func (s *Session) tick() {
	s.mu.Lock()
	s.aggregate()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.push(snap)
}

// complete records one entry's final outcome.
func (s *Session) complete(path string, outcome types.SizeOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[path]
	if !ok {
		return
	}
	s.rows[i].Outcome = outcome
	s.rows[i].Calculating = false
	s.rows[i].PartialBytes = 0
	if outcome.IsError() {
		s.hasErrors = true
	}
}

// finish runs once when every task has resolved: one last aggregation
// pass, the final snapshot, and the done signal.
func (s *Session) finish() {
	s.mu.Lock()
	s.finished = true
	s.aggregate()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.push(snap)
	close(s.done)
	logging.Get("session").Debug("session complete", "id", s.ID,
		"total", snap.TotalBytes, "errors", snap.HasErrors)
}

// Snapshot returns the current aggregated view.
func (s *Session) Snapshot() types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aggregate()
	return s.snapshotLocked()
}

// snapshotLocked copies the current state. Caller holds s.mu.
func (s *Session) snapshotLocked() types.Snapshot {
	rows := make([]types.EntryStatus, len(s.rows))
	copy(rows, s.rows)
	return types.Snapshot{
		Path:           s.opts.Path,
		Entries:        rows,
		TotalBytes:     s.total,
		AnyCalculating: s.anyCalculating,
		HasErrors:      s.hasErrors,
	}
}

// Detach stops the timer and the observer stream when the view closes.
// In-flight sizers still run to completion and populate the cache, so
// navigating away and back benefits from work already underway.
func (s *Session) Detach() {
	s.detached.Store(true)
	s.stopOnce.Do(func() { close(s.stop) })
}

// Done is closed when every sizing task has resolved, or immediately
// after a terminal listing failure.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the session completes or ctx is cancelled.
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// push delivers a snapshot to the observer unless the view detached.
func (s *Session) push(snap types.Snapshot) {
	if s.detached.Load() || s.opts.OnSnapshot == nil {
		return
	}
	s.opts.OnSnapshot(snap)
}

// pendingCount returns how many rows still need sizing.
func (s *Session) pendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.rows {
		if s.rows[i].Calculating {
			n++
		}
	}
	return n
}
