// Package cache holds resolved size outcomes for the lifetime of the
// process. Every scan session shares one cache, so navigating back to a
// directory reuses sizes computed earlier, including cached failures: a
// once-denied path is not retried every view.
package cache

import (
	"errors"
	"fmt"

	"github.com/duscope/duscope/pkg/duscope/types"
)

// Cache is the process-wide path → SizeOutcome side-table. It never
// drives computation; it only short-circuits it.
type Cache struct {
	store *Store
}

// Stats reports what the cache currently holds, for diagnostic display.
type Stats struct {
	Directories int `json:"directories"`
	Files       int `json:"files"`
	Errors      int `json:"errors"`
}

// Open creates an empty in-memory cache.
func Open() (*Cache, error) {
	store, err := OpenStore()
	if err != nil {
		return nil, err
	}
	return &Cache{store: store}, nil
}

// Close closes the cache.
func (c *Cache) Close() error {
	return c.store.Close()
}

// Get returns the cached outcome for path, if any.
func (c *Cache) Get(path string) (types.SizeOutcome, bool) {
	entry, err := c.store.get(path)
	if err != nil {
		return types.SizeOutcome{}, false
	}
	if entry.Failed {
		return types.Errored(types.ErrPermissionDenied), true
	}
	return types.Computed(entry.Bytes), true
}

// Put stores a final outcome for path. Pending outcomes are rejected:
// the cache only ever holds resolutions. Concurrent writers for the
// same path are last-writer-wins, which is safe because both computed
// the same size.
func (c *Cache) Put(path string, isDir bool, outcome types.SizeOutcome) error {
	if !outcome.Final() {
		return fmt.Errorf("cache put %s: pending outcome", path)
	}
	return c.store.put(path, &cachedOutcome{
		IsDir:  isDir,
		Failed: outcome.IsError(),
		Bytes:  outcome.Bytes,
	})
}

// Contains reports whether path has a cached outcome.
func (c *Cache) Contains(path string) bool {
	_, err := c.store.get(path)
	return !errors.Is(err, ErrNotFound) && err == nil
}

// Clear removes every cached outcome.
func (c *Cache) Clear() error {
	return c.store.drop()
}

// Stats counts cached directories, files, and errors.
func (c *Cache) Stats() (Stats, error) {
	dirs, files, errs, err := c.store.countAll()
	if err != nil {
		return Stats{}, err
	}
	return Stats{Directories: dirs, Files: files, Errors: errs}, nil
}
