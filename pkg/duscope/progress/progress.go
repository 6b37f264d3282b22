// Package progress tracks the running byte totals of directory walks
// that have not yet finished. The table is shared between the sizers
// that write it and the aggregator that folds it into grand totals.
package progress

import "sync"

// Table maps a directory path to the bytes its walk has accumulated so
// far. An entry exists only while the walk is running: Begin creates it,
// Finish removes it the instant the walk resolves, success or error.
type Table struct {
	mu      sync.RWMutex
	partial map[string]uint64
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{partial: make(map[string]uint64)}
}

// Begin registers a walk at zero bytes.
func (t *Table) Begin(path string) {
	t.mu.Lock()
	t.partial[path] = 0
	t.mu.Unlock()
}

// Set publishes the walk's running total. Updates for a live entry are
// monotone non-decreasing; a stale smaller value is ignored, and a path
// whose walk already finished is never resurrected.
func (t *Table) Set(path string, bytes uint64) {
	t.mu.Lock()
	if cur, ok := t.partial[path]; ok && bytes > cur {
		t.partial[path] = bytes
	}
	t.mu.Unlock()
}

// Get returns the running total for path and whether the walk is live.
func (t *Table) Get(path string) (uint64, bool) {
	t.mu.RLock()
	bytes, ok := t.partial[path]
	t.mu.RUnlock()
	return bytes, ok
}

// Finish removes the entry for path. The final outcome must be published
// to the cache or session state before this is called, so no tick sees
// the path in neither form.
func (t *Table) Finish(path string) {
	t.mu.Lock()
	delete(t.partial, path)
	t.mu.Unlock()
}

// Len returns the number of live walks.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.partial)
}
