package session

import "github.com/duscope/duscope/pkg/duscope/types"

// aggregate recomputes the grand total, refreshes each row's partial
// bytes, re-sorts, and rebuilds the index. Caller holds s.mu.
//
// Per-row contribution: a final outcome contributes its computed bytes
// (errors contribute 0); a pending directory with a live partial entry
// contributes that; a pending path whose walk just resolved but whose
// completion hasn't landed yet is read from the cache; anything else
// contributes 0. A path is never counted in both partial and final form.
func (s *Session) aggregate() {
	var total uint64
	anyCalculating := false

	for i := range s.rows {
		row := &s.rows[i]

		if row.Outcome.Final() {
			row.PartialBytes = 0
			if row.Outcome.State == types.StateComputed {
				total += row.Outcome.Bytes
			}
			continue
		}

		anyCalculating = true

		if row.Entry.Kind == types.KindDirectory {
			if partial, live := s.partial.Get(row.Entry.Path); live {
				row.PartialBytes = partial
				total += partial
				continue
			}
			// The sizer removes the partial entry only after writing the
			// cache, so a resolved-but-not-yet-completed walk is visible
			// there and no bytes are lost between ticks.
			if outcome, ok := s.cache.Get(row.Entry.Path); ok {
				row.PartialBytes = 0
				if outcome.State == types.StateComputed {
					total += outcome.Bytes
				}
				continue
			}
		}
		row.PartialBytes = 0
	}

	s.total = total

	// anyCalculating transitions to false exactly once per session.
	if s.finished {
		anyCalculating = false
	}
	s.anyCalculating = anyCalculating

	Order(s.rows)
	s.reindex()
}

// reindex rebuilds the path → row position map after a sort.
func (s *Session) reindex() {
	for i := range s.rows {
		s.index[s.rows[i].Entry.Path] = i
	}
}
