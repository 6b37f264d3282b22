package session

import (
	"sort"
	"strings"

	"github.com/duscope/duscope/pkg/duscope/types"
)

// Order sorts rows in place for presentation. The rules, applied in
// order:
//
//  1. Errored entries cluster after everything with a resolved size.
//  2. Two errored entries order by path, case-insensitive ascending.
//  3. Two entries that are both still calculating with zero resolved
//     bytes keep their existing relative order, so the list doesn't
//     churn before any signal exists.
//  4. Larger resolved size first; a calculating directory resolves to
//     its current partial total.
//  5. Equal sizes order by path, case-insensitive ascending.
//
// The sort is stable and idempotent: re-running it on an unchanged
// snapshot yields the same order.
func Order(rows []types.EntryStatus) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rowLess(rows[i], rows[j])
	})
}

func rowLess(a, b types.EntryStatus) bool {
	aErr := a.Outcome.IsError()
	bErr := b.Outcome.IsError()

	if aErr != bErr {
		return !aErr
	}
	if aErr {
		return pathLess(a, b)
	}

	an := a.ResolvedBytes()
	bn := b.ResolvedBytes()

	// No signal yet for either: hold the seed order.
	if a.Calculating && b.Calculating && an == 0 && bn == 0 {
		return false
	}

	if an != bn {
		return an > bn
	}
	return pathLess(a, b)
}

func pathLess(a, b types.EntryStatus) bool {
	return strings.ToLower(a.Entry.Path) < strings.ToLower(b.Entry.Path)
}
