// Package types provides the core data model for the duscope directory
// size browser: directory entries, size outcomes, and the snapshots
// streamed to observers while a scan is in flight.
package types

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Size constants for binary (IEC) units.
const (
	KiB uint64 = 1024
	MiB uint64 = 1024 * KiB
	GiB uint64 = 1024 * MiB
	TiB uint64 = 1024 * GiB
)

// EntryKind classifies an immediate child of a scanned directory.
// The set is closed: everything that is neither a regular file nor a
// directory (symlinks, sockets, devices) is KindOther.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
	KindOther
)

// String returns the string representation of the kind.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Entry is one immediate child of a scanned directory. Entries are
// immutable once listed; identity is the absolute path.
type Entry struct {
	// Path is the absolute path to the entry.
	Path string `json:"path"`

	// Name is the base name, kept separate so sorting and display
	// never re-derive it.
	Name string `json:"name"`

	// Kind is the entity kind at listing time.
	Kind EntryKind `json:"kind"`
}

// OutcomeState is the resolution state of an entry's size.
type OutcomeState int

const (
	// StatePending means the size is not yet known.
	StatePending OutcomeState = iota

	// StateComputed means Bytes holds the resolved size.
	StateComputed

	// StateError means the entry could not be sized.
	StateError
)

// ErrorKind categorizes a sizing failure.
type ErrorKind int

const (
	// ErrNone is the zero value for non-error outcomes.
	ErrNone ErrorKind = iota

	// ErrPermissionDenied covers every access failure: the directory
	// could not be opened, or no file beneath it was readable.
	ErrPermissionDenied
)

// SizeOutcome is the pending, computed, or failed size of one entry.
// Bytes is meaningful only when State is StateComputed; error outcomes
// never leak a sentinel byte count.
type SizeOutcome struct {
	State  OutcomeState `json:"state"`
	Bytes  uint64       `json:"bytes,omitempty"`
	Reason ErrorKind    `json:"reason,omitempty"`
}

// Pending returns the unresolved outcome.
func Pending() SizeOutcome {
	return SizeOutcome{State: StatePending}
}

// Computed returns a resolved outcome of n bytes.
func Computed(n uint64) SizeOutcome {
	return SizeOutcome{State: StateComputed, Bytes: n}
}

// Errored returns a failed outcome with the given reason.
func Errored(reason ErrorKind) SizeOutcome {
	return SizeOutcome{State: StateError, Reason: reason}
}

// Final reports whether the outcome is resolved (computed or errored).
func (o SizeOutcome) Final() bool {
	return o.State != StatePending
}

// IsError reports whether the outcome is a failure.
func (o SizeOutcome) IsError() bool {
	return o.State == StateError
}

// EntryStatus is the per-entry row of a snapshot: the listed entry plus
// its current outcome and, while a directory walk is still running, the
// partial byte count accumulated so far.
type EntryStatus struct {
	Entry Entry `json:"entry"`

	// Outcome is the entry's current size resolution.
	Outcome SizeOutcome `json:"outcome"`

	// Calculating is true while a sizer is still running for this entry.
	Calculating bool `json:"calculating"`

	// PartialBytes is the running total of an unfinished directory
	// walk. Zero once Outcome is final.
	PartialBytes uint64 `json:"partial_bytes,omitempty"`
}

// ResolvedBytes returns the byte count this entry currently contributes
// to ordering and totals: the computed size once final, the partial walk
// total while pending, and 0 for errors.
func (s EntryStatus) ResolvedBytes() uint64 {
	switch {
	case s.Outcome.State == StateComputed:
		return s.Outcome.Bytes
	case s.Outcome.State == StatePending:
		return s.PartialBytes
	default:
		return 0
	}
}

// Snapshot is the consistent view pushed to an observer on every
// aggregation tick and once more when the last entry resolves.
type Snapshot struct {
	// Path is the directory this session is scanning.
	Path string `json:"path"`

	// Entries is the child list in presentation order.
	Entries []EntryStatus `json:"entries"`

	// TotalBytes is the grand total: computed sizes plus live partial
	// progress, never both for the same path.
	TotalBytes uint64 `json:"total_bytes"`

	// AnyCalculating is true while at least one entry is unresolved.
	AnyCalculating bool `json:"any_calculating"`

	// HasErrors is true once any entry resolved to an error.
	HasErrors bool `json:"has_errors"`
}

// ListError reports that a directory's own children could not be
// enumerated. It is terminal for the session that requested the listing,
// unlike per-entry sizing failures.
type ListError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ListError) Error() string {
	return fmt.Sprintf("listing %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ListError) Unwrap() error {
	return e.Err
}

// FormatSize converts a size in bytes to a human-readable string using
// binary (IEC) units, e.g. "1.5 MiB".
func FormatSize(bytes uint64) string {
	return humanize.IBytes(bytes)
}
