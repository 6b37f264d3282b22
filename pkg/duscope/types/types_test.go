package types

import (
	"errors"
	"testing"
)

// TestOutcomeConstructors verifies the three outcome states.
func TestOutcomeConstructors(t *testing.T) {
	p := Pending()
	if p.Final() || p.IsError() {
		t.Errorf("Pending should be neither final nor error: %+v", p)
	}

	c := Computed(1234)
	if !c.Final() || c.IsError() {
		t.Errorf("Computed should be final, not error: %+v", c)
	}
	if c.Bytes != 1234 {
		t.Errorf("Computed bytes: got %d, want 1234", c.Bytes)
	}

	e := Errored(ErrPermissionDenied)
	if !e.Final() || !e.IsError() {
		t.Errorf("Errored should be final and error: %+v", e)
	}
	if e.Bytes != 0 {
		t.Errorf("Errored must not carry bytes, got %d", e.Bytes)
	}
}

// TestResolvedBytes verifies what each row state contributes to
// ordering and totals.
func TestResolvedBytes(t *testing.T) {
	tests := []struct {
		name string
		row  EntryStatus
		want uint64
	}{
		{
			name: "computed uses final bytes",
			row:  EntryStatus{Outcome: Computed(900)},
			want: 900,
		},
		{
			name: "pending directory uses partial",
			row:  EntryStatus{Outcome: Pending(), Calculating: true, PartialBytes: 450},
			want: 450,
		},
		{
			name: "pending with no progress is zero",
			row:  EntryStatus{Outcome: Pending(), Calculating: true},
			want: 0,
		},
		{
			name: "error contributes zero",
			row:  EntryStatus{Outcome: Errored(ErrPermissionDenied), PartialBytes: 999},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.ResolvedBytes(); got != tt.want {
				t.Errorf("ResolvedBytes: got %d, want %d", got, tt.want)
			}
		})
	}
}

// TestEntryKindString verifies the kind names.
func TestEntryKindString(t *testing.T) {
	tests := []struct {
		kind EntryKind
		want string
	}{
		{KindFile, "file"},
		{KindDirectory, "directory"},
		{KindOther, "other"},
		{EntryKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EntryKind(%d).String(): got %q, want %q", tt.kind, got, tt.want)
		}
	}
}

// TestListError verifies wrapping and the error message.
func TestListError(t *testing.T) {
	inner := errors.New("permission denied")
	err := &ListError{Path: "/x", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("ListError should unwrap to the inner error")
	}
	if err.Error() != "listing /x: permission denied" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

// TestFormatSize spot-checks the IEC formatting.
func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0 B"},
		{KiB, "1.0 KiB"},
		{1536 * KiB, "1.5 MiB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d): got %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
