package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duscope/duscope/pkg/duscope/types"
)

func computedRow(path string, bytes uint64) types.EntryStatus {
	return types.EntryStatus{
		Entry:   types.Entry{Path: path, Name: path, Kind: types.KindFile},
		Outcome: types.Computed(bytes),
	}
}

func erroredRow(path string) types.EntryStatus {
	return types.EntryStatus{
		Entry:   types.Entry{Path: path, Name: path, Kind: types.KindDirectory},
		Outcome: types.Errored(types.ErrPermissionDenied),
	}
}

func calculatingRow(path string, partial uint64) types.EntryStatus {
	return types.EntryStatus{
		Entry:        types.Entry{Path: path, Name: path, Kind: types.KindDirectory},
		Outcome:      types.Pending(),
		Calculating:  true,
		PartialBytes: partial,
	}
}

func paths(rows []types.EntryStatus) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Entry.Path
	}
	return out
}

func TestOrderSizeDescending(t *testing.T) {
	rows := []types.EntryStatus{
		computedRow("/small", 10),
		computedRow("/big", 1000),
		computedRow("/mid", 500),
	}
	Order(rows)
	assert.Equal(t, []string{"/big", "/mid", "/small"}, paths(rows))
}

// TestOrderErrorsLast verifies errored entries cluster after everything
// with a resolved size, however small, and after live partials.
func TestOrderErrorsLast(t *testing.T) {
	rows := []types.EntryStatus{
		erroredRow("/denied"),
		computedRow("/tiny", 1),
		calculatingRow("/walking", 999999),
	}
	Order(rows)
	assert.Equal(t, []string{"/walking", "/tiny", "/denied"}, paths(rows))
}

func TestOrderErrorsAmongThemselves(t *testing.T) {
	rows := []types.EntryStatus{
		erroredRow("/b"),
		erroredRow("/A"),
		computedRow("/ok", 5),
	}
	Order(rows)
	assert.Equal(t, []string{"/ok", "/A", "/b"}, paths(rows))
}

// TestOrderZeroCalculatingHoldsSeedOrder: before any signal exists the
// existing relative order must not churn.
func TestOrderZeroCalculatingHoldsSeedOrder(t *testing.T) {
	rows := []types.EntryStatus{
		calculatingRow("/zz", 0),
		calculatingRow("/aa", 0),
	}
	Order(rows)
	assert.Equal(t, []string{"/zz", "/aa"}, paths(rows), "seed order must hold")
}

// TestOrderPartialCounts: a still-calculating directory orders by its
// current partial total.
func TestOrderPartialCounts(t *testing.T) {
	rows := []types.EntryStatus{
		computedRow("/done", 500),
		calculatingRow("/walking", 800),
	}
	Order(rows)
	assert.Equal(t, []string{"/walking", "/done"}, paths(rows))
}

func TestOrderEqualSizesPathAscending(t *testing.T) {
	rows := []types.EntryStatus{
		computedRow("/Beta", 100),
		computedRow("/alpha", 100),
	}
	Order(rows)
	assert.Equal(t, []string{"/alpha", "/Beta"}, paths(rows))
}

// TestOrderIdempotent re-runs the sort on unchanged state; the order
// must be byte-identical every time.
func TestOrderIdempotent(t *testing.T) {
	rows := []types.EntryStatus{
		calculatingRow("/p2", 0),
		calculatingRow("/p1", 0),
		computedRow("/big", 900),
		erroredRow("/x"),
		computedRow("/same1", 100),
		computedRow("/same2", 100),
	}

	Order(rows)
	first := paths(rows)
	for i := 0; i < 3; i++ {
		Order(rows)
		assert.Equal(t, first, paths(rows), "re-sort %d changed the order", i)
	}
}
