package progress

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableLifecycle(t *testing.T) {
	tbl := NewTable()

	tbl.Begin("/a")
	n, live := tbl.Get("/a")
	assert.True(t, live)
	assert.Equal(t, uint64(0), n)
	assert.Equal(t, 1, tbl.Len())

	tbl.Set("/a", 500)
	n, _ = tbl.Get("/a")
	assert.Equal(t, uint64(500), n)

	tbl.Finish("/a")
	_, live = tbl.Get("/a")
	assert.False(t, live)
	assert.Equal(t, 0, tbl.Len())
}

// TestTableMonotone verifies a stale smaller update never rolls the
// running total back.
func TestTableMonotone(t *testing.T) {
	tbl := NewTable()
	tbl.Begin("/a")

	tbl.Set("/a", 900)
	tbl.Set("/a", 100)

	n, _ := tbl.Get("/a")
	assert.Equal(t, uint64(900), n)
}

// TestTableNoResurrection verifies a finished path never reappears.
func TestTableNoResurrection(t *testing.T) {
	tbl := NewTable()

	tbl.Begin("/a")
	tbl.Finish("/a")
	tbl.Set("/a", 1234)

	_, live := tbl.Get("/a")
	assert.False(t, live)
}

// TestTableConcurrent hammers one key from many goroutines; the final
// value must be the maximum published.
func TestTableConcurrent(t *testing.T) {
	tbl := NewTable()
	tbl.Begin("/a")

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(n uint64) {
			defer wg.Done()
			tbl.Set("/a", n)
		}(uint64(i))
	}
	wg.Wait()

	n, live := tbl.Get("/a")
	assert.True(t, live)
	assert.Equal(t, uint64(100), n)
}
