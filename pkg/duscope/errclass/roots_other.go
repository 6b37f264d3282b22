//go:build !darwin && !linux

package errclass

// protectedRoots has no curated entries on platforms we don't know;
// every permission failure is surfaced there.
func protectedRoots() []string {
	return nil
}

func protectedSegments() []string {
	return nil
}
