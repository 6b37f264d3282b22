package sizer

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// BundleSizer is the shortcut strategy consulted before walking a
// recognized opaque bundle. A false second return means "no usable
// answer, fall back to the generic walk".
type BundleSizer interface {
	SizeBundle(ctx context.Context, path string) (uint64, bool)
}

// DuBundleSizer sizes a bundle by shelling out to du(1). Opaque bundles
// can hold hundreds of thousands of tiny files; the host utility walks
// them far faster than we care to.
type DuBundleSizer struct{}

// SizeBundle runs `du -sk path` and parses the total. Any failure, or a
// zero answer, is reported unusable so the caller falls back to walking.
func (DuBundleSizer) SizeBundle(ctx context.Context, path string) (uint64, bool) {
	out, err := exec.CommandContext(ctx, "du", "-sk", path).Output()
	if err != nil {
		return 0, false
	}

	fields := strings.Fields(string(out))
	if len(fields) == 0 {
		return 0, false
	}

	kib, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil || kib == 0 {
		return 0, false
	}
	return kib * 1024, true
}
