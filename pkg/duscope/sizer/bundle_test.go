package sizer

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestDuBundleSizer runs the real du(1) against a small tree.
func TestDuBundleSizer(t *testing.T) {
	if _, err := exec.LookPath("du"); err != nil {
		t.Skip("du not available")
	}

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "f"), make([]byte, 4096), 0o644); err != nil {
		t.Fatal(err)
	}

	n, ok := DuBundleSizer{}.SizeBundle(context.Background(), root)
	if !ok {
		t.Fatal("expected a usable answer from du")
	}
	if n == 0 {
		t.Error("expected a positive total")
	}
}

// TestDuBundleSizerMissingPath verifies failures are reported unusable,
// not as zero-byte sizes.
func TestDuBundleSizerMissingPath(t *testing.T) {
	if _, err := exec.LookPath("du"); err != nil {
		t.Skip("du not available")
	}

	if _, ok := (DuBundleSizer{}).SizeBundle(context.Background(), "/definitely/not/here"); ok {
		t.Error("missing path must be unusable")
	}
}
