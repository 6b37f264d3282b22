// Package lister enumerates the immediate children of one directory.
// It never recurses and never follows symlinks; recursion is the
// sizer's job.
package lister

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/duscope/duscope/pkg/duscope/errclass"
	"github.com/duscope/duscope/pkg/duscope/types"
)

// Lister lists directory children in seed presentation order.
type Lister struct {
	// includeProtected keeps well-known OS-protected roots in listings
	// instead of hiding them.
	includeProtected bool

	classifier *errclass.Classifier
}

// New creates a Lister. The classifier supplies the protected-root list
// consulted when includeProtected is false.
func New(includeProtected bool, classifier *errclass.Classifier) *Lister {
	return &Lister{
		includeProtected: includeProtected,
		classifier:       classifier,
	}
}

// List returns the immediate children of dir in seed order: directories
// first, then everything else, each group alphabetical case-insensitive.
// This order is what size ties break against before any sizes arrive.
// Failure to enumerate dir itself returns a *types.ListError.
func (l *Lister) List(dir string) ([]types.Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, &types.ListError{Path: dir, Err: err}
	}

	entries := make([]types.Entry, 0, len(dirents))
	for _, d := range dirents {
		path := filepath.Join(dir, d.Name())

		if !l.includeProtected && l.classifier.IsProtected(path) {
			continue
		}

		entries = append(entries, types.Entry{
			Path: path,
			Name: d.Name(),
			Kind: kindOf(d),
		})
	}

	sortSeed(entries)
	return entries, nil
}

// kindOf maps a directory entry to the closed entry-kind set without a
// stat call. DirEntry.Type() describes the entry itself, so symlinks to
// directories stay KindOther.
func kindOf(d os.DirEntry) types.EntryKind {
	switch {
	case d.IsDir():
		return types.KindDirectory
	case d.Type().IsRegular():
		return types.KindFile
	default:
		return types.KindOther
	}
}

// sortSeed orders entries directories-first, each group alphabetical
// case-insensitive.
func sortSeed(entries []types.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di := entries[i].Kind == types.KindDirectory
		dj := entries[j].Kind == types.KindDirectory
		if di != dj {
			return di
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}
