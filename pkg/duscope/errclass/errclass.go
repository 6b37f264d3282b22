// Package errclass decides whether a sizing failure is expected noise
// from an OS-protected location or a real problem worth surfacing. The
// classification only gates diagnostics: the size outcome of a denied
// path is the same either way.
package errclass

import (
	"path/filepath"
	"strings"
)

// permissionPhrases are the raw error fragments that identify an access
// denial across platforms.
var permissionPhrases = []string{
	"permission denied",
	"operation not permitted",
	"access is denied",
	"read-only file system",
}

// bundleSuffixes mark directories the host treats as one opaque unit.
// Sizing shortcuts and expected-error classification both consult this.
var bundleSuffixes = []string{
	".app",
	".framework",
	".bundle",
	".kext",
	".photoslibrary",
	".fcpbundle",
	".tvlibrary",
}

// Classifier decides whether access failures at given paths are expected.
type Classifier struct {
	roots    []string
	segments []string
}

// New returns a classifier seeded with the current OS's curated
// protected locations.
func New() *Classifier {
	return &Classifier{
		roots:    protectedRoots(),
		segments: protectedSegments(),
	}
}

// IsExpected reports whether a failure at path with the given raw error
// text is routine for this OS: the location must be a known protected
// one and the text must read as a permission denial.
func (c *Classifier) IsExpected(path, rawError string) bool {
	if !isPermissionText(rawError) {
		return false
	}
	return c.IsProtected(path) || IsBundle(path)
}

// IsProtected reports whether path is inside a curated OS-protected
// location, regardless of any error text.
func (c *Classifier) IsProtected(path string) bool {
	for _, root := range c.roots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	for _, seg := range c.segments {
		if strings.Contains(path, seg) {
			return true
		}
	}
	return false
}

// ProtectedRoots returns the curated protected root list for this OS.
// The lister uses it to hide protected roots unless configured otherwise.
func (c *Classifier) ProtectedRoots() []string {
	out := make([]string, len(c.roots))
	copy(out, c.roots)
	return out
}

// IsBundle reports whether path names an opaque bundle directory.
func IsBundle(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, suffix := range bundleSuffixes {
		if ext == suffix {
			return true
		}
	}
	return false
}

// isPermissionText reports whether the raw error text matches a known
// permission-denial phrasing.
func isPermissionText(rawError string) bool {
	text := strings.ToLower(rawError)
	for _, phrase := range permissionPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
