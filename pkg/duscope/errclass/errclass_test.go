package errclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBundle(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/Applications/Safari.app", true},
		{"/Library/Frameworks/Foo.framework", true},
		{"/Users/x/Pictures/Photos.photoslibrary", true},
		{"/Users/x/Documents", false},
		{"/tmp/app", false},
		{"/tmp/archive.tar", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsBundle(tt.path), "IsBundle(%q)", tt.path)
	}
}

// TestIsExpectedBundle uses the bundle branch, which is OS-independent.
func TestIsExpectedBundle(t *testing.T) {
	c := New()

	assert.True(t, c.IsExpected("/Applications/Mail.app", "open /Applications/Mail.app: operation not permitted"))
	assert.True(t, c.IsExpected("/Applications/Mail.app", "permission denied"))

	// Right location, wrong error text: not an expected denial.
	assert.False(t, c.IsExpected("/Applications/Mail.app", "no such file or directory"))

	// Right text, unremarkable location.
	assert.False(t, c.IsExpected("/tmp/scratch", "permission denied"))
}

// TestIsProtectedRoots checks prefix matching against the curated list,
// when this OS has one.
func TestIsProtectedRoots(t *testing.T) {
	c := New()
	roots := c.ProtectedRoots()
	if len(roots) == 0 {
		t.Skip("no curated roots on this OS")
	}

	for _, root := range roots {
		assert.True(t, c.IsProtected(root), "root itself: %q", root)
		assert.True(t, c.IsProtected(root+"/child"), "child of %q", root)
	}
	assert.False(t, c.IsProtected("/definitely/not/protected"))
}

func TestPermissionText(t *testing.T) {
	assert.True(t, isPermissionText("stat /x: Permission Denied"))
	assert.True(t, isPermissionText("operation not permitted"))
	assert.False(t, isPermissionText("file too large"))
	assert.False(t, isPermissionText(""))
}
