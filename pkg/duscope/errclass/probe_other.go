//go:build !unix

package errclass

// checkAccess has no cheap equivalent off unix; the ReadDir in probePath
// does the real test.
func checkAccess(string) error {
	return nil
}
