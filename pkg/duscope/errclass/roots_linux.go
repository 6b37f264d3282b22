package errclass

// protectedRoots lists Linux locations that are virtual, root-only, or
// both; sizing them fails for unprivileged users as a matter of course.
func protectedRoots() []string {
	return []string{
		"/proc",
		"/sys",
		"/root",
		"/lost+found",
		"/run/user",
		"/var/lib/private",
		"/etc/ssl/private",
	}
}

// protectedSegments lists path fragments of routinely-restricted trees.
func protectedSegments() []string {
	return []string{
		"/.gnupg",
		"/.ssh",
	}
}
