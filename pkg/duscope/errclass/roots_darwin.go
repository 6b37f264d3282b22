package errclass

// protectedRoots lists macOS locations routinely denied to unprivileged
// processes: virtual volume roots, OS-internal trees, and TCC-guarded
// system databases.
func protectedRoots() []string {
	return []string{
		"/System/Volumes",
		"/System/Library",
		"/private/var/db",
		"/private/var/folders",
		"/private/var/protected",
		"/Library/Application Support/com.apple.TCC",
		"/.Spotlight-V100",
		"/.fseventsd",
	}
}

// protectedSegments lists path fragments of user-private data trees that
// Full Disk Access gates, wherever the home directory lives.
func protectedSegments() []string {
	return []string{
		"/Library/Mail",
		"/Library/Safari",
		"/Library/Messages",
		"/Library/Containers",
		"/Library/Cookies",
		"/Library/HomeKit",
		"/.Trash",
	}
}
