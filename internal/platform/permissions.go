package platform

import (
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits; use SetFileAttributes there.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// readOnlyMode derives the permission bits matching the read-only attribute.
// Making a file read-only strips every write bit; clearing the attribute
// restores owner write only.
func readOnlyMode(mode os.FileMode, readOnly bool) os.FileMode {
	perm := mode.Perm()
	if readOnly {
		return perm &^ 0o222
	}
	if perm&0o222 == 0 {
		return perm | 0o200
	}
	return perm
}
