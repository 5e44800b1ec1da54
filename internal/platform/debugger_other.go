//go:build !linux && !windows

package platform

// IsDebuggerPresent always reports false on hosts without a cheap check.
func IsDebuggerPresent() bool {
	return false
}
