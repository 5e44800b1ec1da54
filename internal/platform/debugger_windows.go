//go:build windows

package platform

import "golang.org/x/sys/windows"

var procIsDebuggerPresent = windows.NewLazySystemDLL("kernel32.dll").NewProc("IsDebuggerPresent")

// IsDebuggerPresent reports whether a user-mode debugger is attached.
func IsDebuggerPresent() bool {
	r, _, _ := procIsDebuggerPresent.Call()
	return r != 0
}
