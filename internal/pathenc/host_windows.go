//go:build windows

package pathenc

// Host is the bridge for the build target.
var Host = UTF16
