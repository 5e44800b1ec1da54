//go:build linux

package platform

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// IsDebuggerPresent reports whether a tracer is attached to the process.
func IsDebuggerPresent() bool {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return false
	}
	defer f.Close()
	return parseTracerPid(f)
}

// parseTracerPid reads a /proc status file and reports a nonzero TracerPid.
func parseTracerPid(r io.Reader) bool {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if pid, ok := strings.CutPrefix(scanner.Text(), "TracerPid:"); ok {
			pid = strings.TrimSpace(pid)
			return pid != "" && pid != "0"
		}
	}
	return false
}
