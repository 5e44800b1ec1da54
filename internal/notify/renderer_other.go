//go:build !windows && !darwin

package notify

import (
	"fmt"
	"os"
)

// DefaultRenderer returns zenity when it is installed and a terminal prompt
// on stdin/stderr otherwise.
func DefaultRenderer() Renderer {
	if z := Zenity(); z.Available() {
		return z
	}
	return NewTerminalRenderer(os.Stdin, os.Stderr)
}

func messageBox() (Renderer, error) {
	return nil, fmt.Errorf("messagebox backend is only available on Windows")
}
