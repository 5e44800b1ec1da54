package notify

import (
	"fmt"
	"os"
)

// Backends lists the renderer names accepted by NewBackend.
var Backends = []string{"auto", "terminal", "zenity", "osascript", "messagebox"}

// NewBackend returns the renderer registered under name.
func NewBackend(name string) (Renderer, error) {
	switch name {
	case "", "auto":
		return DefaultRenderer(), nil
	case "terminal":
		return NewTerminalRenderer(os.Stdin, os.Stderr), nil
	case "zenity":
		return Zenity(), nil
	case "osascript":
		return OSAScript(), nil
	case "messagebox":
		return messageBox()
	default:
		return nil, fmt.Errorf("unknown notification backend %q", name)
	}
}
