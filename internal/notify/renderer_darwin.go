//go:build darwin

package notify

import "fmt"

// DefaultRenderer returns the host dialog renderer.
func DefaultRenderer() Renderer {
	return OSAScript()
}

func messageBox() (Renderer, error) {
	return nil, fmt.Errorf("messagebox backend is only available on Windows")
}
