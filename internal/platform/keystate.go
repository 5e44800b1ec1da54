package platform

// Virtual-key codes accepted by GetAsyncKeyState.
const (
	VKShift   = 0x10
	VKControl = 0x11
	VKMenu    = 0x12
	VKEscape  = 0x1B
)

// KeyDown reports whether a GetAsyncKeyState result has the key held.
func KeyDown(state int16) bool { return state < 0 }

// GetAsyncKeyState returns the host's asynchronous state for a virtual key:
// the sign bit is set while the key is down. Hosts without a keyboard query
// report 0.
func GetAsyncKeyState(vKey int) int16 {
	return hostAsyncKeyState(vKey)
}
