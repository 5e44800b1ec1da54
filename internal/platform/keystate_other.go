//go:build !windows

package platform

func hostAsyncKeyState(int) int16 { return 0 }
