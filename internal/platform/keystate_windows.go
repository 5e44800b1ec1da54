//go:build windows

package platform

import "golang.org/x/sys/windows"

var procGetAsyncKeyState = windows.NewLazySystemDLL("user32.dll").NewProc("GetAsyncKeyState")

func hostAsyncKeyState(vKey int) int16 {
	if err := procGetAsyncKeyState.Find(); err != nil {
		return 0
	}
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vKey))
	return int16(uint16(r))
}
