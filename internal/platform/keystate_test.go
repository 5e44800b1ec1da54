package platform

import (
	"runtime"
	"testing"
)

func TestKeyDown(t *testing.T) {
	tests := []struct {
		state int16
		want  bool
	}{
		{0, false},
		{1, false},
		{-32768, true},
		{-32767, true},
	}
	for _, tt := range tests {
		if got := KeyDown(tt.state); got != tt.want {
			t.Errorf("KeyDown(%d) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestGetAsyncKeyStateWithoutKeyboard(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("state depends on the interactive session")
	}
	for _, vk := range []int{VKShift, VKControl, VKEscape, 0} {
		if got := GetAsyncKeyState(vk); got != 0 {
			t.Errorf("GetAsyncKeyState(0x%X) = %d, want 0", vk, got)
		}
	}
}
