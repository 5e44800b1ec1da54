package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "test.txt")
	if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, 0600); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("permissions = %o, want %o", perm, 0600)
		}
	}
}

func TestReadOnlyMode(t *testing.T) {
	tests := []struct {
		name     string
		mode     os.FileMode
		readOnly bool
		want     os.FileMode
	}{
		{"strip all write bits", 0o664, true, 0o444},
		{"already read-only", 0o444, true, 0o444},
		{"restore owner write", 0o444, false, 0o644},
		{"writable stays writable", 0o660, false, 0o660},
		{"ignores type bits", os.ModeDir | 0o755, true, 0o555},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readOnlyMode(tt.mode, tt.readOnly); got != tt.want {
				t.Errorf("readOnlyMode(%o, %v) = %o, want %o", tt.mode, tt.readOnly, got, tt.want)
			}
		})
	}
}
