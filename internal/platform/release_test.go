package platform

import (
	"runtime"
	"testing"
)

func TestParseRelease(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"6.8.0-45-generic", "6.8.0"},
		{"5.15.90.1-microsoft-standard-WSL2", "5.15.90"},
		{"23.1.0", "23.1.0"},
		{"10.0.19045", "10.0.19045"},
		{"v4", "4.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseRelease(tt.in)
			if err != nil {
				t.Fatalf("ParseRelease(%q) error: %v", tt.in, err)
			}
			if v.String() != tt.want {
				t.Errorf("ParseRelease(%q) = %s, want %s", tt.in, v, tt.want)
			}
		})
	}

	if _, err := ParseRelease("unknown"); err == nil {
		t.Error("expected error for non-numeric release")
	}
}

func TestMeetsMinimumRelease(t *testing.T) {
	tests := []struct {
		release, minimum string
		want             bool
	}{
		{"6.8.0-45-generic", "3.10.0", true},
		{"3.10.0-1160.el7", "3.10.0", true},
		{"2.6.32", "3.10.0", false},
	}

	for _, tt := range tests {
		got, err := MeetsMinimumRelease(tt.release, tt.minimum)
		if err != nil {
			t.Fatalf("MeetsMinimumRelease(%q, %q) error: %v", tt.release, tt.minimum, err)
		}
		if got != tt.want {
			t.Errorf("MeetsMinimumRelease(%q, %q) = %v, want %v", tt.release, tt.minimum, got, tt.want)
		}
	}
}

func TestHostRelease(t *testing.T) {
	release, err := HostRelease()
	if err != nil {
		t.Fatalf("HostRelease failed: %v", err)
	}
	if _, err := ParseRelease(release); err != nil {
		t.Errorf("host release %q is not parseable: %v", release, err)
	}
}

func TestMinimumRelease(t *testing.T) {
	if got := MinimumRelease(map[string]string{runtime.GOOS: "1.2.3"}); got != "1.2.3" {
		t.Errorf("override ignored: got %q", got)
	}
	if got := MinimumRelease(nil); got != DefaultMinimumReleases[runtime.GOOS] {
		t.Errorf("default = %q, want %q", got, DefaultMinimumReleases[runtime.GOOS])
	}
}
