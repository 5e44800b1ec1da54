package platform

import (
	"fmt"
	"regexp"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// releasePrefix extracts the leading numeric part of a kernel or OS release
// string such as "6.8.0-45-generic" or "5.15.90.1-microsoft-standard-WSL2".
var releasePrefix = regexp.MustCompile(`^v?(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// DefaultMinimumReleases lists the oldest host releases this layer is tested
// against, keyed by GOOS.
var DefaultMinimumReleases = map[string]string{
	"linux":   "3.10.0",
	"darwin":  "19.0.0",
	"windows": "10.0.0",
}

// HostRelease returns the host kernel or OS release string.
func HostRelease() (string, error) {
	return hostRelease()
}

// ParseRelease converts a host release string into a semantic version,
// keeping only major.minor.patch.
func ParseRelease(release string) (*semver.Version, error) {
	m := releasePrefix.FindStringSubmatch(release)
	if m == nil {
		return nil, fmt.Errorf("unrecognized release %q", release)
	}
	v, err := semver.NewVersion(m[0])
	if err != nil {
		return nil, fmt.Errorf("parsing release %q: %w", release, err)
	}
	return semver.New(v.Major(), v.Minor(), v.Patch(), "", ""), nil
}

// MeetsMinimumRelease reports whether release is at least minimum.
func MeetsMinimumRelease(release, minimum string) (bool, error) {
	rv, err := ParseRelease(release)
	if err != nil {
		return false, err
	}
	mv, err := ParseRelease(minimum)
	if err != nil {
		return false, fmt.Errorf("minimum: %w", err)
	}
	return !rv.LessThan(mv), nil
}

// MinimumRelease returns the configured minimum for the running OS, falling
// back to DefaultMinimumReleases.
func MinimumRelease(overrides map[string]string) string {
	if v, ok := overrides[runtime.GOOS]; ok && v != "" {
		return v
	}
	return DefaultMinimumReleases[runtime.GOOS]
}
