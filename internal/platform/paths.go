package platform

import (
	"encoding/binary"
	"errors"
	"log/slog"

	"github.com/agentx-labs/hostpal/internal/diag"
	"github.com/agentx-labs/hostpal/internal/fatal"
	"github.com/agentx-labs/hostpal/internal/pathenc"
)

// DirectoryExists reports whether path exists and is a directory. A missing
// path or a non-directory entry is simply false.
func DirectoryExists(path string) bool {
	return GetFileAttributes(path).IsDir()
}

// CreateDirectory creates a single directory level. It succeeds without side
// effects when path is already a directory. Parent directories are not
// created.
func CreateDirectory(path string) bool {
	native, ok := toNative("create directory", path)
	if !ok {
		return false
	}
	if attrs, err := hostFileAttributes(native); err == nil && attrs.IsDir() {
		return true
	}
	if err := hostMkdir(native); err != nil {
		fail("create directory", path, err)
		return false
	}
	return true
}

// GetCurrentDirectory writes the absolute working directory into buf as a
// NUL-terminated string. An empty buf is left untouched. On any failure,
// including a result that does not fit, buf is left empty.
func GetCurrentDirectory(buf []byte) {
	if len(buf) == 0 {
		return
	}
	buf[0] = 0

	native, err := hostGetwd()
	if err != nil {
		fail("get current directory", "", err)
		return
	}
	if _, err := pathenc.Host.FromNative(buf, native); err != nil {
		fail("get current directory", "", err)
	}
}

// SetCurrentDirectory changes the working directory. Failure is not
// reported; callers that care re-query GetCurrentDirectory.
func SetCurrentDirectory(path string) {
	native, ok := toNative("set current directory", path)
	if !ok {
		return
	}
	if err := hostChdir(native); err != nil {
		fail("set current directory", path, err)
	}
}

// GetExecutableDirectory writes the directory containing the running binary,
// with its trailing separator, into buf. The process cannot continue without
// knowing its own location, so every failure aborts: a host error, a path at
// or beyond the native limit, an empty result, or a buf too small for the
// converted directory.
func GetExecutableDirectory(buf []byte) {
	native, err := hostExecutable()
	if err != nil {
		fatal.Abortf("unexpected error encountered trying to get executable path: %v", err)
	}

	units := len(native) / pathenc.Host.UnitSize()
	if units >= maxNativePath {
		fatal.Abortf("the path to the current executable exceeds the expected length (%d >= %d units), truncated path: %s",
			units, maxNativePath, display(native))
	}
	if units == 0 {
		fatal.Abortf("unexpected error encountered trying to get executable path: empty result")
	}

	dir := trimFileName(native)
	if _, err := pathenc.Host.FromNative(buf, dir); err != nil {
		var oe *pathenc.OverflowError
		if errors.As(err, &oe) {
			fatal.Abortf("executable path is too long. MaxPathSize:%d, PathSize:%d, Path:%s",
				oe.Capacity, oe.Required, display(dir))
		}
		fatal.Abortf("executable path could not be converted: %v", err)
	}
}

// GetWritableDirectory reports a dedicated writable directory. No host
// provides one, so buf is left empty and 0 is returned; callers fall back to
// their own location.
func GetWritableDirectory(buf []byte) int {
	if len(buf) > 0 {
		buf[0] = 0
	}
	return 0
}

// GetFileAttributes returns the attributes of path, or InvalidAttributes when
// the entry cannot be queried.
func GetFileAttributes(path string) Attributes {
	native, ok := toNative("get file attributes", path)
	if !ok {
		return InvalidAttributes
	}
	attrs, err := hostFileAttributes(native)
	if err != nil {
		fail("get file attributes", path, err)
		return InvalidAttributes
	}
	return attrs
}

// SetFileAttributes applies attrs to path and reports whether the host
// accepted them. The InvalidAttributes sentinel is rejected.
func SetFileAttributes(path string, attrs Attributes) bool {
	if !attrs.Valid() {
		fail("set file attributes", path, pathenc.ErrInvalid)
		return false
	}
	native, ok := toNative("set file attributes", path)
	if !ok {
		return false
	}
	if err := hostSetFileAttributes(native, attrs); err != nil {
		fail("set file attributes", path, err)
		return false
	}
	return true
}

func toNative(op, path string) ([]byte, bool) {
	native, err := pathenc.Host.ToNative(path)
	if err != nil {
		fail(op, path, err)
		return nil, false
	}
	return native, true
}

func fail(op, path string, err error) {
	diag.Record(err)
	slog.Debug("platform operation failed", "op", op, "path", path, "err", err)
}

// trimFileName cuts native after its last separator. A path without a
// separator is returned unchanged.
func trimFileName(native []byte) []byte {
	unit := pathenc.Host.UnitSize()
	for i := len(native) - unit; i >= 0; i -= unit {
		if isSeparator(codeUnit(native[i:i+unit])) {
			return native[:i+unit]
		}
	}
	return native
}

func codeUnit(b []byte) uint16 {
	if len(b) == 2 {
		return binary.LittleEndian.Uint16(b)
	}
	return uint16(b[0])
}

func isSeparator(u uint16) bool {
	for _, s := range separators {
		if u == s {
			return true
		}
	}
	return false
}

// display renders native for a fatal message without failing on bad input.
func display(native []byte) string {
	buf := make([]byte, 4*len(native)+1)
	if _, err := pathenc.Host.FromNative(buf, native); err != nil {
		return "<unprintable>"
	}
	return pathenc.CString(buf)
}
