//go:build !windows

package platform

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// maxNativePath is PATH_MAX on Linux.
const maxNativePath = 4096

var separators = []uint16{'/'}

func hostFileAttributes(native []byte) (Attributes, error) {
	path := string(native)

	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		// A dangling symlink still has attributes of its own.
		if lerr := unix.Lstat(path, &st); lerr != nil {
			return InvalidAttributes, &os.PathError{Op: "stat", Path: path, Err: err}
		}
	}

	var attrs Attributes
	if st.Mode&unix.S_IFMT == unix.S_IFDIR {
		attrs |= AttrDirectory
	}
	if st.Mode&0o222 == 0 {
		attrs |= AttrReadOnly
	}
	var lst unix.Stat_t
	if err := unix.Lstat(path, &lst); err == nil && lst.Mode&unix.S_IFMT == unix.S_IFLNK {
		attrs |= AttrReparsePoint
	}
	if base := filepath.Base(path); strings.HasPrefix(base, ".") && base != "." && base != ".." {
		attrs |= AttrHidden
	}
	if attrs == 0 {
		attrs = AttrNormal
	}
	return attrs, nil
}

// hostSetFileAttributes maps the read-only bit onto permission bits. The
// remaining bits have no Unix equivalent and pass through.
func hostSetFileAttributes(native []byte, attrs Attributes) error {
	path := string(native)
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	mode := readOnlyMode(info.Mode(), attrs&AttrReadOnly != 0)
	if mode == info.Mode().Perm() {
		return nil
	}
	return Chmod(path, mode)
}

func hostMkdir(native []byte) error {
	path := string(native)
	if err := unix.Mkdir(path, 0o755); err != nil {
		return &os.PathError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

func hostGetwd() ([]byte, error) {
	wd, err := unix.Getwd()
	if err != nil {
		return nil, err
	}
	return []byte(wd), nil
}

func hostChdir(native []byte) error {
	path := string(native)
	if err := unix.Chdir(path); err != nil {
		return &os.PathError{Op: "chdir", Path: path, Err: err}
	}
	return nil
}

func hostExecutable() ([]byte, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return []byte(exe), nil
}
