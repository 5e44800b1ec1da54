//go:build windows

package platform

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/agentx-labs/hostpal/internal/pathenc"
)

// maxNativePath is the size of the module-name buffer in UTF-16 units.
const maxNativePath = 512

var separators = []uint16{'\\', '/'}

// wide turns native UTF-16LE bytes into a NUL-terminated UTF-16 string.
func wide(native []byte) *uint16 {
	units := append(pathenc.BytesToUTF16(native), 0)
	return &units[0]
}

func hostFileAttributes(native []byte) (Attributes, error) {
	var data windows.Win32FileAttributeData
	err := windows.GetFileAttributesEx(wide(native), windows.GetFileExInfoStandard, (*byte)(unsafe.Pointer(&data)))
	if err != nil {
		return InvalidAttributes, &os.PathError{Op: "GetFileAttributesEx", Path: display(native), Err: err}
	}
	return Attributes(data.FileAttributes), nil
}

func hostSetFileAttributes(native []byte, attrs Attributes) error {
	if err := windows.SetFileAttributes(wide(native), uint32(attrs)); err != nil {
		return &os.PathError{Op: "SetFileAttributes", Path: display(native), Err: err}
	}
	return nil
}

func hostMkdir(native []byte) error {
	if err := windows.CreateDirectory(wide(native), nil); err != nil {
		return &os.PathError{Op: "CreateDirectory", Path: display(native), Err: err}
	}
	return nil
}

// hostGetwd asks for the required length first, then fetches the directory.
// A length mismatch means the directory changed in between and is a failure.
func hostGetwd() ([]byte, error) {
	required, err := windows.GetCurrentDirectory(0, nil)
	if err != nil {
		return nil, err
	}
	if required == 0 {
		return nil, windows.ERROR_GEN_FAILURE
	}
	buf := make([]uint16, required)
	n, err := windows.GetCurrentDirectory(required, &buf[0])
	if err != nil {
		return nil, err
	}
	if n != required-1 {
		return nil, windows.ERROR_INSUFFICIENT_BUFFER
	}
	return pathenc.UTF16ToBytes(buf[:n]), nil
}

func hostChdir(native []byte) error {
	if err := windows.SetCurrentDirectory(wide(native)); err != nil {
		return &os.PathError{Op: "SetCurrentDirectory", Path: display(native), Err: err}
	}
	return nil
}

// hostExecutable returns the module file name. A result filling the whole
// buffer is returned as-is so the caller can report the truncation.
func hostExecutable() ([]byte, error) {
	buf := make([]uint16, maxNativePath)
	n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
	if err != nil && err != windows.ERROR_INSUFFICIENT_BUFFER {
		return nil, err
	}
	return pathenc.UTF16ToBytes(buf[:n]), nil
}
