//go:build !windows

package diag

import "golang.org/x/sys/unix"

const (
	codeOverflow = Code(unix.ENAMETOOLONG)
	codeInvalid  = Code(unix.EINVAL)
	codeGeneric  = Code(unix.EIO)
)

func hostMessage(code Code) []byte {
	return []byte(unix.Errno(code).Error())
}
