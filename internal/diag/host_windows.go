//go:build windows

package diag

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/sys/windows"

	"github.com/agentx-labs/hostpal/internal/pathenc"
)

const (
	codeOverflow = Code(windows.ERROR_INSUFFICIENT_BUFFER)
	codeInvalid  = Code(windows.ERROR_INVALID_NAME)
	codeGeneric  = Code(windows.ERROR_GEN_FAILURE)
)

func hostMessage(code Code) []byte {
	buf := make([]uint16, 1024)
	n, err := windows.FormatMessage(
		windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
		0, uint32(code), 0, buf, nil)
	if err != nil || n == 0 {
		// Errno text is ASCII, so the conversion only fails on a broken
		// bridge; fall back to the bare code.
		native, convErr := pathenc.UTF16.ToNative(windows.Errno(code).Error())
		if convErr != nil {
			native = pathenc.UTF16ToBytes(utf16.Encode([]rune(fmt.Sprintf("error %d", uint32(code)))))
		}
		return native
	}
	msg := buf[:n]
	// FormatMessage terminates system messages with ".\r\n".
	for len(msg) > 0 && (msg[len(msg)-1] == '\r' || msg[len(msg)-1] == '\n') {
		msg = msg[:len(msg)-1]
	}
	return pathenc.UTF16ToBytes(msg)
}
