package diag

import (
	"errors"
	"syscall"
	"sync/atomic"

	"github.com/agentx-labs/hostpal/internal/pathenc"
)

// Code is a host-assigned error code. Zero means no error.
type Code uint32

var last atomic.Uint32

// LastError returns the code recorded by the most recent failure.
func LastError() Code {
	return Code(last.Load())
}

// ClearError resets the recorded code to zero.
func ClearError() {
	last.Store(0)
}

// SetError records code as the last error.
func SetError(code Code) {
	last.Store(uint32(code))
}

// Record stores the host code carried by err. Errors that wrap a
// syscall.Errno record that errno; encoding failures record the host's
// overflow or invalid-name code; anything else records a generic failure.
// A nil err is ignored.
func Record(err error) {
	if err == nil {
		return
	}
	SetError(CodeOf(err))
}

// CodeOf maps err to the code Record would store.
func CodeOf(err error) Code {
	var errno syscall.Errno
	switch {
	case err == nil:
		return 0
	case errors.As(err, &errno):
		return Code(errno)
	case errors.Is(err, pathenc.ErrOverflow):
		return codeOverflow
	case errors.Is(err, pathenc.ErrInvalid):
		return codeInvalid
	default:
		return codeGeneric
	}
}
