package diag

import (
	"bytes"

	"github.com/agentx-labs/hostpal/internal/mutex"
	"github.com/agentx-labs/hostpal/internal/pathenc"
)

// DefaultBufferSize is the size of the process-wide scratch buffer.
const DefaultBufferSize = 2048

// Renderer formats host messages into a single scratch buffer.
type Renderer struct {
	lock *mutex.Handle
	buf  []byte
}

// NewRenderer returns a Renderer with a scratch buffer of size bytes.
func NewRenderer(size int) *Renderer {
	return &Renderer{
		lock: mutex.New(),
		buf:  make([]byte, size),
	}
}

// Render formats code into the scratch buffer and returns a view of the
// message. It returns nil for code zero or when the host has no message that
// fits. The view is overwritten by the next Render on r.
func (r *Renderer) Render(code Code) []byte {
	if code == 0 {
		return nil
	}
	o := mutex.NewOwner()
	r.lock.Lock(o)
	defer r.lock.Unlock(o)

	n, err := RenderInto(r.buf, code)
	if err != nil || n == 0 {
		return nil
	}
	return r.buf[:n:n]
}

// Close releases the renderer's lock. Closing while a render is in flight
// aborts the process.
func (r *Renderer) Close() {
	r.lock.Destroy()
}

// RenderInto writes the message for code into dst as a NUL-terminated string
// and returns its length. It shares no state with other calls.
func RenderInto(dst []byte, code Code) (int, error) {
	if code == 0 {
		if len(dst) > 0 {
			dst[0] = 0
		}
		return 0, nil
	}
	return pathenc.Host.FromNative(dst, hostMessage(code))
}

var scratch = NewRenderer(DefaultBufferSize)

// RenderErrorMessage renders code into the process-wide scratch buffer.
func RenderErrorMessage(code Code) []byte {
	return scratch.Render(code)
}

// LastErrorMessage renders the last recorded error.
func LastErrorMessage() []byte {
	return scratch.Render(LastError())
}

// Message returns a copy of the message for code, or "" for code zero.
func Message(code Code) string {
	return string(bytes.Clone(scratch.Render(code)))
}
