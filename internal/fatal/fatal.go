package fatal

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Handler receives the formatted message of a fatal abort. The default handler
// logs the message, prints it to stderr and exits with status 1.
type Handler func(msg string)

// Abort is the value Abortf panics with if the installed Handler returns.
type Abort struct {
	Message string
}

func (a Abort) String() string { return a.Message }

var (
	mu      sync.RWMutex
	handler Handler = exit
)

func exit(msg string) {
	slog.Error("fatal error", "msg", msg)
	fmt.Fprintf(os.Stderr, "fatal: %s\n", msg)
	os.Exit(1)
}

// SetHandler installs h and returns a function restoring the previous handler.
// A nil h restores the default.
func SetHandler(h Handler) (restore func()) {
	if h == nil {
		h = exit
	}
	mu.Lock()
	prev := handler
	handler = h
	mu.Unlock()
	return func() {
		mu.Lock()
		handler = prev
		mu.Unlock()
	}
}

// Abortf formats a message and hands it to the current Handler. It never
// returns: if the handler returns, Abortf panics with an Abort value.
func Abortf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	mu.RLock()
	h := handler
	mu.RUnlock()

	h(msg)
	panic(Abort{Message: msg})
}
