package fatal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortfCallsHandler(t *testing.T) {
	var got string
	restore := SetHandler(func(msg string) { got = msg })
	defer restore()

	require.PanicsWithValue(t, Abort{Message: "bad state: 3"}, func() {
		Abortf("bad state: %d", 3)
	})
	assert.Equal(t, "bad state: 3", got)
}

func TestSetHandlerRestore(t *testing.T) {
	calls := 0
	restoreOuter := SetHandler(func(string) { calls++ })
	restoreInner := SetHandler(func(string) { calls += 10 })

	require.Panics(t, func() { Abortf("inner") })
	restoreInner()
	require.Panics(t, func() { Abortf("outer") })
	restoreOuter()

	assert.Equal(t, 11, calls)
}
