//go:build windows

package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentx-labs/hostpal/internal/pathenc"
)

func TestHostMessageUnknownCodeFallsBack(t *testing.T) {
	native := hostMessage(Code(0x7FFFFFF0))
	require.NotEmpty(t, native)
	assert.Zero(t, len(native)%2, "UTF-16 output has whole code units")

	n, err := pathenc.UTF16.Measure(native)
	require.NoError(t, err)
	assert.Greater(t, n, 1)
}

func TestHostMessageTrimsLineEnd(t *testing.T) {
	units := pathenc.BytesToUTF16(hostMessage(Code(2)))
	require.NotEmpty(t, units)
	last := units[len(units)-1]
	assert.NotEqual(t, uint16('\n'), last)
	assert.NotEqual(t, uint16('\r'), last)
}
