package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalRendererSelects(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(strings.NewReader("2\n"), &out)

	resp, err := r.Show(Request{Message: "Save changes?", Caption: "Editor", Buttons: YesNoCancel})
	require.NoError(t, err)
	assert.Equal(t, RespNo, resp)

	assert.Contains(t, out.String(), "Editor")
	assert.Contains(t, out.String(), "  1) Yes")
	assert.Contains(t, out.String(), "  3) Cancel")
}

func TestTerminalRendererDefault(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(strings.NewReader("\n"), &out)

	resp, err := r.Show(Request{Message: "Disk error", Buttons: AbortRetryIgnore})
	require.NoError(t, err)
	assert.Equal(t, RespRetry, resp)
	assert.Contains(t, out.String(), "(default 2)")
}

func TestTerminalRendererLastLineWithoutNewline(t *testing.T) {
	r := NewTerminalRenderer(strings.NewReader("1"), &bytes.Buffer{})

	resp, err := r.Show(Request{Message: "Continue?", Buttons: YesCancel})
	require.NoError(t, err)
	assert.Equal(t, RespOK, resp)
}

func TestTerminalRendererInvalid(t *testing.T) {
	tests := []string{"9\n", "yes\n", ""}

	for _, input := range tests {
		r := NewTerminalRenderer(strings.NewReader(input), &bytes.Buffer{})
		resp, err := r.Show(Request{Message: "?", Buttons: YesNoCancel})
		assert.Error(t, err, "input %q", input)
		assert.Equal(t, RespNone, resp)
	}
}

func TestTerminalRendererThroughNotifier(t *testing.T) {
	n := New(WithRenderer(NewTerminalRenderer(strings.NewReader("1\n"), &bytes.Buffer{})))
	assert.Equal(t, Yes, n.Ask("Proceed?", "Setup", YesNoCancel))
}
