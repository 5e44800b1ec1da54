package notify

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer answers every question with a fixed response.
type fakeRenderer struct {
	resp Response
	err  error
	got  []Request
}

func (f *fakeRenderer) Show(req Request) (Response, error) {
	f.got = append(f.got, req)
	return f.resp, f.err
}

func TestMapResponse(t *testing.T) {
	tests := []struct {
		raw  Response
		want Result
	}{
		{RespOK, Yes},
		{RespYes, Yes},
		{RespNo, No},
		{RespCancel, Cancel},
		{RespAbort, Abort},
		{RespRetry, Retry},
		{RespIgnore, Ignore},
		{RespNone, None},
		{Response(42), None},
		{Response(-1), None},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapResponse(tt.raw), "raw %d", tt.raw)
	}
}

func TestAskYesNoCancel(t *testing.T) {
	fake := &fakeRenderer{resp: RespYes}
	n := New(WithRenderer(fake))

	got := n.Ask("Save changes?", "Editor", YesNoCancel)
	assert.Equal(t, Yes, got)
	require.Len(t, fake.got, 1)
	assert.Equal(t, Request{Message: "Save changes?", Caption: "Editor", Buttons: YesNoCancel}, fake.got[0])
}

func TestAskUnrecognizedResponse(t *testing.T) {
	n := New(WithRenderer(&fakeRenderer{resp: Response(99)}))
	assert.Equal(t, None, n.Ask("?", "", YesNoCancel))
}

func TestAskRendererErrorIsNone(t *testing.T) {
	var logs bytes.Buffer
	n := New(
		WithRenderer(&fakeRenderer{err: errors.New("no display")}),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)

	assert.Equal(t, None, n.Ask("?", "cap", Info))
	assert.Contains(t, logs.String(), "no display")
}

func TestButtons(t *testing.T) {
	tests := []struct {
		set        ButtonSet
		labels     []string
		defaultIdx int
	}{
		{Info, []string{"OK"}, 0},
		{Error, []string{"OK"}, 0},
		{YesCancel, []string{"OK", "Cancel"}, 0},
		{YesNoCancel, []string{"Yes", "No", "Cancel"}, 0},
		{AbortRetryIgnore, []string{"Abort", "Retry", "Ignore"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.set.String(), func(t *testing.T) {
			buttons, def := Buttons(tt.set)
			labels := make([]string, len(buttons))
			for i, b := range buttons {
				labels[i] = b.Label
			}
			assert.Equal(t, tt.labels, labels)
			assert.Equal(t, tt.defaultIdx, def)
		})
	}
}

func TestParseButtonSet(t *testing.T) {
	for set, name := range buttonSetNames {
		got, err := ParseButtonSet(name)
		require.NoError(t, err)
		assert.Equal(t, set, got)
	}

	got, err := ParseButtonSet("Yes-No_Cancel")
	require.NoError(t, err)
	assert.Equal(t, YesNoCancel, got)

	_, err = ParseButtonSet("maybe")
	assert.Error(t, err)
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "retry", Retry.String())
	assert.Equal(t, "none", Result(77).String())
}

func TestNewBackend(t *testing.T) {
	for _, name := range []string{"auto", "terminal", "zenity", "osascript"} {
		r, err := NewBackend(name)
		require.NoError(t, err, name)
		assert.NotNil(t, r, name)
	}

	_, err := NewBackend("carrier-pigeon")
	assert.Error(t, err)
}
