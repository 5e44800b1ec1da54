package notify

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// runFunc executes a dialog helper and returns its stdout, stderr and exit
// code. A non-nil error means the helper could not be run at all.
type runFunc func(name string, args ...string) (stdout, stderr []byte, code int, err error)

func execRun(name string, args ...string) ([]byte, []byte, int, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), nil
	}
	if err != nil {
		return nil, nil, -1, err
	}
	return stdout.Bytes(), stderr.Bytes(), 0, nil
}

// CommandRenderer shows questions through an external dialog helper such as
// zenity or osascript.
type CommandRenderer struct {
	name  string
	args  func(req Request) []string
	parse func(req Request, stdout, stderr []byte, code int) Response
	run   runFunc
}

// Name returns the helper binary name.
func (c *CommandRenderer) Name() string { return c.name }

// Available reports whether the helper binary is on PATH.
func (c *CommandRenderer) Available() bool {
	_, err := exec.LookPath(c.name)
	return err == nil
}

// Show runs the helper and parses its answer.
func (c *CommandRenderer) Show(req Request) (Response, error) {
	stdout, stderr, code, err := c.run(c.name, c.args(req)...)
	if err != nil {
		return RespNone, fmt.Errorf("running %s: %w", c.name, err)
	}
	return c.parse(req, stdout, stderr, code), nil
}

// Zenity returns a renderer backed by the zenity dialog tool.
func Zenity() *CommandRenderer {
	return &CommandRenderer{
		name:  "zenity",
		args:  zenityArgs,
		parse: zenityParse,
		run:   execRun,
	}
}

func zenityArgs(req Request) []string {
	base := []string{"--title", req.Caption, "--text", req.Message}
	switch req.Buttons {
	case Info:
		return append([]string{"--info"}, base...)
	case Error:
		return append([]string{"--error"}, base...)
	}

	// --switch drops the stock OK/Cancel buttons; the clicked extra button's
	// label is printed on stdout.
	args := append([]string{"--question", "--switch"}, base...)
	buttons, _ := Buttons(req.Buttons)
	for _, b := range buttons {
		args = append(args, "--extra-button", b.Label)
	}
	return args
}

func zenityParse(req Request, stdout, _ []byte, code int) Response {
	switch req.Buttons {
	case Info, Error:
		if code == 0 {
			return RespOK
		}
		return RespNone
	}
	return responseForLabel(req.Buttons, string(stdout))
}

// OSAScript returns a renderer backed by AppleScript's display dialog.
func OSAScript() *CommandRenderer {
	return &CommandRenderer{
		name:  "osascript",
		args:  osascriptArgs,
		parse: osascriptParse,
		run:   execRun,
	}
}

func osascriptArgs(req Request) []string {
	buttons, def := Buttons(req.Buttons)
	labels := make([]string, len(buttons))
	for i, b := range buttons {
		labels[i] = appleString(b.Label)
	}

	script := fmt.Sprintf("display dialog %s with title %s buttons {%s} default button %d",
		appleString(req.Message), appleString(req.Caption), strings.Join(labels, ", "), def+1)
	if req.Buttons == Error || req.Buttons == AbortRetryIgnore {
		script += " with icon caution"
	}
	return []string{"-e", script}
}

// osascriptParse reads "button returned:<label>". A button named Cancel
// makes osascript fail with "User canceled. (-128)".
func osascriptParse(req Request, stdout, stderr []byte, code int) Response {
	if code != 0 {
		if bytes.Contains(stderr, []byte("-128")) {
			return RespCancel
		}
		return RespNone
	}
	_, label, ok := strings.Cut(strings.TrimSpace(string(stdout)), "button returned:")
	if !ok {
		return RespNone
	}
	// Newer releases append ", gave up:false" style fields.
	label, _, _ = strings.Cut(label, ",")
	return responseForLabel(req.Buttons, label)
}

func appleString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
