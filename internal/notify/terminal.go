package notify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TerminalRenderer asks the question as a numbered menu on a text stream.
type TerminalRenderer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalRenderer reads answers from r and writes prompts to w.
func NewTerminalRenderer(r io.Reader, w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{in: bufio.NewReader(r), out: w}
}

// Show prints the caption, message and numbered buttons, then reads a
// choice. An empty line picks the default button.
func (t *TerminalRenderer) Show(req Request) (Response, error) {
	buttons, def := Buttons(req.Buttons)

	if req.Caption != "" {
		fmt.Fprintf(t.out, "\n%s\n", req.Caption)
	}
	fmt.Fprintf(t.out, "%s\n", req.Message)
	for i, b := range buttons {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, b.Label)
	}
	fmt.Fprintf(t.out, "Enter number [1-%d] (default %d): ", len(buttons), def+1)

	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return RespNone, fmt.Errorf("reading selection: %w", err)
	}

	choice := strings.TrimSpace(line)
	if choice == "" {
		return buttons[def].Response, nil
	}
	num, err := strconv.Atoi(choice)
	if err != nil || num < 1 || num > len(buttons) {
		return RespNone, fmt.Errorf("invalid selection %q: choose 1-%d", choice, len(buttons))
	}
	return buttons[num-1].Response, nil
}
