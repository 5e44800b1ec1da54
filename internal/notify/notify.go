package notify

import (
	"fmt"
	"log/slog"
	"strings"
)

// ButtonSet selects the buttons offered by a question.
type ButtonSet int

const (
	Info ButtonSet = iota
	YesCancel
	YesNoCancel
	Error
	AbortRetryIgnore
)

var buttonSetNames = map[ButtonSet]string{
	Info:             "info",
	YesCancel:        "yescancel",
	YesNoCancel:      "yesnocancel",
	Error:            "error",
	AbortRetryIgnore: "abortretryignore",
}

func (s ButtonSet) String() string {
	if n, ok := buttonSetNames[s]; ok {
		return n
	}
	return fmt.Sprintf("ButtonSet(%d)", int(s))
}

// ParseButtonSet accepts the names produced by ButtonSet.String, ignoring
// case, dashes and underscores.
func ParseButtonSet(s string) (ButtonSet, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for set, name := range buttonSetNames {
		if name == key {
			return set, nil
		}
	}
	return Info, fmt.Errorf("unknown button set %q", s)
}

// Result is the user's answer.
type Result int

const (
	None Result = iota
	Yes
	No
	Cancel
	Abort
	Retry
	Ignore
)

func (r Result) String() string {
	switch r {
	case Yes:
		return "yes"
	case No:
		return "no"
	case Cancel:
		return "cancel"
	case Abort:
		return "abort"
	case Retry:
		return "retry"
	case Ignore:
		return "ignore"
	default:
		return "none"
	}
}

// Response is a raw host answer. The values are the Windows dialog IDs, which
// every renderer reports.
type Response int

const (
	RespNone   Response = 0
	RespOK     Response = 1
	RespCancel Response = 2
	RespAbort  Response = 3
	RespRetry  Response = 4
	RespIgnore Response = 5
	RespYes    Response = 6
	RespNo     Response = 7
)

// MapResponse converts a raw response to a Result. OK counts as Yes.
func MapResponse(r Response) Result {
	switch r {
	case RespAbort:
		return Abort
	case RespCancel:
		return Cancel
	case RespIgnore:
		return Ignore
	case RespNo:
		return No
	case RespYes, RespOK:
		return Yes
	case RespRetry:
		return Retry
	default:
		return None
	}
}

// Request describes one question.
type Request struct {
	Message string
	Caption string
	Buttons ButtonSet
}

// Button is one choice offered by a dialog.
type Button struct {
	Label    string
	Response Response
}

// Buttons returns the choices for set in display order and the index of the
// default choice. Unknown sets fall back to Info.
func Buttons(set ButtonSet) ([]Button, int) {
	switch set {
	case YesCancel:
		return []Button{{"OK", RespOK}, {"Cancel", RespCancel}}, 0
	case YesNoCancel:
		return []Button{{"Yes", RespYes}, {"No", RespNo}, {"Cancel", RespCancel}}, 0
	case AbortRetryIgnore:
		return []Button{{"Abort", RespAbort}, {"Retry", RespRetry}, {"Ignore", RespIgnore}}, 1
	default:
		return []Button{{"OK", RespOK}}, 0
	}
}

// responseForLabel finds the response of the button labelled label.
func responseForLabel(set ButtonSet, label string) Response {
	buttons, _ := Buttons(set)
	label = strings.TrimSpace(label)
	for _, b := range buttons {
		if strings.EqualFold(b.Label, label) {
			return b.Response
		}
	}
	return RespNone
}

// Renderer shows a question and blocks until the host reports an answer.
type Renderer interface {
	Show(req Request) (Response, error)
}

// Notifier asks questions through a Renderer.
type Notifier struct {
	renderer Renderer
	logger   *slog.Logger
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithRenderer sets the renderer used to show questions.
func WithRenderer(r Renderer) Option {
	return func(n *Notifier) {
		n.renderer = r
	}
}

// WithLogger sets the logger used to report renderer failures.
func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) {
		n.logger = l
	}
}

// New creates a Notifier. Without WithRenderer it uses DefaultRenderer.
func New(opts ...Option) *Notifier {
	n := &Notifier{}
	for _, opt := range opts {
		opt(n)
	}
	if n.renderer == nil {
		n.renderer = DefaultRenderer()
	}
	if n.logger == nil {
		n.logger = slog.Default()
	}
	return n
}

// Ask shows message and returns the user's answer. Renderer failures yield
// None.
func (n *Notifier) Ask(message, caption string, set ButtonSet) Result {
	resp, err := n.renderer.Show(Request{Message: message, Caption: caption, Buttons: set})
	if err != nil {
		n.logger.Warn("notification failed", "caption", caption, "buttons", set.String(), "err", err)
		return None
	}
	return MapResponse(resp)
}

// Ask uses a Notifier with the default renderer.
func Ask(message, caption string, set ButtonSet) Result {
	return New().Ask(message, caption, set)
}
