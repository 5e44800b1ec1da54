//go:build windows

package notify

import (
	"golang.org/x/sys/windows"
)

// MessageBox flags from winuser.h.
const (
	mbOK               = 0x00000000
	mbOKCancel         = 0x00000001
	mbAbortRetryIgnore = 0x00000002
	mbYesNoCancel      = 0x00000003
	mbIconWarning      = 0x00000030
	mbDefButton2       = 0x00000100
	mbSystemModal      = 0x00001000
)

// MessageBoxRenderer shows questions with MessageBoxW.
type MessageBoxRenderer struct{}

func messageBoxType(set ButtonSet) uint32 {
	switch set {
	case YesCancel:
		return mbOKCancel
	case YesNoCancel:
		return mbYesNoCancel
	case Error:
		return mbOK | mbIconWarning | mbSystemModal
	case AbortRetryIgnore:
		return mbAbortRetryIgnore | mbIconWarning | mbDefButton2 | mbSystemModal
	default:
		return mbOK
	}
}

// Show blocks on a system message box.
func (MessageBoxRenderer) Show(req Request) (Response, error) {
	text, err := windows.UTF16PtrFromString(req.Message)
	if err != nil {
		return RespNone, err
	}
	caption, err := windows.UTF16PtrFromString(req.Caption)
	if err != nil {
		return RespNone, err
	}
	ret, err := windows.MessageBox(0, text, caption, messageBoxType(req.Buttons))
	if ret == 0 {
		return RespNone, err
	}
	return Response(ret), nil
}

// DefaultRenderer returns the host dialog renderer.
func DefaultRenderer() Renderer {
	return MessageBoxRenderer{}
}

func messageBox() (Renderer, error) {
	return MessageBoxRenderer{}, nil
}
