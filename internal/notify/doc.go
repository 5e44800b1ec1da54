// Package notify asks the user a blocking modal question with a small fixed
// set of buttons and maps the host's raw answer onto Result.
//
// The host dialog is a Renderer: MessageBoxW on Windows, osascript on macOS,
// zenity on Linux, and a numbered terminal prompt as a fallback. Renderers
// report raw Response codes; anything unrecognized, and any renderer error,
// becomes None.
package notify
