// Package pathenc converts paths and display strings between the canonical
// UTF-8 encoding used by callers and the host's native encoding (UTF-16LE on
// Windows, validated UTF-8 elsewhere).
//
// Every conversion into a caller buffer measures the required size first and
// only writes when the result, including its NUL terminator, fits. An
// overflow is reported as an *OverflowError and leaves the buffer empty.
package pathenc
