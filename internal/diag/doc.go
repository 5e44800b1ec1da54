// Package diag records the host error code of the most recent failing
// platform operation and renders host error codes as human-readable text.
//
// Rendered messages land in a shared scratch buffer guarded by a mutex.Handle.
// The slice returned by RenderErrorMessage aliases that buffer and is only
// valid until the next render; copy it (or use Message) to keep it longer.
package diag
