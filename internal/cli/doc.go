// Package cli defines the Cobra command tree for the hostpal CLI. Each file
// in this package builds one top-level command (dir, cwd, attr, ask, etc.)
// that the root command mounts. Command implementations delegate to the
// platform, diag and notify packages and only handle flag parsing, I/O
// formatting and exit status.
package cli
