// Package platform is the OS-agnostic surface for path and file-attribute
// queries: directory existence and single-level creation, current and
// executable directory discovery, and attribute get/set. Each operation has
// one host implementation per OS in the host_*.go files.
//
// Inputs are UTF-8 and pass through package pathenc before reaching the
// host. Soft failures return false, InvalidAttributes or an empty buffer and
// record the host error code in package diag. Failing to locate the running
// executable is fatal.
package platform
