// Package fatal terminates the process with a formatted message when
// continuing would be unsafe, such as tearing down a lock that is still held
// or failing to resolve the executable's own location.
package fatal
