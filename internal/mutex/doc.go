// Package mutex provides a recursive mutual-exclusion lock with two ownership
// modes: a heap-owned Handle created by New and released by Destroy, and an
// in-place Mutex living in caller-owned storage, initialized by Init and torn
// down by Finalize.
//
// Recursion is tracked per Owner. Go does not expose goroutine identity, so
// callers obtain an Owner token with NewOwner and pass it to every Lock,
// TryLock and Unlock call made on behalf of the same logical owner.
//
// Tearing down a lock that is still held is a programming error: both Destroy
// and Finalize abort the process through package fatal.
package mutex
