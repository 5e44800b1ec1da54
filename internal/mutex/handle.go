package mutex

// Handle is a heap-owned recursive lock. It is created by New and must be
// released with Destroy once no owner holds it.
type Handle struct {
	m *Mutex
}

// New allocates and initializes a Handle.
func New() *Handle {
	m := new(Mutex)
	m.Init()
	return &Handle{m: m}
}

// Destroy finalizes the lock and detaches its storage. Any use of h after
// Destroy panics with a nil dereference rather than touching stale state.
func (h *Handle) Destroy() {
	h.m.finalize()
	h.m = nil
}

// Lock blocks until o owns the lock; recursive for the same owner.
func (h *Handle) Lock(o Owner) { h.m.Lock(o) }

// TryLock acquires the lock for o without blocking.
func (h *Handle) TryLock(o Owner) bool { return h.m.TryLock(o) }

// Unlock releases one level of recursion held by o.
func (h *Handle) Unlock(o Owner) { h.m.Unlock(o) }

// Depth returns the current recursion depth.
func (h *Handle) Depth() int { return h.m.Depth() }

// Locked reports whether any owner holds the lock.
func (h *Handle) Locked() bool { return h.m.Locked() }
