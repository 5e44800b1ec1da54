package mutex

import (
	"sync/atomic"

	"github.com/agentx-labs/hostpal/internal/fatal"
)

// Owner identifies the logical holder of a Mutex. The zero Owner never owns a
// lock.
type Owner uint64

var lastOwner atomic.Uint64

// NewOwner returns a fresh, process-unique Owner.
func NewOwner() Owner {
	return Owner(lastOwner.Add(1))
}

// Mutex is a recursive lock that can live in caller-owned storage. It must be
// initialized with Init before use and torn down with Finalize. A Mutex must
// not be copied after Init.
type Mutex struct {
	sem   chan struct{}
	owner atomic.Uint64
	depth atomic.Int32
}

// Init initializes m in place. Calling Init on a Mutex that is already
// initialized and not yet finalized is a programming error.
func (m *Mutex) Init() {
	if m.sem != nil {
		fatal.Abortf("critical section initialized twice")
	}
	m.sem = make(chan struct{}, 1)
	m.owner.Store(0)
	m.depth.Store(0)
}

// Finalize tears down m without releasing its storage. The storage may be
// initialized again with Init.
func (m *Mutex) Finalize() {
	m.finalize()
}

func (m *Mutex) finalize() {
	if m.Locked() {
		fatal.Abortf("critical section hanging lock (depth %d)", m.depth.Load())
	}
	m.sem = nil
}

// Lock blocks until o owns m. If o already owns m the recursion depth is
// incremented instead.
func (m *Mutex) Lock(o Owner) {
	if m.reenter(o) {
		return
	}
	m.sem <- struct{}{}
	m.acquired(o)
}

// TryLock acquires m for o without blocking and reports whether it succeeded.
func (m *Mutex) TryLock(o Owner) bool {
	if m.reenter(o) {
		return true
	}
	select {
	case m.sem <- struct{}{}:
		m.acquired(o)
		return true
	default:
		return false
	}
}

// Unlock releases one level of recursion held by o. The outermost Unlock
// makes m available to other owners. Unlocking a Mutex that o does not hold
// is undefined.
func (m *Mutex) Unlock(o Owner) {
	d := m.depth.Add(-1)
	if d > 0 {
		return
	}
	if d < 0 {
		m.depth.Store(0)
		panic("mutex: unlock of unlocked mutex")
	}
	m.owner.Store(0)
	<-m.sem
}

// Depth returns the current recursion depth; zero means unlocked.
func (m *Mutex) Depth() int {
	return int(m.depth.Load())
}

// Locked reports whether any owner holds m.
func (m *Mutex) Locked() bool {
	return m.depth.Load() > 0
}

func (m *Mutex) reenter(o Owner) bool {
	if o != 0 && Owner(m.owner.Load()) == o {
		m.depth.Add(1)
		return true
	}
	return false
}

func (m *Mutex) acquired(o Owner) {
	m.owner.Store(uint64(o))
	m.depth.Store(1)
}
