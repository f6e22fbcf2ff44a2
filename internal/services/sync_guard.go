package services

import (
	"sync"
	"sync/atomic"
)

// guardRegistry hands out the per-user in-progress flag shared by the
// per-user coordinators and the background scheduler. The flag is a real
// compare-and-set, not a check-then-set: two schedulers observing the same
// user at the same instant cannot both win.
type guardRegistry struct {
	mu     sync.Mutex
	guards map[string]*atomic.Bool
}

func newGuardRegistry() *guardRegistry {
	return &guardRegistry{
		guards: make(map[string]*atomic.Bool),
	}
}

func (r *guardRegistry) guard(userID string) *atomic.Bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.guards[userID]
	if !ok {
		g = &atomic.Bool{}
		r.guards[userID] = g
	}
	return g
}

// acquire wins the user's guard or reports that a pass is already running.
// The returned release function must be called exactly once.
func (r *guardRegistry) acquire(userID string) (release func(), ok bool) {
	g := r.guard(userID)
	if !g.CompareAndSwap(false, true) {
		return nil, false
	}
	return func() { g.Store(false) }, true
}

func (r *guardRegistry) inProgress(userID string) bool {
	return r.guard(userID).Load()
}
