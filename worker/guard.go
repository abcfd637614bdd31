package worker

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotJoinable reports an owning guard constructed over a handle that
// does not represent launched, unjoined work.
var ErrNotJoinable = errors.New("worker: handle is not joinable")

// noCopy makes `go vet -copylocks` flag copies of the guard types.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Guard is the borrowing lifetime guard: it references a caller-owned
// handle and joins it at disposal if it is still joinable. The caller
// keeps ownership and may join or detach the handle first, in which
// case Close is a no-op. The referenced handle must outlive the guard.
//
// Idiomatic use is a deferred Close right after launch, so the join
// runs on every exit path of the enclosing function:
//
//	h := worker.Launch(task)
//	defer worker.NewGuard(h).Close()
//
// A Guard must not be copied after first use.
type Guard struct {
	noCopy noCopy
	h      *Handle
	once   sync.Once
}

// NewGuard borrows h. No validation: a nil or unstarted handle is legal
// and makes Close a no-op.
func NewGuard(h *Handle) *Guard { return &Guard{h: h} }

// Close disposes the guard: joins the borrowed handle if it is still
// joinable, otherwise does nothing. Only the first call has any effect.
func (g *Guard) Close() {
	g.once.Do(func() {
		if g.h.Joinable() {
			g.h.Join()
		}
	})
}

// Scoped is the owning lifetime guard: it takes exclusive ownership of
// a handle that must already be joinable, and unconditionally joins it
// at disposal. After construction succeeds no other code may join or
// detach the handle.
//
// A Scoped must not be copied after first use.
type Scoped struct {
	noCopy noCopy
	h      *Handle
	once   sync.Once
}

// NewScoped takes ownership of h. It fails with ErrNotJoinable when h
// does not hold launched, unjoined work; on failure nothing is joined.
func NewScoped(h *Handle) (*Scoped, error) {
	if !h.Joinable() {
		return nil, fmt.Errorf("worker: scoped guard over %v handle: %w", h.State(), ErrNotJoinable)
	}
	return &Scoped{h: h}, nil
}

// Close disposes the guard, joining the owned handle and blocking until
// the work completes. Only the first call has any effect.
func (s *Scoped) Close() {
	s.once.Do(func() { s.h.Join() })
}
