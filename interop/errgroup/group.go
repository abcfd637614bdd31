// Package errgroup bridges worker handles into golang.org/x/sync/errgroup
// pipelines. A Group behaves like errgroup.Group but can also assume the
// guard obligation for raw handles, so mixed fallible/fire-and-join work
// shares a single join point (Wait).
package errgroup

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/NetPo4ki/go-guard/worker"
)

// Group wraps errgroup.Group. Every handle passed to Guard or created by
// Launch is joined before Wait returns.
type Group struct {
	g *errgroup.Group
}

// WithContext creates a Group bound to ctx. The returned context is
// canceled when any function passed to Go returns a non-nil error.
func WithContext(ctx context.Context) (*Group, context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	return &Group{g: g}, gctx
}

// Go starts a fallible function with plain errgroup semantics.
func (g *Group) Go(f func() error) {
	if f == nil {
		return
	}
	g.g.Go(f)
}

// Guard takes on the borrowing-guard obligation for h: if h is still
// joinable when the group winds down, it is joined before Wait returns.
// The caller may still join or detach h first.
func (g *Group) Guard(h *worker.Handle) {
	guard := worker.NewGuard(h)
	g.g.Go(func() error {
		guard.Close()
		return nil
	})
}

// Launch starts fn as a worker whose join is owned by the group. The
// returned handle is for diagnostics only; the group joins it at Wait,
// and a panic in fn resurfaces from Wait.
func (g *Group) Launch(fn func(), optFns ...worker.Option) *worker.Handle {
	h := worker.Launch(fn, optFns...)
	g.g.Go(func() error {
		h.Join()
		return nil
	})
	return h
}

// Wait blocks until all functions have returned and all guarded handles
// are joined. It returns the first non-nil error from Go.
func (g *Group) Wait() error {
	return g.g.Wait()
}
