package worker

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Launcher bounds how many of its workers are live at once. Launch
// blocks for a slot before spawning; the slot is released when the work
// function returns, regardless of how the handle is later disposed.
type Launcher struct {
	sem  *semaphore.Weighted
	opts []Option
}

// NewLauncher returns a launcher allowing at most max concurrent
// workers. Options are applied to every handle it launches, before any
// per-launch options.
func NewLauncher(max int64, optFns ...Option) *Launcher {
	return &Launcher{sem: semaphore.NewWeighted(max), opts: optFns}
}

// Launch waits for a free slot, honoring ctx, then launches fn. It
// returns ctx.Err() if the context is done before a slot frees up; no
// worker is started in that case.
func (l *Launcher) Launch(ctx context.Context, fn func(), optFns ...Option) (*Handle, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	all := make([]Option, 0, len(l.opts)+len(optFns))
	all = append(all, l.opts...)
	all = append(all, optFns...)
	h := Launch(func() {
		defer l.sem.Release(1)
		fn()
	}, all...)
	return h, nil
}
