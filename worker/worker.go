package worker

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"
)

// State is a handle's position in its lifecycle.
type State int32

const (
	Unstarted State = iota
	Running
	Joined
	Detached
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Running:
		return "running"
	case Joined:
		return "joined"
	case Detached:
		return "detached"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

type Option func(*Options)

type Options struct {
	Name     string
	Observer Observer
}

func defaultOptions() Options { return Options{} }

// WithName labels the handle for observers and diagnostics.
func WithName(name string) Option { return func(o *Options) { o.Name = name } }

func WithObserver(obs Observer) Option { return func(o *Options) { o.Observer = obs } }

// Observer receives handle lifecycle events. Implementations must be
// safe for concurrent use.
type Observer interface {
	WorkerStarted(name string)
	WorkerFinished(name string, dur time.Duration, panicked bool)
	WorkerJoined(name string, wait time.Duration)
	WorkerDetached(name string)
}

// Tee fans lifecycle events out to every observer in order. Nil entries
// are skipped.
func Tee(obs ...Observer) Observer { return teeObserver(obs) }

type teeObserver []Observer

func (t teeObserver) WorkerStarted(name string) {
	for _, o := range t {
		if o != nil {
			o.WorkerStarted(name)
		}
	}
}

func (t teeObserver) WorkerFinished(name string, dur time.Duration, panicked bool) {
	for _, o := range t {
		if o != nil {
			o.WorkerFinished(name, dur, panicked)
		}
	}
}

func (t teeObserver) WorkerJoined(name string, wait time.Duration) {
	for _, o := range t {
		if o != nil {
			o.WorkerJoined(name, wait)
		}
	}
}

func (t teeObserver) WorkerDetached(name string) {
	for _, o := range t {
		if o != nil {
			o.WorkerDetached(name)
		}
	}
}

// PanicError carries a panic captured from a worker, re-raised when the
// handle is joined.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("worker panicked: %v\n%s", e.Value, e.Stack)
}

// Handle represents one independently scheduled unit of concurrent work.
//
// The zero value is an unstarted handle: not joinable, and joining it
// panics. Live handles come from Launch. A handle is joinable iff it was
// launched and has not yet been joined or detached; the work finishing
// does not clear joinability, so a Join after completion returns
// immediately.
type Handle struct {
	name  string
	obs   Observer
	state atomic.Int32
	done  chan struct{}
	pval  atomic.Pointer[PanicError]
}

// Launch runs fn on its own goroutine and returns a joinable handle for
// it. The caller is responsible for eventually joining or detaching the
// handle; Guard and Scoped automate that.
func Launch(fn func(), optFns ...Option) *Handle {
	opts := defaultOptions()
	for _, f := range optFns {
		f(&opts)
	}
	h := &Handle{name: opts.Name, obs: opts.Observer, done: make(chan struct{})}
	h.state.Store(int32(Running))
	go h.run(fn)
	return h
}

func (h *Handle) run(fn func()) {
	if h.obs != nil {
		h.obs.WorkerStarted(h.name)
	}
	start := time.Now()
	defer func() {
		panicked := false
		if r := recover(); r != nil {
			panicked = true
			h.pval.Store(&PanicError{Value: r, Stack: debug.Stack()})
		}
		if h.obs != nil {
			h.obs.WorkerFinished(h.name, time.Since(start), panicked)
		}
		close(h.done)
	}()
	fn()
}

// Name returns the label given at launch, or "".
func (h *Handle) Name() string { return h.name }

// State reports the current lifecycle state.
func (h *Handle) State() State {
	if h == nil {
		return Unstarted
	}
	return State(h.state.Load())
}

// Joinable reports whether the handle represents launched work that has
// not yet been joined or detached.
func (h *Handle) Joinable() bool { return h.State() == Running }

// Done returns a channel closed when the work function has returned.
// Unstarted handles return nil.
func (h *Handle) Done() <-chan struct{} {
	if h == nil {
		return nil
	}
	return h.done
}

// Join blocks until the work function returns, then marks the handle
// joined. All effects of the worker are visible to the caller once Join
// returns. If the worker panicked, Join re-raises the captured panic as
// a *PanicError.
//
// Joining a non-joinable handle is a programming error and panics. The
// handle transitions to Joined before the wait, so a concurrent second
// Join or Detach fails fast instead of racing.
func (h *Handle) Join() {
	if h == nil || !h.state.CompareAndSwap(int32(Running), int32(Joined)) {
		panic(fmt.Sprintf("worker: Join on %v handle", h.State()))
	}
	start := time.Now()
	<-h.done
	if h.obs != nil {
		h.obs.WorkerJoined(h.name, time.Since(start))
	}
	if pe := h.pval.Load(); pe != nil {
		panic(pe)
	}
}

// Detach abandons the work: the handle stops being joinable and the
// goroutine runs to completion unobserved. A panic captured from a
// detached worker is discarded. Detaching a non-joinable handle panics.
func (h *Handle) Detach() {
	if h == nil || !h.state.CompareAndSwap(int32(Running), int32(Detached)) {
		panic(fmt.Sprintf("worker: Detach on %v handle", h.State()))
	}
	if h.obs != nil {
		h.obs.WorkerDetached(h.name)
	}
}
