// Package logging provides a log/slog-backed worker observer.
package logging

import (
	"log/slog"
	"time"
)

// Observer logs worker lifecycle events. Start/finish/join events are
// logged at Debug; panics and detaches at Warn.
type Observer struct {
	l *slog.Logger
}

// New returns an Observer writing to l, or to slog.Default() when l is
// nil.
func New(l *slog.Logger) *Observer {
	if l == nil {
		l = slog.Default()
	}
	return &Observer{l: l}
}

func (o *Observer) WorkerStarted(name string) {
	o.l.Debug("worker started", "worker", name)
}

func (o *Observer) WorkerFinished(name string, dur time.Duration, panicked bool) {
	if panicked {
		o.l.Warn("worker panicked", "worker", name, "duration", dur)
		return
	}
	o.l.Debug("worker finished", "worker", name, "duration", dur)
}

func (o *Observer) WorkerJoined(name string, wait time.Duration) {
	o.l.Debug("worker joined", "worker", name, "wait", wait)
}

func (o *Observer) WorkerDetached(name string) {
	o.l.Warn("worker detached", "worker", name)
}
