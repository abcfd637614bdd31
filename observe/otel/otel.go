package otel

import "time"

// Nop is a no-op implementation of the worker.Observer interface.
// It serves as a placeholder for an OpenTelemetry-backed observer
// without adding dependencies.
type Nop struct{}

// NewNop returns a no-op observer.
func NewNop() *Nop { return &Nop{} }

func (*Nop) WorkerStarted(string)                       {}
func (*Nop) WorkerFinished(string, time.Duration, bool) {}
func (*Nop) WorkerJoined(string, time.Duration)         {}
func (*Nop) WorkerDetached(string)                      {}
