// Package prom exports worker lifecycle metrics through Prometheus.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer implements worker.Observer on top of client_golang
// collectors. Metrics are aggregate across all observed handles.
type Observer struct {
	started  prometheus.Counter
	finished prometheus.Counter
	panics   prometheus.Counter
	joined   prometheus.Counter
	detached prometheus.Counter
	active   prometheus.Gauge
	workDur  prometheus.Histogram
	joinWait prometheus.Histogram
}

// New builds an Observer and registers its collectors with reg.
// Registration errors (e.g. a duplicate registration) are returned
// as-is.
func New(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "guard",
			Name:      "workers_started_total",
			Help:      "Workers launched.",
		}),
		finished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "guard",
			Name:      "workers_finished_total",
			Help:      "Workers whose work function returned.",
		}),
		panics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "guard",
			Name:      "worker_panics_total",
			Help:      "Workers that terminated by panicking.",
		}),
		joined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "guard",
			Name:      "workers_joined_total",
			Help:      "Handles joined.",
		}),
		detached: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "guard",
			Name:      "workers_detached_total",
			Help:      "Handles detached.",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "guard",
			Name:      "workers_active",
			Help:      "Workers currently executing.",
		}),
		workDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "guard",
			Name:      "worker_duration_seconds",
			Help:      "Wall time of the work function.",
			Buckets:   prometheus.DefBuckets,
		}),
		joinWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "guard",
			Name:      "join_wait_seconds",
			Help:      "Time the joining side spent blocked in Join.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	for _, c := range []prometheus.Collector{
		o.started, o.finished, o.panics, o.joined, o.detached,
		o.active, o.workDur, o.joinWait,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *Observer) WorkerStarted(_ string) {
	o.started.Inc()
	o.active.Inc()
}

func (o *Observer) WorkerFinished(_ string, dur time.Duration, panicked bool) {
	o.active.Dec()
	o.finished.Inc()
	if panicked {
		o.panics.Inc()
	}
	o.workDur.Observe(dur.Seconds())
}

func (o *Observer) WorkerJoined(_ string, wait time.Duration) {
	o.joined.Inc()
	o.joinWait.Observe(wait.Seconds())
}

func (o *Observer) WorkerDetached(_ string) {
	o.detached.Inc()
}
