package prom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NetPo4ki/go-guard/worker"
)

func TestObserverCountsLifecycle(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	obs, err := New(reg)
	require.NoError(t, err)

	h1 := worker.Launch(func() {}, worker.WithObserver(obs))
	h2 := worker.Launch(func() {}, worker.WithObserver(obs))
	h1.Join()
	h2.Detach()
	<-h2.Done()

	assert.Equal(t, float64(2), testutil.ToFloat64(obs.started))
	assert.Equal(t, float64(2), testutil.ToFloat64(obs.finished))
	assert.Equal(t, float64(1), testutil.ToFloat64(obs.joined))
	assert.Equal(t, float64(1), testutil.ToFloat64(obs.detached))
	assert.Equal(t, float64(0), testutil.ToFloat64(obs.active))
	assert.Equal(t, float64(0), testutil.ToFloat64(obs.panics))
}

func TestObserverCountsPanics(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	obs, err := New(reg)
	require.NoError(t, err)

	h := worker.Launch(func() { panic("boom") }, worker.WithObserver(obs))
	func() {
		defer func() { _ = recover() }() // Join re-raises the worker's panic
		h.Join()
	}()

	assert.Equal(t, float64(1), testutil.ToFloat64(obs.panics))
	assert.Equal(t, float64(1), testutil.ToFloat64(obs.joined))
}

func TestNewRejectsDuplicateRegistration(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	assert.Error(t, err)
}
