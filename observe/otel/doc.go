// Package otel provides an OpenTelemetry observer plugin for the guard
// library. It emits span events (launch, join, detach, panic) with low
// overhead.
package otel
