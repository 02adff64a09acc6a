// Package telemetry provides the pass-phase telemetry adapters. Telemetry is
// an optional observability hook; the noop implementation is the default and
// every caller must behave identically under it.
package telemetry

import (
	"context"

	"go.trai.ch/pin/internal/core/ports"
)

var _ ports.Telemetry = (*Noop)(nil)

// Noop is a no-op implementation of ports.Telemetry.
type Noop struct{}

// NewNoop creates a new Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns the context unchanged and a vertex that ignores everything.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, NoopVertex{}
}

// Close does nothing.
func (n *Noop) Close() error { return nil }

// NoopVertex is a vertex that discards all recordings.
type NoopVertex struct{}

// Log does nothing.
func (NoopVertex) Log(string) {}

// Cached does nothing.
func (NoopVertex) Cached() {}

// Complete does nothing.
func (NoopVertex) Complete(error) {}
