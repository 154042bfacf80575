// Package api
// Author: momentics
//
// Introspection hooks used by the demo harness.

package api

// Probe reports a point-in-time value for diagnostics.
type Probe func() any

// Debug collects named probes and dumps their values on demand.
type Debug interface {
	// DumpState evaluates every registered probe.
	DumpState() map[string]any

	// RegisterProbe adds or replaces the probe stored under name.
	RegisterProbe(name string, fn Probe)
}
