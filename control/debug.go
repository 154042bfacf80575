// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Named probes over library state, dumped in name order.

package control

import (
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/momentics/hioload-generics/api"
)

var _ api.Debug = (*DebugProbes)(nil)

// DebugProbes is a registry of named probes. Probes run outside the
// registry lock, so a probe may itself register or read probes.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]api.Probe
}

func NewDebugProbes() *DebugProbes {
	return &DebugProbes{probes: make(map[string]api.Probe)}
}

// RegisterProbe inserts or replaces a named probe. A nil fn removes it.
func (dp *DebugProbes) RegisterProbe(name string, fn api.Probe) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	if fn == nil {
		delete(dp.probes, name)
		return
	}
	dp.probes[name] = fn
}

// Names returns the registered probe names, sorted.
func (dp *DebugProbes) Names() []string {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	return slices.Sorted(maps.Keys(dp.probes))
}

// All evaluates probes in name order, stopping when yield returns false.
// Probes registered after All starts are not visited.
func (dp *DebugProbes) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		dp.mu.RLock()
		names := slices.Sorted(maps.Keys(dp.probes))
		fns := make([]api.Probe, len(names))
		for i, n := range names {
			fns[i] = dp.probes[n]
		}
		dp.mu.RUnlock()

		for i, n := range names {
			if !yield(n, fns[i]()) {
				return
			}
		}
	}
}

// DumpState evaluates every probe.
func (dp *DebugProbes) DumpState() map[string]any {
	out := make(map[string]any)
	for k, v := range dp.All() {
		out[k] = v
	}
	return out
}
