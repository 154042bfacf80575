// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus-backed metrics for generators and containers.
// Each MetricsRegistry owns a private prometheus.Registry.

package control

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsRegistry holds the collectors of one harness run.
type MetricsRegistry struct {
	mu      sync.RWMutex
	reg     *prometheus.Registry
	draws   *prometheus.CounterVec
	lengths *prometheus.GaugeVec
	updated time.Time
}

// NewMetricsRegistry creates a registry whose metric names start with namespace.
func NewMetricsRegistry(namespace string) *MetricsRegistry {
	mr := &MetricsRegistry{
		reg: prometheus.NewRegistry(),
		draws: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generator_draws_total",
				Help:      "Values produced by each generator",
			},
			[]string{"generator"},
		),
		lengths: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "container_len",
				Help:      "Last observed length of each container",
			},
			[]string{"container"},
		),
	}
	mr.reg.MustRegister(mr.draws, mr.lengths)
	return mr
}

// GeneratorCounter returns the draw counter for the named generator.
func (mr *MetricsRegistry) GeneratorCounter(name string) prometheus.Counter {
	mr.touch()
	return mr.draws.WithLabelValues(name)
}

// ObserveLen records the current length of the named container.
func (mr *MetricsRegistry) ObserveLen(name string, n int) {
	mr.lengths.WithLabelValues(name).Set(float64(n))
	mr.touch()
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (mr *MetricsRegistry) Registry() *prometheus.Registry { return mr.reg }

// Updated returns when a metric was last created or set.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

func (mr *MetricsRegistry) touch() {
	mr.mu.Lock()
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot gathers every counter and gauge into name{labels} -> value.
func (mr *MetricsRegistry) GetSnapshot() (map[string]any, error) {
	mfs, err := mr.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("control: gather metrics: %w", err)
	}
	out := make(map[string]any)
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			sort.Strings(pairs)
			key := mf.GetName()
			if len(pairs) > 0 {
				key += "{" + strings.Join(pairs, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}
