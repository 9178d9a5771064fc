// Package observability wires session lifecycle hooks to Prometheus
// collectors, counting node allocations by kind and history merges by the
// decision-table branch that shaped them.
package observability

import (
	"github.com/aretw0/tally/pkg/trace"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by session hooks.
type Metrics struct {
	NodesTotal  *prometheus.CounterVec
	MergesTotal *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		NodesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tally_nodes_total",
				Help: "Total number of nodes allocated, by kind",
			},
			[]string{"kind"},
		),
		MergesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tally_merges_total",
				Help: "Total number of history merges, by folding branch",
			},
			[]string{"case"},
		),
	}
	reg.MustRegister(m.NodesTotal, m.MergesTotal)
	return m
}

// Hooks returns session hooks that feed the collectors. Hooks of multiple
// sessions may share one Metrics; the counters are safe for concurrent use
// even though each single session is not.
func (m *Metrics) Hooks() trace.Hooks {
	return trace.Hooks{
		OnNode: func(ev trace.NodeEvent) {
			m.NodesTotal.WithLabelValues(ev.Kind).Inc()
		},
		OnMerge: func(ev trace.MergeEvent) {
			m.MergesTotal.WithLabelValues(string(ev.Case)).Inc()
		},
	}
}
