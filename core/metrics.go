// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: optional engine instrumentation, enabled by passing WithMetrics to
// NewMutable. Off by default and never on the mutation hot path: a Graph
// built without it carries a nil *engineMetrics, and every call site below
// guards on that before touching a prometheus type.
package core

import "github.com/prometheus/client_golang/prometheus"

// engineMetrics is a prometheus.Collector exposing one engine's live
// vertex/edge counts and a running total of structural mutations by kind.
// Counts are computed on demand at Collect time rather than mirrored
// imperatively, since the engine already has O(1) VertexCount/EdgeCount.
type engineMetrics struct {
	g *Graph

	vertexCount *prometheus.Desc
	edgeCount   *prometheus.Desc

	mutationsTotal *prometheus.CounterVec
}

func newEngineMetrics(g *Graph) *engineMetrics {
	return &engineMetrics{
		g:         g,
		vertexCount: prometheus.NewDesc(
			"densegraph_vertex_count", "Current number of live vertices.", nil, nil),
		edgeCount: prometheus.NewDesc(
			"densegraph_edge_count", "Current number of live edges.", nil, nil),
		mutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "densegraph_mutations_total",
			Help: "Count of structural mutations, by operation.",
		}, []string{"op"}),
	}
}

// Describe implements prometheus.Collector.
func (m *engineMetrics) Describe(ch chan<- *prometheus.Desc) {
	ch <- m.vertexCount
	ch <- m.edgeCount
	m.mutationsTotal.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *engineMetrics) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(m.vertexCount, prometheus.GaugeValue, float64(m.g.VertexCount()))
	ch <- prometheus.MustNewConstMetric(m.edgeCount, prometheus.GaugeValue, float64(m.g.EdgeCount()))
	m.mutationsTotal.Collect(ch)
}

// observe is nil-safe so call sites don't need to check WithMetrics first.
func (m *engineMetrics) observe(op string) {
	if m == nil {
		return
	}
	m.mutationsTotal.WithLabelValues(op).Inc()
}

// Collector returns g's prometheus.Collector if it was built with
// WithMetrics, or nil otherwise. Callers register it with their own
// prometheus.Registerer; Graph never registers itself globally.
func (g *Graph) Collector() prometheus.Collector {
	if g.metrics == nil {
		return nil
	}
	return g.metrics
}
