// SPDX-License-Identifier: MIT
// Benchmarks for the two adjacency engines and the property hot path.
package core_test

import (
	"runtime"
	"testing"

	"github.com/kvlaran/densegraph/core"
)

// Benchmark sinks prevent dead-code elimination in microbenchmarks.
var (
	benchSinkEdge   core.EdgeID
	benchSinkInt    int
	benchSinkFloat  float64
	benchSinkVertex core.VertexID
)

// benchStarGraph pre-builds a hub with n spokes.
func benchStarGraph(b *testing.B, n int, opts ...core.EngineOption) (*core.Graph, core.VertexID) {
	b.Helper()
	g := core.NewMutable(true, opts...)
	g.EnsureVertexCapacity(n + 1)
	hub, _ := g.AddVertex()
	for i := 0; i < n; i++ {
		v, _ := g.AddVertex()
		if _, err := g.AddEdge(hub, v); err != nil {
			b.Fatal(err)
		}
	}
	return g, hub
}

// BenchmarkSimpleAddEdge measures edge insertion on the simple backend,
// with vertex creation excluded from the timed region.
func BenchmarkSimpleAddEdge(b *testing.B) {
	g := core.NewMutable(true)
	g.EnsureVertexCapacity(b.N + 1)
	hub, _ := g.AddVertex()
	ids := make([]core.VertexID, b.N)
	for i := range ids {
		ids[i], _ = g.AddVertex()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, _ := g.AddEdge(hub, ids[i])
		benchSinkEdge = e
	}
}

// BenchmarkNetworkAddEdge is the same shape on the network backend, whose
// insert also appends to the edge table.
func BenchmarkNetworkAddEdge(b *testing.B) {
	g := core.NewMutable(true, core.WithMultiEdgeSupport())
	g.EnsureVertexCapacity(b.N + 1)
	g.EnsureEdgeCapacity(b.N)
	hub, _ := g.AddVertex()
	ids := make([]core.VertexID, b.N)
	for i := range ids {
		ids[i], _ = g.AddVertex()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, _ := g.AddEdge(hub, ids[i])
		benchSinkEdge = e
	}
}

// BenchmarkSimpleContainsEdge measures the adjacency-set membership probe
// on a moderately loaded hub.
func BenchmarkSimpleContainsEdge(b *testing.B) {
	g, hub := benchStarGraph(b, 1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if g.ContainsEdge(hub, core.VertexID(1+(i&1023))) {
			benchSinkInt++
		}
	}
}

// BenchmarkVertexPropertyGet measures the dense-array property read path.
func BenchmarkVertexPropertyGet(b *testing.B) {
	g, _ := benchStarGraph(b, 1024)
	p := core.CreateVertexProperty(g, func(v core.VertexID) float64 { return float64(v) })
	for i := 0; i <= 1024; i++ {
		if _, err := p.Get(core.VertexID(i)); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := p.Get(core.VertexID(i & 1023))
		benchSinkFloat = v
	}
}

// BenchmarkRemoveVertexSwapAndPop measures the full removal cascade
// (topology, property, reference) on the simple backend.
func BenchmarkRemoveVertexSwapAndPop(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g, hub := benchStarGraph(b, 64)
		p := core.CreateVertexProperty(g, func(core.VertexID) int { return 0 })
		b.StartTimer()
		if err := g.RemoveVertex(hub); err != nil {
			b.Fatal(err)
		}
		runtime.KeepAlive(p)
		benchSinkVertex = core.VertexID(g.VertexCount())
	}
}
