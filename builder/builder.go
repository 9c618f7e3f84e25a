// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: the mutable staging structure behind the immutable builder. A
// Builder accumulates adjacency — a sparse per-vertex neighbor set — plus
// optional vertex/edge property declarations, until Build finalizes it all
// into an immutable core.Graph in one pass.
package builder

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/kvlaran/densegraph/core"
)

// vertexStage and edgeStage let Build realize a property declaration
// without Builder itself needing a type parameter; see property.go for
// the concrete VertexPropertyStage[T]/EdgePropertyStage[T] that implement
// them.
type vertexStage interface{ realizeVertex(g *core.Graph) }
type edgeStage interface{ realizeEdge(g *core.Graph, directed bool) }

// Builder stages a graph for one-shot finalize into an immutable
// core.Graph via Build. Mirrors core.NewMutable's constructor shape:
// directed selects edge direction, allowMultiEdge permits parallel edges,
// optimizeEdges is accepted for symmetry with core.WithIndexedEdges but
// has no separate effect — a finalized graph's edge identity is always
// the dense, relabeling-stable form (core/frozen.go).
type Builder struct {
	directed      bool
	allowMulti    bool
	optimizeEdges bool

	succ       []mapset.Set[uint32]
	multiExtra [][]uint32
	edges      int

	vertexProp vertexStage
	edgeProp   edgeStage
}

// New constructs an empty Builder.
func New(directed, allowMultiEdge, optimizeEdges bool) *Builder {
	return &Builder{directed: directed, allowMulti: allowMultiEdge, optimizeEdges: optimizeEdges}
}

func (b *Builder) addVertex() uint32 {
	id := uint32(len(b.succ))
	b.succ = append(b.succ, mapset.NewThreadUnsafeSet[uint32]())
	if b.allowMulti {
		b.multiExtra = append(b.multiExtra, nil)
	}
	return id
}

func (b *Builder) vertexCount() int        { return len(b.succ) }
func (b *Builder) hasVertex(v uint32) bool { return int(v) < len(b.succ) }

// AddVertex stages a new vertex and returns its staging identity, which is
// also its identity in the finalized graph (finalize never renumbers
// vertices).
func (b *Builder) AddVertex() core.VertexID { return core.VertexID(b.addVertex()) }

// AddEdge stages an edge between two staged vertices. Parallel edges are
// rejected with AlreadyExists unless the builder allows multi-edges.
func (b *Builder) AddEdge(s, t core.VertexID) error { return b.addEdge(uint32(s), uint32(t)) }

// VertexCount reports the number of staged vertices.
func (b *Builder) VertexCount() int { return b.vertexCount() }

// EdgeCount reports the number of staged edges.
func (b *Builder) EdgeCount() int { return b.edges }

func (b *Builder) addEdge(s, t uint32) error {
	if !b.hasVertex(s) {
		return wrapf(errInvalidArgument, "AddEdge", "source vertex %d does not exist", s)
	}
	if !b.hasVertex(t) {
		return wrapf(errInvalidArgument, "AddEdge", "target vertex %d does not exist", t)
	}
	if !b.allowMulti && b.succ[s].Contains(t) {
		return wrapf(errAlreadyExists, "AddEdge", "edge %d->%d already exists", s, t)
	}
	b.insert(s, t)
	if !b.directed && s != t {
		b.insert(t, s)
	}
	b.edges++
	return nil
}

// insert adds t to s's staged neighbor set, or to its multiExtra overflow
// once the set already holds t and parallel edges are permitted.
func (b *Builder) insert(s, t uint32) {
	if b.succ[s].Contains(t) {
		if b.allowMulti {
			b.multiExtra[s] = append(b.multiExtra[s], t)
		}
		return
	}
	b.succ[s].Add(t)
}

// stageSlices flattens succ and multiExtra into the per-vertex neighbor
// lists core.NewFrozen expects.
func (b *Builder) stageSlices() [][]uint32 {
	out := make([][]uint32, len(b.succ))
	for v, set := range b.succ {
		out[v] = set.ToSlice()
		if b.allowMulti {
			out[v] = append(out[v], b.multiExtra[v]...)
		}
	}
	return out
}

// Build finalizes the staged adjacency into an immutable core.Graph. Any
// property declared via WithVertexProperty/WithEdgeProperty is realized
// against the finalized graph before Build returns; its typed handle is
// retrieved by calling Property() on the stage object returned from that
// declaration (Go has no generic methods, so Build itself cannot return a
// type-parameterized property tuple directly).
func (b *Builder) Build() *core.Graph {
	g := core.NewFrozen(b.directed, b.allowMulti, b.stageSlices())
	if b.vertexProp != nil {
		b.vertexProp.realizeVertex(g)
	}
	if b.edgeProp != nil {
		b.edgeProp.realizeEdge(g, b.directed)
	}
	return g
}
