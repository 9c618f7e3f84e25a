// SPDX-License-Identifier: MIT
//
// File: property.go
// Role: typed vertex/edge value staging for the builder. A stage collects
// values against staging identities (vertex index, or edge endpoints plus
// occurrence order for parallel edges) while the graph is still mutable,
// then realizes them into a core property over the finalized graph when
// Build runs. Go has no generic methods, so the declarations are
// package-level functions over *Builder rather than methods on it; the
// typed handle is read back from the stage after Build.
package builder

import "github.com/kvlaran/densegraph/core"

// VertexPropertyStage declares a vertex property on a Builder and collects
// staged values until Build realizes it. After Build, Property returns the
// live core.VertexProperty over the finalized graph.
type VertexPropertyStage[T any] struct {
	init   func(core.VertexID) T
	staged map[uint32]T
	prop   *core.VertexProperty[T]
}

// WithVertexProperty declares the builder's vertex property. init, if
// non-nil, supplies values for vertices that were never staged explicitly;
// if nil, reading such a vertex after Build fails with InvalidState. At most
// one vertex property can be declared per Builder; a second declaration
// fails with AlreadyExists.
func WithVertexProperty[T any](b *Builder, init func(core.VertexID) T) (*VertexPropertyStage[T], error) {
	if b.vertexProp != nil {
		return nil, wrapf(errAlreadyExists, "WithVertexProperty", "vertex property already declared")
	}
	st := &VertexPropertyStage[T]{init: init, staged: make(map[uint32]T)}
	b.vertexProp = st
	return st, nil
}

func (st *VertexPropertyStage[T]) set(v uint32, val T) { st.staged[v] = val }

// realizeVertex creates the property on the finalized graph and replays the
// staged values. Vertex identities survive finalize unchanged (they were
// dense at staging time already), so the replay is a direct Set per entry.
func (st *VertexPropertyStage[T]) realizeVertex(g *core.Graph) {
	st.prop = core.CreateVertexProperty(g, st.init)
	for v, val := range st.staged {
		// Set cannot fail here: every staged key was a live staging vertex.
		_ = st.prop.Set(core.VertexID(v), val)
	}
}

// Property returns the realized property. It is nil until Build has run.
func (st *VertexPropertyStage[T]) Property() *core.VertexProperty[T] { return st.prop }

// edgeValueEntry records one value-tagged edge add in staging order. The
// endpoints are kept in construction order; canonicalization happens at
// realize time so undirected lookups hit the finalized (min,max) side.
type edgeValueEntry[T any] struct {
	s, t uint32
	val  T
}

// EdgePropertyStage declares an edge property on a Builder and collects
// values for value-tagged edge adds until Build realizes it.
type EdgePropertyStage[T any] struct {
	init   func(core.EdgeID) T
	staged []edgeValueEntry[T]
	prop   *core.EdgeProperty[T]
}

// WithEdgeProperty declares the builder's edge property, mirroring
// WithVertexProperty.
func WithEdgeProperty[T any](b *Builder, init func(core.EdgeID) T) (*EdgePropertyStage[T], error) {
	if b.edgeProp != nil {
		return nil, wrapf(errAlreadyExists, "WithEdgeProperty", "edge property already declared")
	}
	st := &EdgePropertyStage[T]{init: init}
	b.edgeProp = st
	return st, nil
}

func (st *EdgePropertyStage[T]) add(s, t uint32, val T) {
	st.staged = append(st.staged, edgeValueEntry[T]{s: s, t: t, val: val})
}

// realizeEdge creates the property on the finalized graph and replays the
// staged values onto their final edge identities. Finalize assigns ids to
// parallel edges of the same endpoint pair in staging order, and GetEdges
// returns them in id order, so the k-th staged value for a pair lands on the
// k-th edge of that pair.
func (st *EdgePropertyStage[T]) realizeEdge(g *core.Graph, directed bool) {
	st.prop = core.CreateEdgeProperty(g, st.init)
	type pair struct{ s, t uint32 }
	occurrence := make(map[pair]int, len(st.staged))
	for _, e := range st.staged {
		s, t := e.s, e.t
		if !directed && s > t {
			s, t = t, s
		}
		k := pair{s, t}
		ids := g.GetEdges(core.VertexID(s), core.VertexID(t))
		i := occurrence[k]
		occurrence[k] = i + 1
		if i < len(ids) {
			_ = st.prop.Set(ids[i], e.val)
		}
	}
}

// Property returns the realized property. It is nil until Build has run.
func (st *EdgePropertyStage[T]) Property() *core.EdgeProperty[T] { return st.prop }
