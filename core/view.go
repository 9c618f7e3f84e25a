// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: live view contracts over a graph's vertex/edge sets
// and per-vertex adjacency — Len is O(1) except for per-vertex views on the
// network backend, where it sums the vertex's per-neighbor edge lists;
// Contains is sub-linear (O(1) on the hash/inline adjacency paths), and
// Slice snapshots the current contents on demand rather than eagerly.
//
// AI-HINT (file):
//   - A view never copies state at construction; every method re-consults
//     the owning engine, so a view taken before a mutation reflects the
//     mutation afterward.
package core

// VertexView is a live, read-only view over a set of vertex identities.
type VertexView struct {
	length   func() int
	contains func(VertexID) bool
	slice    func() []VertexID
}

// Len reports the view's current size.
func (v VertexView) Len() int { return v.length() }

// Contains reports whether id is currently a member of the view.
func (v VertexView) Contains(id VertexID) bool { return v.contains(id) }

// Slice snapshots the view's current contents.
func (v VertexView) Slice() []VertexID { return v.slice() }

// EdgeView is the edge-identity analog of VertexView.
type EdgeView struct {
	length   func() int
	contains func(EdgeID) bool
	slice    func() []EdgeID
}

// Len reports the view's current size.
func (v EdgeView) Len() int { return v.length() }

// Contains reports whether id is currently a member of the view.
func (v EdgeView) Contains(id EdgeID) bool { return v.contains(id) }

// Slice snapshots the view's current contents.
func (v EdgeView) Slice() []EdgeID { return v.slice() }

// VerticesView returns a live view over every vertex currently in g.
func (g *Graph) VerticesView() VertexView {
	return VertexView{
		length:   g.engine.vertexCount,
		contains: g.engine.hasVertex,
		slice:    g.Vertices,
	}
}

// EdgesView returns a live view over every edge currently in g.
func (g *Graph) EdgesView() EdgeView {
	return EdgeView{
		length:   g.engine.edgeCount,
		contains: g.engine.hasEdge,
		slice:    g.Edges,
	}
}

// SuccessorsView returns a live view over v's outgoing neighbor set.
func (g *Graph) SuccessorsView(v VertexID) (VertexView, error) {
	if !g.engine.hasVertex(v) {
		return VertexView{}, wrapf(ErrInvalidArgument, "SuccessorsView", "vertex %d does not exist", v)
	}
	return VertexView{
		length: func() int {
			n, _ := g.engine.outDegree(v)
			return n
		},
		contains: func(w VertexID) bool { return g.engine.containsEdge(v, w) },
		slice: func() []VertexID {
			s, _ := g.engine.successors(v)
			return s
		},
	}, nil
}

// PredecessorsView returns a live view over v's incoming neighbor set.
func (g *Graph) PredecessorsView(v VertexID) (VertexView, error) {
	if !g.engine.hasVertex(v) {
		return VertexView{}, wrapf(ErrInvalidArgument, "PredecessorsView", "vertex %d does not exist", v)
	}
	return VertexView{
		length: func() int {
			n, _ := g.engine.inDegree(v)
			return n
		},
		contains: func(w VertexID) bool {
			if g.engine.isDirected() {
				return g.engine.containsEdge(w, v)
			}
			return g.engine.containsEdge(v, w)
		},
		slice: func() []VertexID {
			s, _ := g.engine.predecessors(v)
			return s
		},
	}, nil
}

func edgeTouchesAsOutgoing(e adjacencyEngine, id EdgeID, v VertexID) bool {
	if !e.hasEdge(id) {
		return false
	}
	s, err := e.edgeSource(id)
	if err != nil {
		return false
	}
	if s == v {
		return true
	}
	if e.isDirected() {
		return false
	}
	t, _ := e.edgeTarget(id)
	return t == v
}

func edgeTouchesAsIncoming(e adjacencyEngine, id EdgeID, v VertexID) bool {
	if !e.hasEdge(id) {
		return false
	}
	t, err := e.edgeTarget(id)
	if err != nil {
		return false
	}
	if t == v {
		return true
	}
	if e.isDirected() {
		return false
	}
	s, _ := e.edgeSource(id)
	return s == v
}

// OutgoingEdgesView returns a live view over v's outgoing edge identities.
func (g *Graph) OutgoingEdgesView(v VertexID) (EdgeView, error) {
	if !g.engine.hasVertex(v) {
		return EdgeView{}, wrapf(ErrInvalidArgument, "OutgoingEdgesView", "vertex %d does not exist", v)
	}
	return EdgeView{
		length: func() int {
			n, _ := g.engine.outDegree(v)
			return n
		},
		contains: func(id EdgeID) bool { return edgeTouchesAsOutgoing(g.engine, id, v) },
		slice: func() []EdgeID {
			s, _ := g.engine.outgoingEdges(v)
			return s
		},
	}, nil
}

// IncomingEdgesView returns a live view over v's incoming edge identities.
func (g *Graph) IncomingEdgesView(v VertexID) (EdgeView, error) {
	if !g.engine.hasVertex(v) {
		return EdgeView{}, wrapf(ErrInvalidArgument, "IncomingEdgesView", "vertex %d does not exist", v)
	}
	return EdgeView{
		length: func() int {
			n, _ := g.engine.inDegree(v)
			return n
		},
		contains: func(id EdgeID) bool { return edgeTouchesAsIncoming(g.engine, id, v) },
		slice: func() []EdgeID {
			s, _ := g.engine.incomingEdges(v)
			return s
		},
	}, nil
}
