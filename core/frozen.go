// SPDX-License-Identifier: MIT
//
// File: frozen.go
// Role: the immutable adjacency engine —
// built once from a builder's staged adjacency and never mutated again.
// Per-vertex neighbor lists are plain sorted arrays rather than the
// mutable engines' inline/Robin-Hood hybrids, giving vertices/edges a
// fixed identity order and sub-linear (binary-search) containment without
// any of the growth machinery a mutable engine needs.
//
// Edge identity is dense (0..edgeCount-1), assigned at construction in
// source-major, target-ascending order, exactly mirroring the network
// backend's EdgeID shape (see network.go) so CreateEdgeProperty can use
// the same dense-store path regardless of which immutable or mutable
// engine produced the graph.
package core

import (
	"sort"
	"sync"
)

// frozenEngine backs graphs produced by builder.Build(). Every mutating
// entry point of adjacencyEngine fails with ErrUnsupported.
type frozenEngine struct {
	directed   bool
	allowMulti bool

	// succNeighbors[v] and succEdgeIDs[v] are parallel, sorted ascending
	// by neighbor; for undirected graphs this is the full incident list
	// (mirroring successors==predecessors on the mutable engines).
	succNeighbors [][]uint32
	succEdgeIDs   [][]uint32

	predNeighbors [][]uint32
	predEdgeIDs   [][]uint32
	predOnce      sync.Once

	edgeTable []edgeEndpoints
	edgeHint  []uint32

	multiEdges bool
}

// newFrozenEngine finalizes a builder's staged adjacency (one neighbor list
// per vertex, in any order and possibly with duplicates, already mirrored for
// undirected graphs exactly as the mutable engines maintain it) into an
// immutable engine: sorts each list, assigns dense edge-ids in
// source-major/target-ascending order, and for undirected graphs emits
// each edge exactly once as it discovers the canonical (min,max) side.
func newFrozenEngine(directed, allowMulti bool, stagedSuccessors [][]uint32) *frozenEngine {
	n := len(stagedSuccessors)
	sorted := make([][]uint32, n)
	multi := false
	for v, neighbors := range stagedSuccessors {
		s := append([]uint32(nil), neighbors...)
		// Stable: callers staging multiple parallel edges to the same
		// neighbor rely on their relative order surviving into edge-id
		// assignment (see builder.EdgePropertyStage).
		sort.SliceStable(s, func(i, j int) bool { return s[i] < s[j] })
		for i := 1; i < len(s); i++ {
			if s[i] == s[i-1] {
				multi = true
			}
		}
		sorted[v] = s
	}

	e := &frozenEngine{
		directed:      directed,
		allowMulti:    allowMulti,
		succNeighbors: make([][]uint32, n),
		succEdgeIDs:   make([][]uint32, n),
		multiEdges:    multi,
	}

	var nextID uint32
	assign := func(s, t VertexID) uint32 {
		id := nextID
		nextID++
		e.edgeTable = append(e.edgeTable, edgeEndpoints{source: s, target: t})
		e.edgeHint = append(e.edgeHint, networkHint(directed, s, t))
		return id
	}

	for v, neighbors := range sorted {
		for _, w := range neighbors {
			if directed {
				id := assign(VertexID(v), VertexID(w))
				e.succNeighbors[v] = append(e.succNeighbors[v], w)
				e.succEdgeIDs[v] = append(e.succEdgeIDs[v], id)
				continue
			}
			if uint32(v) > w {
				continue
			}
			id := assign(VertexID(v), VertexID(w))
			e.succNeighbors[v] = append(e.succNeighbors[v], w)
			e.succEdgeIDs[v] = append(e.succEdgeIDs[v], id)
			if uint32(v) != w {
				e.succNeighbors[w] = append(e.succNeighbors[w], uint32(v))
				e.succEdgeIDs[w] = append(e.succEdgeIDs[w], id)
			}
		}
	}
	return e
}

func (e *frozenEngine) isDirected() bool { return e.directed }
func (e *frozenEngine) isMulti() bool { return e.allowMulti }
func (e *frozenEngine) vertexCount() int { return len(e.succNeighbors) }
func (e *frozenEngine) edgeCount() int { return len(e.edgeTable) }

func (e *frozenEngine) hasVertex(v VertexID) bool { return int(v) < len(e.succNeighbors) }

func (e *frozenEngine) hasEdge(id EdgeID) bool {
	idx := id.low()
	return int(idx) < len(e.edgeTable) && e.edgeHint[idx] == id.high()
}

func (e *frozenEngine) edgeDense() bool { return true }
func (e *frozenEngine) edgeIndex(id EdgeID) int { return int(id.low()) }
func (e *frozenEngine) edgeAt(i int) EdgeID { return encodeEdge(e.edgeHint[i], uint32(i)) }

func (e *frozenEngine) addVertex() (VertexID, error) {
	return 0, wrapf(ErrUnsupported, "AddVertex", "graph is immutable")
}

func (e *frozenEngine) removeVertex(VertexID, *mutationResult) error {
	return wrapf(ErrUnsupported, "RemoveVertex", "graph is immutable")
}

func (e *frozenEngine) addEdge(VertexID, VertexID) (EdgeID, error) {
	return 0, wrapf(ErrUnsupported, "AddEdge", "graph is immutable")
}

func (e *frozenEngine) removeEdge(EdgeID, *mutationResult) error {
	return wrapf(ErrUnsupported, "RemoveEdge", "graph is immutable")
}

func (e *frozenEngine) ensureVertexCapacity(int) {}
func (e *frozenEngine) ensureEdgeCapacity(int) {}

// findRange returns the contiguous index range in a sorted neighbor list
// whose value equals w, or ok=false if absent.
func findRange(neighbors []uint32, w uint32) (lo, hi int, ok bool) {
	lo = sort.Search(len(neighbors), func(i int) bool { return neighbors[i] >= w })
	if lo >= len(neighbors) || neighbors[lo] != w {
		return 0, 0, false
	}
	hi = lo + 1
	for hi < len(neighbors) && neighbors[hi] == w {
		hi++
	}
	return lo, hi, true
}

func (e *frozenEngine) outDegree(v VertexID) (int, error) {
	if !e.hasVertex(v) {
		return 0, wrapf(ErrInvalidArgument, "OutDegree", "vertex %d does not exist", v)
	}
	return len(e.succNeighbors[v]), nil
}

func (e *frozenEngine) ensurePred() {
	if !e.directed {
		return
	}
	// predOnce keeps the lazy transpose safe for concurrent readers.
	e.predOnce.Do(func() {
		n := len(e.succNeighbors)
		e.predNeighbors = make([][]uint32, n)
		e.predEdgeIDs = make([][]uint32, n)
		for id, ends := range e.edgeTable {
			e.predNeighbors[ends.target] = append(e.predNeighbors[ends.target], uint32(ends.source))
			e.predEdgeIDs[ends.target] = append(e.predEdgeIDs[ends.target], uint32(id))
		}
	})
}

func (e *frozenEngine) inDegree(v VertexID) (int, error) {
	if !e.hasVertex(v) {
		return 0, wrapf(ErrInvalidArgument, "InDegree", "vertex %d does not exist", v)
	}
	if !e.directed {
		return len(e.succNeighbors[v]), nil
	}
	e.ensurePred()
	return len(e.predNeighbors[v]), nil
}

func (e *frozenEngine) successors(v VertexID) ([]VertexID, error) {
	if !e.hasVertex(v) {
		return nil, wrapf(ErrInvalidArgument, "Successors", "vertex %d does not exist", v)
	}
	out := make([]VertexID, len(e.succNeighbors[v]))
	for i, w := range e.succNeighbors[v] {
		out[i] = VertexID(w)
	}
	return out, nil
}

func (e *frozenEngine) predecessors(v VertexID) ([]VertexID, error) {
	if !e.hasVertex(v) {
		return nil, wrapf(ErrInvalidArgument, "Predecessors", "vertex %d does not exist", v)
	}
	if !e.directed {
		return e.successors(v)
	}
	e.ensurePred()
	out := make([]VertexID, len(e.predNeighbors[v]))
	for i, w := range e.predNeighbors[v] {
		out[i] = VertexID(w)
	}
	return out, nil
}

func (e *frozenEngine) outgoingEdges(v VertexID) ([]EdgeID, error) {
	if !e.hasVertex(v) {
		return nil, wrapf(ErrInvalidArgument, "OutgoingEdges", "vertex %d does not exist", v)
	}
	out := make([]EdgeID, len(e.succEdgeIDs[v]))
	for i, id := range e.succEdgeIDs[v] {
		out[i] = encodeEdge(e.edgeHint[id], id)
	}
	return out, nil
}

func (e *frozenEngine) incomingEdges(v VertexID) ([]EdgeID, error) {
	if !e.hasVertex(v) {
		return nil, wrapf(ErrInvalidArgument, "IncomingEdges", "vertex %d does not exist", v)
	}
	if !e.directed {
		return e.outgoingEdges(v)
	}
	e.ensurePred()
	out := make([]EdgeID, len(e.predEdgeIDs[v]))
	for i, id := range e.predEdgeIDs[v] {
		out[i] = encodeEdge(e.edgeHint[id], id)
	}
	return out, nil
}

func (e *frozenEngine) edgeSource(id EdgeID) (VertexID, error) {
	if !e.hasEdge(id) {
		return 0, wrapf(ErrInvalidArgument, "EdgeSource", "edge %v does not exist", id)
	}
	return e.edgeTable[id.low()].source, nil
}

func (e *frozenEngine) edgeTarget(id EdgeID) (VertexID, error) {
	if !e.hasEdge(id) {
		return 0, wrapf(ErrInvalidArgument, "EdgeTarget", "edge %v does not exist", id)
	}
	return e.edgeTable[id.low()].target, nil
}

func (e *frozenEngine) edgeOpposite(id EdgeID, v VertexID) (VertexID, error) {
	if !e.hasEdge(id) {
		return 0, wrapf(ErrInvalidArgument, "EdgeOpposite", "edge %v does not exist", id)
	}
	ends := e.edgeTable[id.low()]
	switch v {
	case ends.source:
		return ends.target, nil
	case ends.target:
		return ends.source, nil
	default:
		return 0, wrapf(ErrInvalidArgument, "EdgeOpposite", "vertex %d is not an endpoint of edge %v", v, id)
	}
}

func (e *frozenEngine) containsEdge(s, t VertexID) bool {
	if !e.hasVertex(s) {
		return false
	}
	_, _, ok := findRange(e.succNeighbors[s], uint32(t))
	return ok
}

func (e *frozenEngine) getEdge(s, t VertexID) (EdgeID, error) {
	if !e.hasVertex(s) {
		return 0, wrapf(ErrInvalidArgument, "GetEdge", "source vertex %d does not exist", s)
	}
	lo, _, ok := findRange(e.succNeighbors[s], uint32(t))
	if !ok {
		return 0, wrapf(ErrNoSuchElement, "GetEdge", "no edge %d->%d", s, t)
	}
	id := e.succEdgeIDs[s][lo]
	return encodeEdge(e.edgeHint[id], id), nil
}

func (e *frozenEngine) getEdges(s, t VertexID) []EdgeID {
	if !e.hasVertex(s) {
		return nil
	}
	lo, hi, ok := findRange(e.succNeighbors[s], uint32(t))
	if !ok {
		return nil
	}
	out := make([]EdgeID, hi-lo)
	for i := lo; i < hi; i++ {
		id := e.succEdgeIDs[s][i]
		out[i-lo] = encodeEdge(e.edgeHint[id], id)
	}
	return out
}

func (e *frozenEngine) allEdges() []EdgeID {
	out := make([]EdgeID, len(e.edgeTable))
	for id := range e.edgeTable {
		out[id] = encodeEdge(e.edgeHint[id], uint32(id))
	}
	return out
}

func (e *frozenEngine) hasMultiEdges() bool { return e.multiEdges }

// NewFrozen builds an immutable Graph from a fully-staged adjacency: one
// neighbor list per vertex (index 0..len-1), already mirrored for
// undirected graphs exactly as a mutable engine's succ would be (i.e.
// stagedSuccessors[v] lists every neighbor v is incident to, including the
// mirrored entry from the other endpoint). This is the finalize entry
// point the builder package calls from Build(); direct callers outside
// builder are expected to have assembled stagedSuccessors themselves.
func NewFrozen(directed, allowMultiEdge bool, stagedSuccessors [][]uint32) *Graph {
	e := newFrozenEngine(directed, allowMultiEdge, stagedSuccessors)
	return &Graph{
		engine:     e,
		vertexReg:  &registry[VertexID]{},
		edgeReg:    &registry[EdgeID]{},
		vertexRefs: newRefTracker[VertexID](),
		edgeRefs:   newRefTracker[EdgeID](),
	}
}
