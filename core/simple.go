// SPDX-License-Identifier: MIT
//
// File: simple.go
// Role: the simple-graph adjacency engine. One pset.Set32 of
// neighbors per vertex; at most one edge per ordered pair; edge identity
// equals topology, so there is no separate edge table.
//
// AI-HINT (file):
//   - Encoding: directed (high,low) = (source,target); undirected
//     (high,low) = (min(s,t), max(s,t)). edgeSource/edgeTarget always
//     return (high,low), i.e. canonical order for undirected edges.
//   - predecessors() materializes pred lazily on first use in directed
//     mode, then participates in every subsequent mutation like succ does.
package core

import "github.com/kvlaran/densegraph/internal/pset"

type simpleEngine struct {
	directed bool

	succ             []pset.Set32
	pred             []pset.Set32
	predMaterialized bool

	edges int
}

func newSimpleEngine(directed bool) *simpleEngine {
	return &simpleEngine{directed: directed}
}

func simpleEncode(directed bool, s, t VertexID) EdgeID {
	if directed {
		return encodeEdge(uint32(s), uint32(t))
	}
	lo, hi := canonicalPair(s, t)
	return encodeEdge(uint32(lo), uint32(hi))
}

func (e *simpleEngine) isDirected() bool { return e.directed }
func (e *simpleEngine) isMulti() bool { return false }
func (e *simpleEngine) vertexCount() int { return len(e.succ) }
func (e *simpleEngine) edgeCount() int { return e.edges }

func (e *simpleEngine) hasVertex(v VertexID) bool { return int(v) < len(e.succ) }

func (e *simpleEngine) hasEdge(id EdgeID) bool {
	s, t := VertexID(id.high()), VertexID(id.low())
	if !e.hasVertex(s) {
		return false
	}
	return e.succ[s].Contains(uint32(t))
}

func (e *simpleEngine) ensurePred() {
	if !e.directed || e.predMaterialized {
		return
	}
	e.pred = make([]pset.Set32, len(e.succ))
	for u := range e.succ {
		e.succ[u].ForEach(func(w uint32) {
			e.pred[w].Add(uint32(u))
		})
	}
	e.predMaterialized = true
}

func (e *simpleEngine) addVertex() (VertexID, error) {
	id := VertexID(len(e.succ))
	e.succ = append(e.succ, pset.Set32{})
	if e.predMaterialized {
		e.pred = append(e.pred, pset.Set32{})
	}
	return id, nil
}

func (e *simpleEngine) dropEdgeAdjacency(from, to VertexID) {
	e.succ[from].Remove(uint32(to))
	if !e.directed {
		if from != to {
			e.succ[to].Remove(uint32(from))
		}
		return
	}
	if e.predMaterialized {
		e.pred[to].Remove(uint32(from))
	}
}

func (e *simpleEngine) removeVertex(v VertexID, out *mutationResult) error {
	if !e.hasVertex(v) {
		return wrapf(ErrInvalidArgument, "RemoveVertex", "vertex %d does not exist", v)
	}
	if e.directed {
		e.ensurePred()
	}
	n := len(e.succ)
	last := VertexID(n - 1)

	var outNbrs []VertexID
	e.succ[v].ForEach(func(k uint32) { outNbrs = append(outNbrs, VertexID(k)) })
	for _, t := range outNbrs {
		eid := simpleEncode(e.directed, v, t)
		e.dropEdgeAdjacency(v, t)
		out.edgeSwaps = append(out.edgeSwaps, edgeSwap{removed: eid, survivor: eid, rebound: eid})
		e.edges--
	}
	if e.directed {
		var inNbrs []VertexID
		e.pred[v].ForEach(func(k uint32) { inNbrs = append(inNbrs, VertexID(k)) })
		for _, s := range inNbrs {
			if s == v {
				continue // self-loop already drained above
			}
			eid := simpleEncode(e.directed, s, v)
			e.dropEdgeAdjacency(s, v)
			out.edgeSwaps = append(out.edgeSwaps, edgeSwap{removed: eid, survivor: eid, rebound: eid})
			e.edges--
		}
	}

	if v != last {
		var lastOut, lastIn []VertexID
		e.succ[last].ForEach(func(k uint32) { lastOut = append(lastOut, VertexID(k)) })
		if e.directed {
			e.pred[last].ForEach(func(k uint32) { lastIn = append(lastIn, VertexID(k)) })
		}

		for _, w := range lastOut {
			oldID := simpleEncode(e.directed, last, w)
			newW := w
			if w == last {
				newW = v
			}
			newID := simpleEncode(e.directed, v, newW)
			out.edgeSwaps = append(out.edgeSwaps, edgeSwap{removed: newID, survivor: oldID, rebound: newID, relabel: true})
			if w == last {
				continue
			}
			if e.directed {
				if e.predMaterialized {
					e.pred[w].Remove(uint32(last))
					e.pred[w].Add(uint32(v))
				}
			} else {
				e.succ[w].Remove(uint32(last))
				e.succ[w].Add(uint32(v))
			}
		}
		if e.directed {
			for _, u := range lastIn {
				if u == last {
					continue // self-loop, already covered by lastOut pass
				}
				oldID := simpleEncode(e.directed, u, last)
				newID := simpleEncode(e.directed, u, v)
				out.edgeSwaps = append(out.edgeSwaps, edgeSwap{removed: newID, survivor: oldID, rebound: newID, relabel: true})
				e.succ[u].Remove(uint32(last))
				e.succ[u].Add(uint32(v))
			}
		}

		e.succ[v] = e.succ[last]
		if e.succ[v].Contains(uint32(last)) {
			e.succ[v].Remove(uint32(last))
			e.succ[v].Add(uint32(v))
		}
		if e.directed && e.predMaterialized {
			e.pred[v] = e.pred[last]
			if e.pred[v].Contains(uint32(last)) {
				e.pred[v].Remove(uint32(last))
				e.pred[v].Add(uint32(v))
			}
		}
		out.vertexSwaps = append(out.vertexSwaps, vertexSwap{removed: v, survivor: last})
	} else {
		out.vertexSwaps = append(out.vertexSwaps, vertexSwap{removed: v, survivor: v})
	}

	e.succ = e.succ[:last]
	if e.predMaterialized {
		e.pred = e.pred[:last]
	}
	return nil
}

func (e *simpleEngine) addEdge(s, t VertexID) (EdgeID, error) {
	if !e.hasVertex(s) || !e.hasVertex(t) {
		return 0, wrapf(ErrInvalidArgument, "AddEdge", "endpoint out of range (%d,%d)", s, t)
	}
	if e.succ[s].Contains(uint32(t)) {
		return 0, wrapf(ErrAlreadyExists, "AddEdge", "edge (%d,%d) already exists", s, t)
	}
	e.succ[s].Add(uint32(t))
	if !e.directed {
		if s != t {
			e.succ[t].Add(uint32(s))
		}
	} else if e.predMaterialized {
		e.pred[t].Add(uint32(s))
	}
	e.edges++
	return simpleEncode(e.directed, s, t), nil
}

func (e *simpleEngine) removeEdge(id EdgeID, out *mutationResult) error {
	if !e.hasEdge(id) {
		return wrapf(ErrInvalidArgument, "RemoveEdge", "edge %d does not exist", uint64(id))
	}
	s, t := VertexID(id.high()), VertexID(id.low())
	e.dropEdgeAdjacency(s, t)
	e.edges--
	out.edgeSwaps = append(out.edgeSwaps, edgeSwap{removed: id, survivor: id, rebound: id})
	return nil
}

func (e *simpleEngine) outDegree(v VertexID) (int, error) {
	if !e.hasVertex(v) {
		return 0, wrapf(ErrInvalidArgument, "OutDegree", "vertex %d does not exist", v)
	}
	return e.succ[v].Len(), nil
}

func (e *simpleEngine) inDegree(v VertexID) (int, error) {
	if !e.hasVertex(v) {
		return 0, wrapf(ErrInvalidArgument, "InDegree", "vertex %d does not exist", v)
	}
	if !e.directed {
		return e.succ[v].Len(), nil
	}
	e.ensurePred()
	return e.pred[v].Len(), nil
}

func (e *simpleEngine) successors(v VertexID) ([]VertexID, error) {
	if !e.hasVertex(v) {
		return nil, wrapf(ErrInvalidArgument, "Successors", "vertex %d does not exist", v)
	}
	out := make([]VertexID, 0, e.succ[v].Len())
	e.succ[v].ForEach(func(k uint32) { out = append(out, VertexID(k)) })
	return out, nil
}

func (e *simpleEngine) predecessors(v VertexID) ([]VertexID, error) {
	if !e.hasVertex(v) {
		return nil, wrapf(ErrInvalidArgument, "Predecessors", "vertex %d does not exist", v)
	}
	if !e.directed {
		return e.successors(v)
	}
	e.ensurePred()
	out := make([]VertexID, 0, e.pred[v].Len())
	e.pred[v].ForEach(func(k uint32) { out = append(out, VertexID(k)) })
	return out, nil
}

func (e *simpleEngine) outgoingEdges(v VertexID) ([]EdgeID, error) {
	nbrs, err := e.successors(v)
	if err != nil {
		return nil, err
	}
	out := make([]EdgeID, len(nbrs))
	for i, t := range nbrs {
		out[i] = simpleEncode(e.directed, v, t)
	}
	return out, nil
}

func (e *simpleEngine) incomingEdges(v VertexID) ([]EdgeID, error) {
	nbrs, err := e.predecessors(v)
	if err != nil {
		return nil, err
	}
	out := make([]EdgeID, len(nbrs))
	for i, s := range nbrs {
		out[i] = simpleEncode(e.directed, s, v)
	}
	return out, nil
}

func (e *simpleEngine) edgeSource(id EdgeID) (VertexID, error) {
	if !e.hasEdge(id) {
		return 0, wrapf(ErrInvalidArgument, "EdgeSource", "edge %d does not exist", uint64(id))
	}
	return VertexID(id.high()), nil
}

func (e *simpleEngine) edgeTarget(id EdgeID) (VertexID, error) {
	if !e.hasEdge(id) {
		return 0, wrapf(ErrInvalidArgument, "EdgeTarget", "edge %d does not exist", uint64(id))
	}
	return VertexID(id.low()), nil
}

func (e *simpleEngine) edgeOpposite(id EdgeID, v VertexID) (VertexID, error) {
	if !e.hasEdge(id) {
		return 0, wrapf(ErrInvalidArgument, "EdgeOpposite", "edge %d does not exist", uint64(id))
	}
	s, t := VertexID(id.high()), VertexID(id.low())
	switch v {
	case s:
		return t, nil
	case t:
		return s, nil
	default:
		return 0, wrapf(ErrInvalidArgument, "EdgeOpposite", "vertex %d is not an endpoint of edge %d", v, uint64(id))
	}
}

func (e *simpleEngine) containsEdge(s, t VertexID) bool {
	if !e.hasVertex(s) {
		return false
	}
	return e.succ[s].Contains(uint32(t))
}

func (e *simpleEngine) getEdge(s, t VertexID) (EdgeID, error) {
	if !e.containsEdge(s, t) {
		return 0, wrapf(ErrNoSuchElement, "GetEdge", "no edge (%d,%d)", s, t)
	}
	return simpleEncode(e.directed, s, t), nil
}

func (e *simpleEngine) getEdges(s, t VertexID) []EdgeID {
	if !e.containsEdge(s, t) {
		return nil
	}
	return []EdgeID{simpleEncode(e.directed, s, t)}
}

// allEdges iterates source-major, target-ascending; undirected edges are
// emitted once (when v <= neighbor) to avoid double counting the mirror.
func (e *simpleEngine) allEdges() []EdgeID {
	out := make([]EdgeID, 0, e.edges)
	for v := 0; v < len(e.succ); v++ {
		var nbrs []uint32
		e.succ[v].ForEach(func(k uint32) { nbrs = append(nbrs, k) })
		sortUint32(nbrs)
		for _, k := range nbrs {
			w := VertexID(k)
			if !e.directed && VertexID(v) > w {
				continue
			}
			out = append(out, simpleEncode(e.directed, VertexID(v), w))
		}
	}
	return out
}

func (e *simpleEngine) edgeDense() bool { return false }
func (e *simpleEngine) edgeIndex(EdgeID) int { panic("simple backend edges are not dense-indexed") }
func (e *simpleEngine) edgeAt(int) EdgeID { panic("simple backend edges are not dense-indexed") }
func (e *simpleEngine) ensureVertexCapacity(n int) {
	if n <= len(e.succ) {
		return
	}
	grown := make([]pset.Set32, n)
	copy(grown, e.succ)
	e.succ = grown[:len(e.succ)]
	if e.predMaterialized {
		grownP := make([]pset.Set32, n)
		copy(grownP, e.pred)
		e.pred = grownP[:len(e.pred)]
	}
}
func (e *simpleEngine) ensureEdgeCapacity(int) {} // identity-based; nothing to preallocate

// sortUint32 is a small insertion sort; adjacency sets are rarely large
// enough to justify sort.Slice's overhead, and deterministic iteration
// order only needs to be stable between mutations, not globally minimal.
func sortUint32(s []uint32) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
