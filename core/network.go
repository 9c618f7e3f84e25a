// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: the network adjacency engine — the multi-edge-capable
// backend, selected by WithMultiEdgeSupport or WithIndexedEdges. Edge
// identity here is an assigned dense edge-id, independent of the endpoints
// it connects: the id (and the EdgeID built from it) survives endpoint
// relabeling caused by vertex swap-and-pop, which is the whole reason a
// caller reaches for this backend over the simple one.
package core

import "github.com/kvlaran/densegraph/internal/pset"

// edgeEndpoints is the mutable record of an edge-id's current endpoints.
// Vertex removal rewrites these entries in place when a vertex is renamed;
// the edge-id and its EdgeID encoding never change as a result.
type edgeEndpoints struct {
	source, target VertexID
}

// networkEngine backs graphs constructed with WithMultiEdgeSupport or
// WithIndexedEdges. Adjacency maps a neighbor to the list of edge-ids
// connecting to it, so a neighbor with more than one entry is a parallel
// edge; edgeTable and edgeHint are indexed by edge-id and compact on
// removal via swap-and-pop, exactly like the vertex dimension.
type networkEngine struct {
	directed   bool
	allowMulti bool

	succ []pset.Map32[[]uint32]
	pred []pset.Map32[[]uint32]

	predMaterialized bool

	// edgeTable[i] holds the current (possibly relabeled) endpoints of
	// edge-id i; edgeHint[i] holds the EdgeID high word fixed at creation,
	// which is never rewritten by a vertex relabel.
	edgeTable []edgeEndpoints
	edgeHint  []uint32

	// multiAdj counts adjacency entries (vertex, neighbor) currently
	// holding two or more edge-ids, giving hasMultiEdges O(1).
	multiAdj int
}

func newNetworkEngine(directed, allowMulti bool) *networkEngine {
	return &networkEngine{directed: directed, allowMulti: allowMulti}
}

func networkHint(directed bool, source, target VertexID) uint32 {
	if directed {
		return uint32(target)
	}
	_, hi := canonicalPair(source, target)
	return uint32(hi)
}

func (e *networkEngine) isDirected() bool { return e.directed }
func (e *networkEngine) isMulti() bool { return e.allowMulti }
func (e *networkEngine) vertexCount() int { return len(e.succ) }
func (e *networkEngine) edgeCount() int { return len(e.edgeTable) }

func (e *networkEngine) hasVertex(v VertexID) bool { return int(v) < len(e.succ) }

func (e *networkEngine) hasEdge(id EdgeID) bool {
	idx := id.low()
	return int(idx) < len(e.edgeTable) && e.edgeHint[idx] == id.high()
}

func (e *networkEngine) edgeDense() bool { return true }
func (e *networkEngine) edgeIndex(id EdgeID) int { return int(id.low()) }
func (e *networkEngine) edgeAt(i int) EdgeID { return encodeEdge(e.edgeHint[i], uint32(i)) }

func (e *networkEngine) ensureVertexCapacity(n int) {
	if n <= len(e.succ) {
		return
	}
	grown := make([]pset.Map32[[]uint32], len(e.succ), n)
	copy(grown, e.succ)
	e.succ = grown
	if e.predMaterialized {
		grownPred := make([]pset.Map32[[]uint32], len(e.pred), n)
		copy(grownPred, e.pred)
		e.pred = grownPred
	}
}

func (e *networkEngine) ensureEdgeCapacity(n int) {
	if n <= cap(e.edgeTable) {
		return
	}
	grown := make([]edgeEndpoints, len(e.edgeTable), n)
	copy(grown, e.edgeTable)
	e.edgeTable = grown
	grownHint := make([]uint32, len(e.edgeHint), n)
	copy(grownHint, e.edgeHint)
	e.edgeHint = grownHint
}

func (e *networkEngine) ensurePred() {
	if e.predMaterialized {
		return
	}
	e.pred = make([]pset.Map32[[]uint32], len(e.succ))
	for id, ends := range e.edgeTable {
		e.appendAdjacency(&e.pred[ends.target], ends.source, uint32(id))
	}
	e.predMaterialized = true
}

func (e *networkEngine) addVertex() (VertexID, error) {
	id := VertexID(len(e.succ))
	e.succ = append(e.succ, pset.Map32[[]uint32]{})
	if e.predMaterialized {
		e.pred = append(e.pred, pset.Map32[[]uint32]{})
	}
	return id, nil
}

// appendAdjacency appends id to m's list for neighbor, bumping multiAdj
// when the list crosses from one entry to two.
func (e *networkEngine) appendAdjacency(m *pset.Map32[[]uint32], neighbor VertexID, id uint32) {
	list, existed := m.Get(uint32(neighbor))
	wasSingle := existed && len(list) == 1
	list = append(list, id)
	m.Set(uint32(neighbor), list)
	if wasSingle {
		e.multiAdj++
	}
}

// removeAdjacency drops id from m's list for neighbor, deleting the key
// entirely once empty and decrementing multiAdj when the list collapses
// from two entries back to one.
func (e *networkEngine) removeAdjacency(m *pset.Map32[[]uint32], neighbor VertexID, id uint32) {
	list, ok := m.Get(uint32(neighbor))
	if !ok {
		return
	}
	idx := -1
	for i, x := range list {
		if x == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	wasPair := len(list) == 2
	last := len(list) - 1
	list[idx] = list[last]
	list = list[:last]
	if len(list) == 0 {
		m.Delete(uint32(neighbor))
	} else {
		m.Set(uint32(neighbor), list)
	}
	if wasPair {
		e.multiAdj--
	}
}

// relabelAdjacencyKey moves m's entry for oldKey (if any) to newKey. Used
// when a vertex is renamed by swap-and-pop; newKey is never already present
// since the renamed vertex had no remaining incident edges at that point.
func relabelAdjacencyKey(m *pset.Map32[[]uint32], oldKey, newKey VertexID) {
	list, ok := m.Get(uint32(oldKey))
	if !ok {
		return
	}
	m.Delete(uint32(oldKey))
	m.Set(uint32(newKey), list)
}

func (e *networkEngine) addEdge(s, t VertexID) (EdgeID, error) {
	if !e.hasVertex(s) {
		return 0, wrapf(ErrInvalidArgument, "AddEdge", "source vertex %d does not exist", s)
	}
	if !e.hasVertex(t) {
		return 0, wrapf(ErrInvalidArgument, "AddEdge", "target vertex %d does not exist", t)
	}
	if !e.allowMulti {
		if list, ok := e.succ[s].Get(uint32(t)); ok && len(list) > 0 {
			return 0, wrapf(ErrAlreadyExists, "AddEdge", "edge %d->%d already exists", s, t)
		}
	}
	id := uint32(len(e.edgeTable))
	e.edgeTable = append(e.edgeTable, edgeEndpoints{source: s, target: t})
	hint := networkHint(e.directed, s, t)
	e.edgeHint = append(e.edgeHint, hint)

	e.appendAdjacency(&e.succ[s], t, id)
	if !e.directed {
		if s != t {
			e.appendAdjacency(&e.succ[t], s, id)
		}
	} else if e.predMaterialized {
		e.appendAdjacency(&e.pred[t], s, id)
	}
	return encodeEdge(hint, id), nil
}

func (e *networkEngine) removeEdge(id EdgeID, out *mutationResult) error {
	if !e.hasEdge(id) {
		return wrapf(ErrInvalidArgument, "RemoveEdge", "edge %v does not exist", id)
	}
	k := id.low()
	ends := e.edgeTable[k]

	e.removeAdjacency(&e.succ[ends.source], ends.target, k)
	if !e.directed {
		if ends.source != ends.target {
			e.removeAdjacency(&e.succ[ends.target], ends.source, k)
		}
	} else if e.predMaterialized {
		e.removeAdjacency(&e.pred[ends.target], ends.source, k)
	}

	last := uint32(len(e.edgeTable) - 1)
	if k != last {
		lastEnds := e.edgeTable[last]
		lastHint := e.edgeHint[last]
		oldID := encodeEdge(lastHint, last)
		newID := encodeEdge(lastHint, k)

		replaceEdgeIDInList(&e.succ[lastEnds.source], lastEnds.target, last, k)
		if !e.directed {
			if lastEnds.source != lastEnds.target {
				replaceEdgeIDInList(&e.succ[lastEnds.target], lastEnds.source, last, k)
			}
		} else if e.predMaterialized {
			replaceEdgeIDInList(&e.pred[lastEnds.target], lastEnds.source, last, k)
		}

		e.edgeTable[k] = lastEnds
		e.edgeHint[k] = lastHint
		out.edgeSwaps = append(out.edgeSwaps, edgeSwap{removed: id, survivor: oldID, rebound: newID})
	} else {
		out.edgeSwaps = append(out.edgeSwaps, edgeSwap{removed: id, survivor: id, rebound: id})
	}
	e.edgeTable = e.edgeTable[:last]
	e.edgeHint = e.edgeHint[:last]
	return nil
}

func replaceEdgeIDInList(m *pset.Map32[[]uint32], neighbor VertexID, oldID, newID uint32) {
	list, ok := m.Get(uint32(neighbor))
	if !ok {
		return
	}
	for i, x := range list {
		if x == oldID {
			list[i] = newID
			break
		}
	}
	m.Set(uint32(neighbor), list)
}

func (e *networkEngine) outDegree(v VertexID) (int, error) {
	if !e.hasVertex(v) {
		return 0, wrapf(ErrInvalidArgument, "OutDegree", "vertex %d does not exist", v)
	}
	total := 0
	e.succ[v].ForEach(func(_ uint32, ids []uint32) { total += len(ids) })
	return total, nil
}

func (e *networkEngine) inDegree(v VertexID) (int, error) {
	if !e.hasVertex(v) {
		return 0, wrapf(ErrInvalidArgument, "InDegree", "vertex %d does not exist", v)
	}
	if !e.directed {
		return e.outDegree(v)
	}
	e.ensurePred()
	total := 0
	e.pred[v].ForEach(func(_ uint32, ids []uint32) { total += len(ids) })
	return total, nil
}

// successors returns one entry per outgoing edge (a multiset when parallel
// edges exist to the same neighbor), so |successors(v)| == outDegree(v)
// holds uniformly across both backends.
func (e *networkEngine) successors(v VertexID) ([]VertexID, error) {
	if !e.hasVertex(v) {
		return nil, wrapf(ErrInvalidArgument, "Successors", "vertex %d does not exist", v)
	}
	var out []VertexID
	e.succ[v].ForEach(func(neighbor uint32, ids []uint32) {
		for range ids {
			out = append(out, VertexID(neighbor))
		}
	})
	return out, nil
}

func (e *networkEngine) predecessors(v VertexID) ([]VertexID, error) {
	if !e.hasVertex(v) {
		return nil, wrapf(ErrInvalidArgument, "Predecessors", "vertex %d does not exist", v)
	}
	if !e.directed {
		return e.successors(v)
	}
	e.ensurePred()
	var out []VertexID
	e.pred[v].ForEach(func(neighbor uint32, ids []uint32) {
		for range ids {
			out = append(out, VertexID(neighbor))
		}
	})
	return out, nil
}

func (e *networkEngine) outgoingEdges(v VertexID) ([]EdgeID, error) {
	if !e.hasVertex(v) {
		return nil, wrapf(ErrInvalidArgument, "OutgoingEdges", "vertex %d does not exist", v)
	}
	var out []EdgeID
	e.succ[v].ForEach(func(_ uint32, ids []uint32) {
		for _, id := range ids {
			out = append(out, encodeEdge(e.edgeHint[id], id))
		}
	})
	return out, nil
}

func (e *networkEngine) incomingEdges(v VertexID) ([]EdgeID, error) {
	if !e.hasVertex(v) {
		return nil, wrapf(ErrInvalidArgument, "IncomingEdges", "vertex %d does not exist", v)
	}
	if !e.directed {
		return e.outgoingEdges(v)
	}
	e.ensurePred()
	var out []EdgeID
	e.pred[v].ForEach(func(_ uint32, ids []uint32) {
		for _, id := range ids {
			out = append(out, encodeEdge(e.edgeHint[id], id))
		}
	})
	return out, nil
}

func (e *networkEngine) edgeSource(id EdgeID) (VertexID, error) {
	if !e.hasEdge(id) {
		return 0, wrapf(ErrInvalidArgument, "EdgeSource", "edge %v does not exist", id)
	}
	return e.edgeTable[id.low()].source, nil
}

func (e *networkEngine) edgeTarget(id EdgeID) (VertexID, error) {
	if !e.hasEdge(id) {
		return 0, wrapf(ErrInvalidArgument, "EdgeTarget", "edge %v does not exist", id)
	}
	return e.edgeTable[id.low()].target, nil
}

func (e *networkEngine) edgeOpposite(id EdgeID, v VertexID) (VertexID, error) {
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

func (e *networkEngine) containsEdge(s, t VertexID) bool {
	if !e.hasVertex(s) {
		return false
	}
	list, ok := e.succ[s].Get(uint32(t))
	return ok && len(list) > 0
}

func (e *networkEngine) getEdge(s, t VertexID) (EdgeID, error) {
	if !e.hasVertex(s) {
		return 0, wrapf(ErrInvalidArgument, "GetEdge", "source vertex %d does not exist", s)
	}
	list, ok := e.succ[s].Get(uint32(t))
	if !ok || len(list) == 0 {
		return 0, wrapf(ErrNoSuchElement, "GetEdge", "no edge %d->%d", s, t)
	}
	id := list[0]
	return encodeEdge(e.edgeHint[id], id), nil
}

func (e *networkEngine) getEdges(s, t VertexID) []EdgeID {
	if !e.hasVertex(s) {
		return nil
	}
	list, ok := e.succ[s].Get(uint32(t))
	if !ok {
		return nil
	}
	out := make([]EdgeID, len(list))
	for i, id := range list {
		out[i] = encodeEdge(e.edgeHint[id], id)
	}
	return out
}

func (e *networkEngine) allEdges() []EdgeID {
	out := make([]EdgeID, len(e.edgeTable))
	for id := range e.edgeTable {
		out[id] = encodeEdge(e.edgeHint[id], uint32(id))
	}
	return out
}

func (e *networkEngine) hasMultiEdges() bool { return e.multiAdj > 0 }

// firstOutgoingEdge returns an arbitrary outgoing edge-id of v, if any.
func (e *networkEngine) firstOutgoingEdge(v VertexID) (uint32, bool) {
	var id uint32
	found := false
	e.succ[v].ForEach(func(_ uint32, ids []uint32) {
		if !found && len(ids) > 0 {
			id = ids[0]
			found = true
		}
	})
	return id, found
}

// firstIncomingEdge returns an arbitrary incoming edge-id of v, if any.
// Only meaningful once pred has been materialized by the caller.
func (e *networkEngine) firstIncomingEdge(v VertexID) (uint32, bool) {
	var id uint32
	found := false
	e.pred[v].ForEach(func(_ uint32, ids []uint32) {
		if !found && len(ids) > 0 {
			id = ids[0]
			found = true
		}
	})
	return id, found
}

// removeVertex drains every edge incident to v through removeEdge (so edge
// compaction and property/reference fan-out happen exactly as they would
// for an explicit RemoveEdge call), then compacts the vertex space via
// swap-and-pop, relabeling the moved vertex's adjacency keys and any
// edgeTable rows that named it as an endpoint. The edge-id and EdgeID of
// every surviving edge are untouched by this relabeling — only its
// recorded endpoints change.
func (e *networkEngine) removeVertex(v VertexID, out *mutationResult) error {
	if !e.hasVertex(v) {
		return wrapf(ErrInvalidArgument, "RemoveVertex", "vertex %d does not exist", v)
	}
	for {
		id, found := e.firstOutgoingEdge(v)
		if !found {
			break
		}
		if err := e.removeEdge(encodeEdge(e.edgeHint[id], id), out); err != nil {
			return err
		}
	}
	if e.directed {
		e.ensurePred()
		for {
			id, found := e.firstIncomingEdge(v)
			if !found {
				break
			}
			if err := e.removeEdge(encodeEdge(e.edgeHint[id], id), out); err != nil {
				return err
			}
		}
	}

	n := len(e.succ)
	last := VertexID(n - 1)
	if v != last {
		var lastOut []VertexID
		e.succ[last].ForEach(func(neighbor uint32, _ []uint32) { lastOut = append(lastOut, VertexID(neighbor)) })
		for _, w := range lastOut {
			if w == last {
				continue
			}
			if e.directed {
				if e.predMaterialized {
					relabelAdjacencyKey(&e.pred[w], last, v)
				}
			} else {
				relabelAdjacencyKey(&e.succ[w], last, v)
			}
		}
		if e.directed {
			var lastIn []VertexID
			if e.predMaterialized {
				e.pred[last].ForEach(func(neighbor uint32, _ []uint32) { lastIn = append(lastIn, VertexID(neighbor)) })
			}
			for _, u := range lastIn {
				if u == last {
					continue
				}
				relabelAdjacencyKey(&e.succ[u], last, v)
			}
		}

		e.succ[v] = e.succ[last]
		relabelAdjacencyKey(&e.succ[v], last, v)
		if e.directed && e.predMaterialized {
			e.pred[v] = e.pred[last]
			relabelAdjacencyKey(&e.pred[v], last, v)
		}

		e.relabelEdgeEndpoint(last, v)
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

// relabelEdgeEndpoint rewrites the edgeTable rows naming old as an endpoint
// to name new instead. The affected rows are exactly the edges incident to
// the moved vertex, so the rewrite walks its (already moved) adjacency
// rather than the whole table. It does not touch edgeHint, since an
// edge-id's EdgeID encoding is fixed at creation and is defined to be
// stable against endpoint relabeling.
func (e *networkEngine) relabelEdgeEndpoint(old, new VertexID) {
	fix := func(_ uint32, ids []uint32) {
		for _, id := range ids {
			if e.edgeTable[id].source == old {
				e.edgeTable[id].source = new
			}
			if e.edgeTable[id].target == old {
				e.edgeTable[id].target = new
			}
		}
	}
	e.succ[new].ForEach(fix)
	if e.directed && e.predMaterialized {
		e.pred[new].ForEach(fix)
	}
}
