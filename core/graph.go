// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: the public facade over the two adjacency engines, giving both
// topology variants — simple and network (multi-edge) — one uniform Graph
// contract, plus the wiring that drives property and reference fan-out in
// the mandated order: topology rewrite, then property rehoming, then
// reference rebind.
//
// AI-HINT (file):
//   - Graph never mutates engine state from inside a registry callback;
//     fan-out always runs strictly after the engine call that produced it.
//   - Every topology query, degree and edge iteration included, is answered
//     by the engine itself; Graph adds vertex listing, views, dense-index
//     checks and fan-out on top.
package core

// vertexSwap describes one swap-and-pop relocation in the vertex dimension:
// the element at slot removed was deleted and the element that held identity
// survivor now holds identity removed. removed == survivor means "drop the
// slot, nothing to rehome".
type vertexSwap struct{ removed, survivor VertexID }

// edgeSwap describes one relocation in the edge dimension. Three identities
// are needed because on the network backend the survivor's post-move EdgeID
// keeps its own high word, so it need not equal removed:
//
//   - removed:  identity of the deleted edge (== rebound for pure relabels)
//   - survivor: pre-move identity of the edge that moves into removed's slot
//   - rebound:  post-move identity of that surviving edge
//   - relabel:  no edge was deleted; survivor was merely renamed to rebound
//     (simple backend only, when a vertex swap rewrites canonical encodings)
type edgeSwap struct {
	removed, survivor, rebound EdgeID
	relabel                    bool
}

// mutationResult accumulates the relocations a single engine call produced,
// in the order the engine discovered them. Graph fans these out to its
// property and reference registries after the engine call returns.
type mutationResult struct {
	vertexSwaps []vertexSwap
	edgeSwaps   []edgeSwap
}

// adjacencyEngine is the shared contract both concrete backends satisfy.
// Graph holds exactly one and forwards every topology operation to it.
type adjacencyEngine interface {
	isDirected() bool
	isMulti() bool
	vertexCount() int
	edgeCount() int

	addVertex() (VertexID, error)
	removeVertex(v VertexID, out *mutationResult) error

	addEdge(s, t VertexID) (EdgeID, error)
	removeEdge(e EdgeID, out *mutationResult) error

	outDegree(v VertexID) (int, error)
	inDegree(v VertexID) (int, error)
	successors(v VertexID) ([]VertexID, error)
	predecessors(v VertexID) ([]VertexID, error)
	outgoingEdges(v VertexID) ([]EdgeID, error)
	incomingEdges(v VertexID) ([]EdgeID, error)

	edgeSource(e EdgeID) (VertexID, error)
	edgeTarget(e EdgeID) (VertexID, error)
	edgeOpposite(e EdgeID, v VertexID) (VertexID, error)

	containsEdge(s, t VertexID) bool
	getEdge(s, t VertexID) (EdgeID, error)
	getEdges(s, t VertexID) []EdgeID

	hasVertex(v VertexID) bool
	hasEdge(e EdgeID) bool

	allEdges() []EdgeID

	// edgeDense reports whether edge identities double as dense array
	// indices on this engine (true for network, false for simple), and if
	// so the index to use. edgeAt reconstructs the full EdgeID for a dense
	// index; only called when edgeDense() is true.
	edgeDense() bool
	edgeIndex(e EdgeID) int
	edgeAt(i int) EdgeID

	ensureVertexCapacity(n int)
	ensureEdgeCapacity(n int)
}

// Graph is the caller-facing engine handle: one of the four
// (directed|undirected) × (simple|network) mutable topology variants, or a
// frozen graph produced by finalize, plus the property and reference
// registries that keep synchronized state across every mutation.
type Graph struct {
	engine adjacencyEngine

	vertexReg *registry[VertexID]
	edgeReg   *registry[EdgeID]

	vertexRefs *refTracker[VertexID]
	edgeRefs   *refTracker[EdgeID]

	metrics *engineMetrics
}

// EngineOption configures a Graph at construction.
type EngineOption func(*engineConfig)

type engineConfig struct {
	network     bool // use the network (indexed edge-id) backend
	allowMulti  bool // permit parallel edges on that backend
	withMetrics bool
}

// WithMultiEdgeSupport selects the network backend, permitting parallel
// edges between the same ordered pair of vertices.
func WithMultiEdgeSupport() EngineOption {
	return func(c *engineConfig) { c.network = true; c.allowMulti = true }
}

// WithIndexedEdges requests the network backend even for a graph that will
// not necessarily carry multi-edges, because callers want edge identity
// independent of endpoint identity (stable edge-ids across endpoint
// relabeling). Unlike WithMultiEdgeSupport, parallel edges are still
// rejected — only the storage shape changes.
func WithIndexedEdges() EngineOption {
	return func(c *engineConfig) { c.network = true }
}

// WithMetrics attaches a lazily-registered prometheus.Collector to the
// engine; see metrics.go.
func WithMetrics() EngineOption { return func(c *engineConfig) { c.withMetrics = true } }

// NewMutable constructs a mutable Graph. directed selects directed vs.
// undirected edges; options select backend variant and instrumentation.
func NewMutable(directed bool, opts ...EngineOption) *Graph {
	cfg := engineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Graph{
		vertexReg:  &registry[VertexID]{},
		edgeReg:    &registry[EdgeID]{},
		vertexRefs: newRefTracker[VertexID](),
		edgeRefs:   newRefTracker[EdgeID](),
	}
	if cfg.network {
		g.engine = newNetworkEngine(directed, cfg.allowMulti)
	} else {
		g.engine = newSimpleEngine(directed)
	}
	if cfg.withMetrics {
		g.metrics = newEngineMetrics(g)
	}
	return g
}

// Directed reports whether the graph's edges are directed.
func (g *Graph) Directed() bool { return g.engine.isDirected() }

// Multigraph reports whether the graph's backend supports parallel edges.
func (g *Graph) Multigraph() bool { return g.engine.isMulti() }

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return g.engine.vertexCount() }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return g.engine.edgeCount() }

// AddVertex appends a new vertex and returns its identity. Fails with
// Unsupported on an immutable (frozen) graph.
func (g *Graph) AddVertex() (VertexID, error) {
	v, err := g.engine.addVertex()
	if err != nil {
		return 0, err
	}
	g.metrics.observe("add_vertex")
	return v, nil
}

// RemoveVertex deletes v and every edge incident to it, compacting the
// vertex space via swap-and-pop. Fans out to properties then references,
// strictly after the engine has finished rewriting topology.
func (g *Graph) RemoveVertex(v VertexID) error {
	var result mutationResult
	if err := g.engine.removeVertex(v, &result); err != nil {
		return err
	}
	g.applyFanOut(&result)
	g.metrics.observe("remove_vertex")
	return nil
}

// AddEdge creates an edge from s to t and returns its identity.
func (g *Graph) AddEdge(s, t VertexID) (EdgeID, error) {
	id, err := g.engine.addEdge(s, t)
	if err != nil {
		return id, err
	}
	g.metrics.observe("add_edge")
	return id, nil
}

// RemoveEdge deletes e, compacting edge-id space (network backend only;
// simple-backend edge identity equals topology, so removal is a pure drop
// with no id to rehome). Fans out to properties then references.
func (g *Graph) RemoveEdge(e EdgeID) error {
	var result mutationResult
	if err := g.engine.removeEdge(e, &result); err != nil {
		return err
	}
	g.applyFanOut(&result)
	g.metrics.observe("remove_edge")
	return nil
}

// applyFanOut broadcasts the relocations of one finished mutation: all
// property rehoming first, then all reference rebinding, so reference
// callbacks observe post-mutation property state. Edge events precede vertex
// events within each wave because the engines drain incident edges before
// compacting the vertex space.
func (g *Graph) applyFanOut(result *mutationResult) {
	for _, sw := range result.edgeSwaps {
		g.edgeReg.fanOut(sw.removed, sw.survivor)
	}
	for _, sw := range result.vertexSwaps {
		g.vertexReg.fanOut(sw.removed, sw.survivor)
	}
	for _, sw := range result.edgeSwaps {
		g.edgeRefs.rehome(sw.removed, sw.survivor, sw.rebound, sw.relabel)
	}
	for _, sw := range result.vertexSwaps {
		g.vertexRefs.rehome(sw.removed, sw.survivor, sw.removed, false)
	}
}

// OutDegree returns the number of outgoing edges of v (undirected: all
// incident edges, self-loop counted once).
func (g *Graph) OutDegree(v VertexID) (int, error) { return g.engine.outDegree(v) }

// InDegree returns the number of incoming edges of v.
func (g *Graph) InDegree(v VertexID) (int, error) { return g.engine.inDegree(v) }

// Successors returns a snapshot of v's outgoing neighbors, one entry per
// outgoing edge (a neighbor repeats once per parallel edge).
func (g *Graph) Successors(v VertexID) ([]VertexID, error) { return g.engine.successors(v) }

// Predecessors returns a snapshot of v's incoming neighbors, one entry per
// incoming edge.
func (g *Graph) Predecessors(v VertexID) ([]VertexID, error) { return g.engine.predecessors(v) }

// OutgoingEdges returns a snapshot of v's outgoing edge identities.
func (g *Graph) OutgoingEdges(v VertexID) ([]EdgeID, error) { return g.engine.outgoingEdges(v) }

// IncomingEdges returns a snapshot of v's incoming edge identities.
func (g *Graph) IncomingEdges(v VertexID) ([]EdgeID, error) { return g.engine.incomingEdges(v) }

// EdgeSource returns e's canonical source endpoint.
func (g *Graph) EdgeSource(e EdgeID) (VertexID, error) { return g.engine.edgeSource(e) }

// EdgeTarget returns e's canonical target endpoint.
func (g *Graph) EdgeTarget(e EdgeID) (VertexID, error) { return g.engine.edgeTarget(e) }

// EdgeOpposite returns the endpoint of e that is not v.
func (g *Graph) EdgeOpposite(e EdgeID, v VertexID) (VertexID, error) {
	return g.engine.edgeOpposite(e, v)
}

// ContainsEdge reports whether any edge exists from s to t.
func (g *Graph) ContainsEdge(s, t VertexID) bool { return g.engine.containsEdge(s, t) }

// GetEdge returns one edge from s to t (in multi-edge mode, an arbitrary
// one of possibly several), or ErrNoSuchElement if none exists.
func (g *Graph) GetEdge(s, t VertexID) (EdgeID, error) { return g.engine.getEdge(s, t) }

// GetEdges returns every edge from s to t, in no specified order.
func (g *Graph) GetEdges(s, t VertexID) []EdgeID { return g.engine.getEdges(s, t) }

// Vertices returns every live vertex identity, in identity order.
func (g *Graph) Vertices() []VertexID {
	n := g.engine.vertexCount()
	out := make([]VertexID, n)
	for i := range out {
		out[i] = VertexID(i)
	}
	return out
}

// Edges returns every live edge identity. On the simple backend this is
// source-major, target-ascending with each undirected edge emitted once;
// on the network backend it is edge-id ascending.
func (g *Graph) Edges() []EdgeID { return g.engine.allEdges() }

// EnsureVertexCapacity hints that n vertices are expected; preserves
// semantics.
func (g *Graph) EnsureVertexCapacity(n int) { g.engine.ensureVertexCapacity(n) }

// EnsureEdgeCapacity hints that n edges are expected; preserves semantics.
func (g *Graph) EnsureEdgeCapacity(n int) { g.engine.ensureEdgeCapacity(n) }

// MultiEdge reports whether the graph currently contains at least one pair
// of parallel edges (never true on the simple backend).
func (g *Graph) MultiEdge() bool {
	type multiReporter interface{ hasMultiEdges() bool }
	if m, ok := g.engine.(multiReporter); ok {
		return m.hasMultiEdges()
	}
	return false
}

// CreateVertexReference returns a stable handle to v: its Current identity
// tracks v's element across swap-and-pop relabeling, and the handle is
// invalidated when that element is removed. Repeated calls for the same live
// element return handles that compare Equal.
func (g *Graph) CreateVertexReference(v VertexID) (VertexRef, error) {
	if !g.engine.hasVertex(v) {
		return VertexRef{}, wrapf(ErrInvalidArgument, "CreateVertexReference", "vertex %d does not exist", v)
	}
	return g.vertexRefs.create(v), nil
}

// CreateEdgeReference returns a stable handle to e, rebinding across edge-id
// compaction on the network backend and canonical-encoding rewrites on the
// simple backend.
func (g *Graph) CreateEdgeReference(e EdgeID) (EdgeRef, error) {
	if !g.engine.hasEdge(e) {
		return EdgeRef{}, wrapf(ErrInvalidArgument, "CreateEdgeReference", "edge %v does not exist", e)
	}
	return g.edgeRefs.create(e), nil
}

// EdgeAt returns the edge at dense index i. Only the network and frozen
// backends index edges densely; the simple backend fails with Unsupported
// because its edge identity is topology, not position.
func (g *Graph) EdgeAt(i int) (EdgeID, error) {
	if !g.engine.edgeDense() {
		return 0, wrapf(ErrUnsupported, "EdgeAt", "edges are not dense-indexed on this backend")
	}
	if i < 0 || i >= g.engine.edgeCount() {
		return 0, wrapf(ErrInvalidArgument, "EdgeAt", "index %d out of range", i)
	}
	return g.engine.edgeAt(i), nil
}

// EdgeIndexOf returns e's dense index, the inverse of EdgeAt. Fails with
// Unsupported on the simple backend and InvalidArgument for an unknown edge.
func (g *Graph) EdgeIndexOf(e EdgeID) (int, error) {
	if !g.engine.edgeDense() {
		return 0, wrapf(ErrUnsupported, "EdgeIndexOf", "edges are not dense-indexed on this backend")
	}
	if !g.engine.hasEdge(e) {
		return 0, wrapf(ErrInvalidArgument, "EdgeIndexOf", "edge %v does not exist", e)
	}
	return g.engine.edgeIndex(e), nil
}
