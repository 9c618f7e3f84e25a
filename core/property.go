// SPDX-License-Identifier: MIT
//
// File: property.go
// Role: the public property surface over the dense/hash
// containers in property_dense.go and property_hash.go — the part callers
// actually hold onto. CreateVertexProperty always picks the dense
// container, since VertexID is always a backing-vector index; edge
// properties pick dense on the network backend (EdgeID.low() is already a
// dense index) and hash on the simple backend (EdgeID is topology-derived,
// not positional).
//
// Go has no generic methods, so the constructors below are package-level
// functions parameterized over T rather than methods on Graph; Graph
// itself stays a plain, non-generic type that can host any number of
// differently-typed properties.
package core

// VertexProperty is a total map from a graph's current vertex set to T,
// created via CreateVertexProperty and kept synchronized across every
// structural mutation for as long as it is reachable.
type VertexProperty[T any] struct {
	g     *Graph
	store *denseStore[T]
}

// CreateVertexProperty registers a new vertex property on g. init, if
// non-nil, lazily computes a value for a vertex on its first access; if
// nil, Get on an untouched vertex fails with InvalidState. The returned
// property is registered as a weak subscriber of g: once the caller drops
// its last reference, the property stops receiving fan-out and is pruned
// from g's registry on the next mutation.
func CreateVertexProperty[T any](g *Graph, init func(VertexID) T) *VertexProperty[T] {
	store := &denseStore[T]{}
	if init != nil {
		store.initFn = func(i int) T { return init(VertexID(i)) }
	}
	p := &VertexProperty[T]{g: g, store: store}
	alive := g.vertexReg.register(func(removed, survivor VertexID) {
		store.swapAndRemove(int(removed), int(survivor))
	})
	markLiveUntilFinalized(p, alive)
	if g.frozen() && init != nil {
		// Frozen graphs admit concurrent readers, so initialization cannot
		// be deferred to first Get; fill every slot now while the property
		// is still exclusively owned.
		for i, n := 0, g.engine.vertexCount(); i < n; i++ {
			store.get(i)
		}
	}
	return p
}

// Graph returns the property's owning graph.
func (p *VertexProperty[T]) Graph() *Graph { return p.g }

// Get returns v's stored value, lazily initializing it on first access if
// an initializer was supplied at creation. Fails with InvalidArgument if v
// is unknown to the owning engine, or InvalidState if it has no value and
// no initializer was supplied.
func (p *VertexProperty[T]) Get(v VertexID) (T, error) {
	if !p.g.engine.hasVertex(v) {
		var zero T
		return zero, wrapf(ErrInvalidArgument, "VertexProperty.Get", "vertex %d does not exist", v)
	}
	val, ok := p.store.get(int(v))
	if !ok {
		var zero T
		return zero, wrapf(ErrInvalidState, "VertexProperty.Get", "vertex %d has no value and no initializer", v)
	}
	return val, nil
}

// Set writes v's value unconditionally. Fails with InvalidArgument if v is
// unknown to the owning engine.
func (p *VertexProperty[T]) Set(v VertexID, val T) error {
	if !p.g.engine.hasVertex(v) {
		return wrapf(ErrInvalidArgument, "VertexProperty.Set", "vertex %d does not exist", v)
	}
	p.store.set(int(v), val)
	return nil
}

// EdgeProperty is a total map from a graph's current edge set to T,
// created via CreateEdgeProperty. Backed by a dense array on the network
// backend and a hash map on the simple backend, chosen automatically from
// the owning engine's edgeDense() flag.
type EdgeProperty[T any] struct {
	g      *Graph
	dense  *denseStore[T]
	hashed *hashStore[T]
}

// CreateEdgeProperty registers a new edge property on g, selecting a
// dense or hash-keyed backing store according to the owning engine's edge
// identity shape. init behaves as in CreateVertexProperty.
func CreateEdgeProperty[T any](g *Graph, init func(EdgeID) T) *EdgeProperty[T] {
	p := &EdgeProperty[T]{g: g}
	var alive *bool
	if g.engine.edgeDense() {
		dense := &denseStore[T]{}
		if init != nil {
			dense.initFn = func(i int) T { return init(g.engine.edgeAt(i)) }
		}
		p.dense = dense
		alive = g.edgeReg.register(func(removed, survivor EdgeID) {
			ri, si := g.engine.edgeIndex(removed), g.engine.edgeIndex(survivor)
			if ri != si && init != nil {
				// The engine has already truncated its edge table, so edgeAt
				// cannot resolve si; a lazily unset survivor is initialized
				// here from the pre-move identity the event carries.
				dense.ensure(si + 1)
				if !dense.has[si] {
					dense.set(si, init(survivor))
				}
			}
			dense.swapAndRemove(ri, si)
		})
	} else {
		hashed := &hashStore[T]{}
		if init != nil {
			hashed.initFn = func(key uint64) T { return init(EdgeID(key)) }
		}
		p.hashed = hashed
		alive = g.edgeReg.register(func(removed, survivor EdgeID) {
			hashed.swapAndRemove(uint64(removed), uint64(survivor))
		})
	}
	markLiveUntilFinalized(p, alive)
	if g.frozen() && init != nil {
		// Same eager fill as CreateVertexProperty: a frozen graph's
		// properties must be read-only after creation.
		for i, n := 0, g.engine.edgeCount(); i < n; i++ {
			p.dense.get(i)
		}
	}
	return p
}

// frozen reports whether g was produced by an immutable finalize and will
// never mutate again.
func (g *Graph) frozen() bool {
	_, ok := g.engine.(*frozenEngine)
	return ok
}

// Graph returns the property's owning graph.
func (p *EdgeProperty[T]) Graph() *Graph { return p.g }

// Get returns e's stored value, lazily initializing it on first access if
// an initializer was supplied at creation. Fails with InvalidArgument if e
// is unknown to the owning engine, or InvalidState if it has no value and
// no initializer was supplied.
func (p *EdgeProperty[T]) Get(e EdgeID) (T, error) {
	if !p.g.engine.hasEdge(e) {
		var zero T
		return zero, wrapf(ErrInvalidArgument, "EdgeProperty.Get", "edge %v does not exist", e)
	}
	var val T
	var ok bool
	if p.dense != nil {
		val, ok = p.dense.get(p.g.engine.edgeIndex(e))
	} else {
		val, ok = p.hashed.get(uint64(e))
	}
	if !ok {
		var zero T
		return zero, wrapf(ErrInvalidState, "EdgeProperty.Get", "edge %v has no value and no initializer", e)
	}
	return val, nil
}

// Set writes e's value unconditionally. Fails with InvalidArgument if e is
// unknown to the owning engine.
func (p *EdgeProperty[T]) Set(e EdgeID, val T) error {
	if !p.g.engine.hasEdge(e) {
		return wrapf(ErrInvalidArgument, "EdgeProperty.Set", "edge %v does not exist", e)
	}
	if p.dense != nil {
		p.dense.set(p.g.engine.edgeIndex(e), val)
	} else {
		p.hashed.set(uint64(e), val)
	}
	return nil
}
