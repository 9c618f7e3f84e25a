// SPDX-License-Identifier: MIT
//
// File: mutator.go
// Role: the keyed-value staging affordance over a Builder. A Mutator lets
// callers name vertices by their own comparable value instead of juggling
// staging indices: keyed edge adds auto-create endpoint vertices on first
// mention, and re-adding a known key is an idempotent lookup. Values flow
// into the builder's declared property stages so they are readable from the
// realized properties after Build.
package builder

import "github.com/kvlaran/densegraph/core"

// Mutator stages vertices and edges against a Builder, keyed by vertex
// values of type V and optionally tagging edges with values of type E.
// Either stage may be nil: a nil vertex stage means keyed vertices are
// tracked for identity only (their values are not readable after Build),
// and a nil edge stage makes value-tagged edge adds fail with Unsupported
// rather than silently dropping the caller's value.
type Mutator[V comparable, E any] struct {
	b  *Builder
	vs *VertexPropertyStage[V]
	es *EdgePropertyStage[E]

	byValue map[V]uint32
}

// NewMutator returns a Mutator over b. vs and es are the stages previously
// declared via WithVertexProperty/WithEdgeProperty, or nil when the
// corresponding values are not wanted.
func NewMutator[V comparable, E any](b *Builder, vs *VertexPropertyStage[V], es *EdgePropertyStage[E]) *Mutator[V, E] {
	return &Mutator[V, E]{b: b, vs: vs, es: es, byValue: make(map[V]uint32)}
}

// AddVertex stages an anonymous vertex and returns its staging identity.
func (m *Mutator[V, E]) AddVertex() core.VertexID {
	return core.VertexID(m.b.addVertex())
}

// AddVertexValue stages a vertex named by val, returning the existing
// identity if val was mentioned before (keys are idempotent). The value is
// recorded in the vertex property stage when one was declared.
func (m *Mutator[V, E]) AddVertexValue(val V) core.VertexID {
	if id, ok := m.byValue[val]; ok {
		return core.VertexID(id)
	}
	id := m.b.addVertex()
	m.byValue[val] = id
	if m.vs != nil {
		m.vs.set(id, val)
	}
	return core.VertexID(id)
}

// AddEdge stages an edge between two staging identities.
func (m *Mutator[V, E]) AddEdge(s, t core.VertexID) error {
	return m.b.addEdge(uint32(s), uint32(t))
}

// AddEdgeValue stages an edge between two staging identities and records
// val for it. Fails with Unsupported when no edge property was declared.
func (m *Mutator[V, E]) AddEdgeValue(s, t core.VertexID, val E) error {
	if m.es == nil {
		return wrapf(errUnsupported, "AddEdgeValue", "no edge property declared on this builder")
	}
	if err := m.b.addEdge(uint32(s), uint32(t)); err != nil {
		return err
	}
	m.es.add(uint32(s), uint32(t), val)
	return nil
}

// AddEdgeBetween stages an edge between the vertices named sv and tv,
// creating either vertex on first mention.
func (m *Mutator[V, E]) AddEdgeBetween(sv, tv V) error {
	s := m.AddVertexValue(sv)
	t := m.AddVertexValue(tv)
	return m.AddEdge(s, t)
}

// AddEdgeBetweenValue is AddEdgeBetween plus an edge value, with
// AddEdgeValue's Unsupported behavior when no edge property was declared.
func (m *Mutator[V, E]) AddEdgeBetweenValue(sv, tv V, val E) error {
	s := m.AddVertexValue(sv)
	t := m.AddVertexValue(tv)
	return m.AddEdgeValue(s, t, val)
}

// HasVertex reports whether val names a staged vertex.
func (m *Mutator[V, E]) HasVertex(val V) bool {
	_, ok := m.byValue[val]
	return ok
}

// GetVertex returns the staging identity named by val, or NoSuchElement if
// val was never mentioned.
func (m *Mutator[V, E]) GetVertex(val V) (core.VertexID, error) {
	id, ok := m.byValue[val]
	if !ok {
		return 0, wrapf(errNoSuchElement, "GetVertex", "no vertex staged for this value")
	}
	return core.VertexID(id), nil
}
