// SPDX-License-Identifier: MIT

// Package builder stages a graph by key or by raw identity and finalizes
// it into an immutable core.Graph. Build via keys lets
// callers name vertices with their own comparable type and never see a
// core.VertexID until the graph is built; build via identity works
// directly against core.VertexID for callers who already have one.
//
// The package offers:
//
//   - Builder: engine-shaped staging (directed/multi-edge/optimize-edges
//     configuration, a sparse per-vertex neighbor set) with AddVertex and
//     AddEdge for identity-based staging.
//   - WithVertexProperty / WithEdgeProperty: typed value staging declared
//     up front; the stage object hands back the realized
//     core.VertexProperty/core.EdgeProperty after Build.
//   - Mutator[V, E]: the keyed-value affordance over a Builder —
//     AddVertexValue, AddEdgeValue, AddEdgeBetween, AddEdgeBetweenValue,
//     HasVertex, GetVertex. Keyed edge-adds auto-create vertices on first
//     mention.
//   - Build: finalizes the stage into an immutable core.Graph and realizes
//     every declared property against it.
//
// Guarantees:
//
//   - Idempotent vertex keys: re-adding the same key returns the same
//     identity rather than creating a duplicate vertex.
//   - Structured errors via errors.Is against the core package's sentinel
//     taxonomy (core.ErrInvalidArgument, core.ErrAlreadyExists, ...), so
//     callers branch on one error vocabulary across the whole module.
//   - Unsupported is returned, not silently accepted, when a value-tagged
//     add is called without a property having been requested for that
//     element kind.
package builder
