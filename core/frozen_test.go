// SPDX-License-Identifier: MIT
// Frozen-engine contracts: sorted finalize ordering, dense edge indexing,
// rejection of mutation, and read-path parity with the mutable engines.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvlaran/densegraph/core"
)

// frozenFromEdges stages n vertices plus the given directed edge list the
// way a mutable engine's succ would look and finalizes it.
func frozenFromEdges(n int, directed bool, multi bool, edges [][2]uint32) *core.Graph {
	staged := make([][]uint32, n)
	for _, e := range edges {
		staged[e[0]] = append(staged[e[0]], e[1])
		if !directed && e[0] != e[1] {
			staged[e[1]] = append(staged[e[1]], e[0])
		}
	}
	return core.NewFrozen(directed, multi, staged)
}

// TestFrozenEdgeOrdering is S6: edges staged out of order iterate
// source-major, target-ascending after finalize, and index lookup agrees.
func TestFrozenEdgeOrdering(t *testing.T) {
	g := frozenFromEdges(3, true, false, [][2]uint32{{2, 0}, {0, 1}, {1, 2}, {0, 0}})

	var got [][2]core.VertexID
	for _, e := range g.Edges() {
		s, err := g.EdgeSource(e)
		require.NoError(t, err)
		u, err := g.EdgeTarget(e)
		require.NoError(t, err)
		got = append(got, [2]core.VertexID{s, u})
	}
	want := [][2]core.VertexID{{0, 0}, {0, 1}, {1, 2}, {2, 0}}
	require.Equal(t, want, got)

	e01, err := g.GetEdge(0, 1)
	require.NoError(t, err)
	idx, err := g.EdgeIndexOf(e01)
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	back, err := g.EdgeAt(idx)
	require.NoError(t, err)
	require.Equal(t, e01, back)
}

// TestFrozenEmpty: finalizing nothing yields the empty graph constant
// shape: zero counts and empty iterations.
func TestFrozenEmpty(t *testing.T) {
	g := core.NewFrozen(true, false, nil)
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.Empty(t, g.Vertices())
	require.Empty(t, g.Edges())
}

// TestFrozenRejectsMutation: every mutating entry point fails with
// Unsupported and leaves no trace.
func TestFrozenRejectsMutation(t *testing.T) {
	g := frozenFromEdges(2, true, false, [][2]uint32{{0, 1}})

	_, err := g.AddVertex()
	require.ErrorIs(t, err, core.ErrUnsupported)
	require.ErrorIs(t, g.RemoveVertex(0), core.ErrUnsupported)
	_, err = g.AddEdge(0, 1)
	require.ErrorIs(t, err, core.ErrUnsupported)
	e, err := g.GetEdge(0, 1)
	require.NoError(t, err)
	require.ErrorIs(t, g.RemoveEdge(e), core.ErrUnsupported)

	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 1, g.EdgeCount())
}

// TestFrozenUndirectedCanonical: each undirected edge is emitted once as
// its canonical (min,max) pair, and containment works from both sides.
func TestFrozenUndirectedCanonical(t *testing.T) {
	g := frozenFromEdges(3, false, false, [][2]uint32{{2, 1}, {0, 2}, {0, 0}})
	require.Equal(t, 3, g.EdgeCount())

	for _, e := range g.Edges() {
		s, err := g.EdgeSource(e)
		require.NoError(t, err)
		u, err := g.EdgeTarget(e)
		require.NoError(t, err)
		require.LessOrEqual(t, s, u)
	}
	require.True(t, g.ContainsEdge(1, 2))
	require.True(t, g.ContainsEdge(2, 1))
	require.True(t, g.ContainsEdge(0, 0))

	deg, err := g.OutDegree(0)
	require.NoError(t, err)
	require.Equal(t, 2, deg, "self-loop counts once")
}

// TestFrozenParallelEdges: duplicates staged to the same neighbor become
// distinct dense edge ids.
func TestFrozenParallelEdges(t *testing.T) {
	g := frozenFromEdges(2, true, true, [][2]uint32{{0, 1}, {0, 1}})
	require.Equal(t, 2, g.EdgeCount())
	require.True(t, g.MultiEdge())
	require.Len(t, g.GetEdges(0, 1), 2)

	out, err := g.OutDegree(0)
	require.NoError(t, err)
	require.Equal(t, 2, out)
}

// TestFrozenDirectedPredecessors: lazy transpose agrees with the forward
// adjacency.
func TestFrozenDirectedPredecessors(t *testing.T) {
	g := frozenFromEdges(3, true, false, [][2]uint32{{0, 2}, {1, 2}, {2, 0}})

	pred, err := g.Predecessors(2)
	require.NoError(t, err)
	require.Equal(t, map[core.VertexID]int{0: 1, 1: 1}, vertexSet(pred))

	in, err := g.InDegree(0)
	require.NoError(t, err)
	require.Equal(t, 1, in)

	inc, err := g.IncomingEdges(2)
	require.NoError(t, err)
	require.Len(t, inc, 2)
	for _, e := range inc {
		u, err := g.EdgeTarget(e)
		require.NoError(t, err)
		require.Equal(t, core.VertexID(2), u)
	}
}

// TestFrozenEagerPropertyFill: a property with an initializer created on a
// frozen graph is filled eagerly, so reads are pure afterwards.
func TestFrozenEagerPropertyFill(t *testing.T) {
	g := frozenFromEdges(3, true, false, [][2]uint32{{0, 1}})
	calls := 0
	p := core.CreateVertexProperty(g, func(u core.VertexID) int {
		calls++
		return int(u)
	})
	require.Equal(t, 3, calls, "all slots filled at creation")

	for i := 0; i < 3; i++ {
		val, err := p.Get(core.VertexID(i))
		require.NoError(t, err)
		require.Equal(t, i, val)
	}
	require.Equal(t, 3, calls, "reads never re-initialize")
}

// TestFrozenPropertyNoInitializer: without an initializer and without a
// staged value, reads fail with InvalidState.
func TestFrozenPropertyNoInitializer(t *testing.T) {
	g := frozenFromEdges(1, true, false, nil)
	p := core.CreateVertexProperty[string](g, nil)
	_, err := p.Get(0)
	require.ErrorIs(t, err, core.ErrInvalidState)
}
