// SPDX-License-Identifier: MIT
// Package core_test locks in the simple-backend topology contracts:
// dense vertex identities, canonical undirected encoding, swap-and-pop
// removal, and the sentinel-error taxonomy.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvlaran/densegraph/core"
)

// addVertices appends n vertices and returns their identities.
func addVertices(t *testing.T, g *core.Graph, n int) []core.VertexID {
	t.Helper()
	out := make([]core.VertexID, n)
	for i := range out {
		v, err := g.AddVertex()
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func mustAddEdge(t *testing.T, g *core.Graph, s, u core.VertexID) core.EdgeID {
	t.Helper()
	e, err := g.AddEdge(s, u)
	require.NoError(t, err)
	return e
}

func vertexSet(ids []core.VertexID) map[core.VertexID]int {
	out := make(map[core.VertexID]int, len(ids))
	for _, v := range ids {
		out[v]++
	}
	return out
}

// TestSimpleDirectedCycleAndSelfLoop builds v0->v1, v1->v2, v2->v0, v0->v0
// and verifies counts, degrees, and adjacency on the directed simple
// backend, including the self-loop contributing to both degree sides.
func TestSimpleDirectedCycleAndSelfLoop(t *testing.T) {
	g := core.NewMutable(true)
	v := addVertices(t, g, 3)
	mustAddEdge(t, g, v[0], v[1])
	mustAddEdge(t, g, v[1], v[2])
	mustAddEdge(t, g, v[2], v[0])
	loop := mustAddEdge(t, g, v[0], v[0])

	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount())

	out, err := g.OutDegree(v[0])
	require.NoError(t, err)
	require.Equal(t, 2, out)
	in, err := g.InDegree(v[0])
	require.NoError(t, err)
	require.Equal(t, 2, in)

	succ, err := g.Successors(v[0])
	require.NoError(t, err)
	require.Equal(t, map[core.VertexID]int{v[0]: 1, v[1]: 1}, vertexSet(succ))

	pred, err := g.Predecessors(v[0])
	require.NoError(t, err)
	require.Equal(t, map[core.VertexID]int{v[0]: 1, v[2]: 1}, vertexSet(pred))

	require.Equal(t, []core.EdgeID{loop}, g.GetEdges(v[0], v[0]))
}

// TestSimpleUndirectedSelfLoop verifies S2-style behavior: the self-loop is
// counted once in degree, adjacency is symmetric, and edge encoding is
// canonical (min,max).
func TestSimpleUndirectedSelfLoop(t *testing.T) {
	g := core.NewMutable(false)
	v := addVertices(t, g, 3)
	e01 := mustAddEdge(t, g, v[0], v[1])
	mustAddEdge(t, g, v[1], v[2])
	mustAddEdge(t, g, v[2], v[0])
	mustAddEdge(t, g, v[0], v[0])

	deg, err := g.OutDegree(v[0])
	require.NoError(t, err)
	require.Equal(t, 3, deg, "self-loop counts once on the undirected backend")

	succ, err := g.Successors(v[0])
	require.NoError(t, err)
	require.Equal(t, map[core.VertexID]int{v[0]: 1, v[1]: 1, v[2]: 1}, vertexSet(succ))

	require.True(t, g.ContainsEdge(v[1], v[0]), "undirected containment must work in both directions")

	s, err := g.EdgeSource(e01)
	require.NoError(t, err)
	u, err := g.EdgeTarget(e01)
	require.NoError(t, err)
	require.Equal(t, v[0], s)
	require.Equal(t, v[1], u)
	require.LessOrEqual(t, s, u, "undirected encoding is canonical (min,max)")

	// Adding the reversed pair is the same edge and must be rejected.
	_, err = g.AddEdge(v[1], v[0])
	require.ErrorIs(t, err, core.ErrAlreadyExists)
}

// TestSimpleEdgesIterationOrder verifies source-major, target-ascending
// iteration with each undirected edge emitted exactly once.
func TestSimpleEdgesIterationOrder(t *testing.T) {
	g := core.NewMutable(false)
	v := addVertices(t, g, 4)
	mustAddEdge(t, g, v[2], v[0])
	mustAddEdge(t, g, v[0], v[1])
	mustAddEdge(t, g, v[3], v[1])
	mustAddEdge(t, g, v[0], v[0])

	var got [][2]core.VertexID
	for _, e := range g.Edges() {
		s, err := g.EdgeSource(e)
		require.NoError(t, err)
		u, err := g.EdgeTarget(e)
		require.NoError(t, err)
		got = append(got, [2]core.VertexID{s, u})
	}
	want := [][2]core.VertexID{{0, 0}, {0, 1}, {0, 2}, {1, 3}}
	require.Equal(t, want, got)
}

// TestSimpleRemoveEdge verifies removal drops the edge on both undirected
// sides and leaves the rest of the topology untouched.
func TestSimpleRemoveEdge(t *testing.T) {
	g := core.NewMutable(false)
	v := addVertices(t, g, 3)
	e01 := mustAddEdge(t, g, v[0], v[1])
	mustAddEdge(t, g, v[1], v[2])

	require.NoError(t, g.RemoveEdge(e01))
	require.Equal(t, 1, g.EdgeCount())
	require.False(t, g.ContainsEdge(v[0], v[1]))
	require.False(t, g.ContainsEdge(v[1], v[0]))
	require.True(t, g.ContainsEdge(v[1], v[2]))

	require.ErrorIs(t, g.RemoveEdge(e01), core.ErrInvalidArgument)
}

// TestSimpleRemoveVertexCompacts verifies swap-and-pop: removing a middle
// vertex relabels the last vertex into its slot and rewrites the adjacency
// referring to it, while identities stay dense.
func TestSimpleRemoveVertexCompacts(t *testing.T) {
	g := core.NewMutable(true)
	v := addVertices(t, g, 4) // 0..3
	mustAddEdge(t, g, v[0], v[1])
	mustAddEdge(t, g, v[3], v[0]) // last vertex has an outgoing edge
	mustAddEdge(t, g, v[2], v[3]) // and an incoming one

	require.NoError(t, g.RemoveVertex(v[1]))
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount(), "edges incident to the removed vertex are drained")

	// Old vertex 3 now answers to identity 1.
	require.True(t, g.ContainsEdge(1, 0), "3->0 became 1->0")
	require.True(t, g.ContainsEdge(2, 1), "2->3 became 2->1")
	require.False(t, g.ContainsEdge(0, 1), "0->1 died with vertex 1")

	// Identity density: every id below VertexCount is live, none above.
	for i := 0; i < g.VertexCount(); i++ {
		_, err := g.OutDegree(core.VertexID(i))
		require.NoError(t, err)
	}
	_, err := g.OutDegree(3)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

// TestSimpleRemoveLastVertex covers the removed == survivor path.
func TestSimpleRemoveLastVertex(t *testing.T) {
	g := core.NewMutable(false)
	v := addVertices(t, g, 2)
	mustAddEdge(t, g, v[0], v[1])

	require.NoError(t, g.RemoveVertex(v[1]))
	require.Equal(t, 1, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
}

// TestSimpleRemoveVertexWithSelfLoopOnLast exercises the trickiest relabel:
// the swapped-in survivor carries a self-loop whose encoding must follow it.
func TestSimpleRemoveVertexWithSelfLoopOnLast(t *testing.T) {
	g := core.NewMutable(true)
	v := addVertices(t, g, 3)
	mustAddEdge(t, g, v[2], v[2])
	mustAddEdge(t, g, v[1], v[2])

	require.NoError(t, g.RemoveVertex(v[0]))
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())
	// Old vertex 2 is now vertex 0; its self-loop moved with it.
	require.True(t, g.ContainsEdge(0, 0))
	require.True(t, g.ContainsEdge(1, 0))
}

// TestSimpleEdgeOpposite checks both endpoints and the InvalidArgument case.
func TestSimpleEdgeOpposite(t *testing.T) {
	g := core.NewMutable(true)
	v := addVertices(t, g, 3)
	e := mustAddEdge(t, g, v[0], v[1])

	other, err := g.EdgeOpposite(e, v[0])
	require.NoError(t, err)
	require.Equal(t, v[1], other)

	other, err = g.EdgeOpposite(e, v[1])
	require.NoError(t, err)
	require.Equal(t, v[0], other)

	_, err = g.EdgeOpposite(e, v[2])
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

// TestSimpleQueryErrors pins the sentinel kinds for unknown elements.
func TestSimpleQueryErrors(t *testing.T) {
	g := core.NewMutable(true)
	addVertices(t, g, 1)

	_, err := g.AddEdge(0, 7)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = g.GetEdge(0, 0)
	require.ErrorIs(t, err, core.ErrNoSuchElement)

	_, err = g.Successors(9)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	require.ErrorIs(t, g.RemoveVertex(9), core.ErrInvalidArgument)

	_, err = g.EdgeAt(0)
	require.ErrorIs(t, err, core.ErrUnsupported, "simple edges are not dense-indexed")
}

// TestSimpleDirectedPredecessorsLazy verifies predecessors materialize on
// first use and stay correct across later mutations.
func TestSimpleDirectedPredecessorsLazy(t *testing.T) {
	g := core.NewMutable(true)
	v := addVertices(t, g, 3)
	mustAddEdge(t, g, v[0], v[2])
	mustAddEdge(t, g, v[1], v[2])

	pred, err := g.Predecessors(v[2])
	require.NoError(t, err)
	require.Equal(t, map[core.VertexID]int{v[0]: 1, v[1]: 1}, vertexSet(pred))

	// Mutate after materialization: pred must track.
	mustAddEdge(t, g, v[2], v[0])
	pred, err = g.Predecessors(v[0])
	require.NoError(t, err)
	require.Equal(t, map[core.VertexID]int{v[2]: 1}, vertexSet(pred))

	in, err := g.InDegree(v[2])
	require.NoError(t, err)
	require.Equal(t, 2, in)
}

// TestSymmetryOfIncidence verifies u in successors(v) iff v in
// predecessors(u) after a mixed mutation sequence.
func TestSymmetryOfIncidence(t *testing.T) {
	for _, directed := range []bool{true, false} {
		g := core.NewMutable(directed)
		v := addVertices(t, g, 5)
		mustAddEdge(t, g, v[0], v[1])
		mustAddEdge(t, g, v[1], v[2])
		mustAddEdge(t, g, v[2], v[3])
		mustAddEdge(t, g, v[3], v[4])
		mustAddEdge(t, g, v[4], v[0])
		require.NoError(t, g.RemoveVertex(v[2]))

		for i := 0; i < g.VertexCount(); i++ {
			u := core.VertexID(i)
			succ, err := g.Successors(u)
			require.NoError(t, err)
			for _, w := range succ {
				pred, err := g.Predecessors(w)
				require.NoError(t, err)
				require.Contains(t, pred, u, "directed=%v: %d in succ(%d) but %d not in pred(%d)", directed, w, u, u, w)
			}
		}
	}
}
