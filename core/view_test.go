// SPDX-License-Identifier: MIT
// Live-view contracts: O(1) Len, sub-linear Contains, and reflection of
// mutations that happen after the view was taken.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvlaran/densegraph/core"
)

// TestVerticesViewIsLive: a view taken before mutations reports state at
// call time, not construction time.
func TestVerticesViewIsLive(t *testing.T) {
	g := core.NewMutable(true)
	view := g.VerticesView()
	require.Equal(t, 0, view.Len())

	v := addVertices(t, g, 3)
	require.Equal(t, 3, view.Len())
	require.True(t, view.Contains(v[2]))
	require.False(t, view.Contains(7))
	require.ElementsMatch(t, v, view.Slice())

	require.NoError(t, g.RemoveVertex(v[0]))
	require.Equal(t, 2, view.Len())
}

// TestEdgesViewIsLive mirrors the vertex case on the edge set.
func TestEdgesViewIsLive(t *testing.T) {
	g := core.NewMutable(true, core.WithMultiEdgeSupport())
	v := addVertices(t, g, 3)
	view := g.EdgesView()
	require.Equal(t, 0, view.Len())

	e01 := mustAddEdge(t, g, v[0], v[1])
	e12 := mustAddEdge(t, g, v[1], v[2])
	require.Equal(t, 2, view.Len())
	require.True(t, view.Contains(e01))
	require.ElementsMatch(t, []core.EdgeID{e01, e12}, view.Slice())

	require.NoError(t, g.RemoveEdge(e01))
	require.Equal(t, 1, view.Len())
	require.False(t, view.Contains(e01))
}

// TestSuccessorsViewTracksMutations: membership, size, and slice of a
// per-vertex view follow subsequent edge churn.
func TestSuccessorsViewTracksMutations(t *testing.T) {
	g := core.NewMutable(true)
	v := addVertices(t, g, 3)
	view, err := g.SuccessorsView(v[0])
	require.NoError(t, err)
	require.Equal(t, 0, view.Len())

	e01 := mustAddEdge(t, g, v[0], v[1])
	mustAddEdge(t, g, v[0], v[2])
	require.Equal(t, 2, view.Len())
	require.True(t, view.Contains(v[1]))

	require.NoError(t, g.RemoveEdge(e01))
	require.Equal(t, 1, view.Len())
	require.False(t, view.Contains(v[1]))
	require.Equal(t, []core.VertexID{v[2]}, view.Slice())
}

// TestPredecessorsViewUndirected: on undirected graphs the predecessor view
// coincides with the successor view.
func TestPredecessorsViewUndirected(t *testing.T) {
	g := core.NewMutable(false)
	v := addVertices(t, g, 3)
	mustAddEdge(t, g, v[1], v[0])

	view, err := g.PredecessorsView(v[0])
	require.NoError(t, err)
	require.Equal(t, 1, view.Len())
	require.True(t, view.Contains(v[1]))
}

// TestIncidentEdgeViews: outgoing/incoming edge views agree with degree and
// classify foreign edges as absent.
func TestIncidentEdgeViews(t *testing.T) {
	g := core.NewMutable(true)
	v := addVertices(t, g, 3)
	e01 := mustAddEdge(t, g, v[0], v[1])
	e21 := mustAddEdge(t, g, v[2], v[1])

	out, err := g.OutgoingEdgesView(v[0])
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())
	require.True(t, out.Contains(e01))
	require.False(t, out.Contains(e21))

	in, err := g.IncomingEdgesView(v[1])
	require.NoError(t, err)
	require.Equal(t, 2, in.Len())
	require.True(t, in.Contains(e01))
	require.True(t, in.Contains(e21))
	require.ElementsMatch(t, []core.EdgeID{e01, e21}, in.Slice())
}

// TestViewUnknownVertex: taking a per-vertex view of an unknown vertex is
// rejected immediately.
func TestViewUnknownVertex(t *testing.T) {
	g := core.NewMutable(true)
	_, err := g.SuccessorsView(4)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = g.IncomingEdgesView(4)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}
