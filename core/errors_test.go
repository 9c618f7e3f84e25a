// SPDX-License-Identifier: MIT
// Error taxonomy contracts: sentinel matching via errors.Is and the closed
// Kind classification.
package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvlaran/densegraph/core"
)

// TestKindOfMapsSentinels: every sentinel classifies to its Kind, wrapped
// or not.
func TestKindOfMapsSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want core.Kind
	}{
		{core.ErrInvalidArgument, core.InvalidArgument},
		{core.ErrAlreadyExists, core.AlreadyExists},
		{core.ErrNoSuchElement, core.NoSuchElement},
		{core.ErrInvalidState, core.InvalidState},
		{core.ErrInvalidated, core.Invalidated},
		{core.ErrUnsupported, core.Unsupported},
	}
	for _, c := range cases {
		k, ok := core.KindOf(c.err)
		require.True(t, ok)
		require.Equal(t, c.want, k)

		k, ok = core.KindOf(errors.Join(errors.New("ctx"), c.err))
		require.True(t, ok)
		require.Equal(t, c.want, k)
	}

	_, ok := core.KindOf(errors.New("unrelated"))
	require.False(t, ok)
	_, ok = core.KindOf(nil)
	require.False(t, ok)
}

// TestOperationErrorsCarrySentinels: errors produced by real operations
// match via errors.Is and classify via KindOf.
func TestOperationErrorsCarrySentinels(t *testing.T) {
	g := core.NewMutable(true)
	v := addVertices(t, g, 2)
	mustAddEdge(t, g, v[0], v[1])

	_, err := g.AddEdge(v[0], v[1])
	require.ErrorIs(t, err, core.ErrAlreadyExists)
	k, ok := core.KindOf(err)
	require.True(t, ok)
	require.Equal(t, core.AlreadyExists, k)

	_, err = g.GetEdge(v[1], v[0])
	require.ErrorIs(t, err, core.ErrNoSuchElement)

	_, err = g.OutDegree(9)
	k, ok = core.KindOf(err)
	require.True(t, ok)
	require.Equal(t, core.InvalidArgument, k)
}

// TestFailedMutationLeavesNoTrace: a rejected AddEdge changes nothing the
// caller can observe.
func TestFailedMutationLeavesNoTrace(t *testing.T) {
	g := core.NewMutable(true)
	v := addVertices(t, g, 2)
	mustAddEdge(t, g, v[0], v[1])

	before := g.EdgeCount()
	_, err := g.AddEdge(v[0], v[1])
	require.Error(t, err)
	require.Equal(t, before, g.EdgeCount())

	_, err = g.AddEdge(v[0], 9)
	require.Error(t, err)
	require.Equal(t, before, g.EdgeCount())
	out, err := g.OutDegree(v[0])
	require.NoError(t, err)
	require.Equal(t, 1, out)
}
