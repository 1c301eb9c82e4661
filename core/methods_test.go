// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatialjustice/core"
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(VertexA))
	assert.True(t, g.HasVertex(VertexA))

	// Duplicate insert is a no-op.
	require.NoError(t, g.AddVertex(VertexA))
	assert.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex(VertexEmpty), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex(VertexB), core.ErrVertexNotFound)

	require.NoError(t, g.RemoveVertex(VertexA))
	assert.False(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(VertexEmpty))
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	t.Run("empty endpoint", func(t *testing.T) {
		_, err := core.NewGraph().AddEdge(VertexEmpty, VertexB)
		require.ErrorIs(t, err, core.ErrEmptyVertexID)
	})

	t.Run("loop rejected", func(t *testing.T) {
		_, err := core.NewGraph().AddEdge(VertexA, VertexA)
		require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	})

	t.Run("loop allowed", func(t *testing.T) {
		_, err := core.NewGraph(core.WithLoops()).AddEdge(VertexA, VertexA)
		require.NoError(t, err)
	})

	t.Run("multi-edge rejected", func(t *testing.T) {
		g := core.NewGraph()
		_, err := g.AddEdge(VertexA, VertexB)
		require.NoError(t, err)
		_, err = g.AddEdge(VertexA, VertexB)
		require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
		// Undirected mirror counts as the same pair.
		_, err = g.AddEdge(VertexB, VertexA)
		require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	})

	t.Run("multi-edge allowed", func(t *testing.T) {
		g := core.NewGraph(core.WithMultiEdges())
		_, err := g.AddEdge(VertexA, VertexB)
		require.NoError(t, err)
		_, err = g.AddEdge(VertexA, VertexB)
		require.NoError(t, err)
		assert.Equal(t, 2, g.EdgeCount())
	})

	t.Run("direction override needs mixed mode", func(t *testing.T) {
		_, err := core.NewGraph().AddEdge(VertexA, VertexB, core.WithEdgeDirected(true))
		require.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)
	})

	t.Run("attribute options on plain graph", func(t *testing.T) {
		g := core.NewGraph()
		eid, err := g.AddEdge(VertexA, VertexB, streetEdge(5))
		require.NoError(t, err)
		e, err := g.GetEdge(eid)
		require.NoError(t, err)
		cost, ok := e.Attrs.Float(AttrCost)
		require.True(t, ok)
		assert.InDelta(t, 5.0, cost, 1e-12)
	})
}

func TestGraph_MixedEdgesDirectedOverride(t *testing.T) {
	g := core.NewMixedGraph()
	require.True(t, g.MixedEdges())

	_, err := g.AddEdge(VertexA, VertexB, core.WithEdgeDirected(true))
	require.NoError(t, err)
	_, err = g.AddEdge(VertexB, VertexC)
	require.NoError(t, err)

	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA))
	assert.True(t, g.HasEdge(VertexB, VertexC))
	assert.True(t, g.HasEdge(VertexC, VertexB))

	stats := g.Stats()
	assert.Equal(t, 1, stats.DirectedEdgeCount)
	assert.Equal(t, 1, stats.UndirectedEdgeCount)
	assert.Equal(t, 3, stats.VertexCount)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA))
	require.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)

	_, err = g.GetEdge(eid)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexB, VertexC)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex(VertexB))
	assert.Equal(t, 0, g.EdgeCount())

	nb, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	assert.Empty(t, nb)
}

func TestGraph_NeighborsInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	// Twelve edges so that lexicographic ID order ("e10" < "e2") would differ.
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge(VertexA, fmt.Sprintf("N%02d", 11-i))
		require.NoError(t, err)
	}

	nb, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	require.Len(t, nb, 12)
	for i, e := range nb {
		assert.Equal(t, fmt.Sprintf("e%d", i+1), e.ID)
		assert.Equal(t, fmt.Sprintf("N%02d", 11-i), e.Other(VertexA))
	}
	assert.Equal(t, edgeIDs(nb), edgeIDs(g.Edges()))

	ids, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.IsNonDecreasing(t, ids)

	_, err = g.Neighbors(VertexD)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors(VertexEmpty)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_NeighborsDirectedPolicy(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)

	out, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	in, err := g.Neighbors(VertexB)
	require.NoError(t, err)
	assert.Empty(t, in)
}

func TestEdge_Other(t *testing.T) {
	e := &core.Edge{From: VertexA, To: VertexB}
	assert.Equal(t, VertexB, e.Other(VertexA))
	assert.Equal(t, VertexA, e.Other(VertexB))

	var nilEdge *core.Edge
	assert.True(t, nilEdge.IsNil())
}

func TestGraph_VertexMetadata(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))

	v, err := g.Vertex(VertexA)
	require.NoError(t, err)
	require.NotNil(t, v.Metadata)
	v.Metadata["x"] = 1.5

	_, err = g.Vertex(VertexB)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Vertex(VertexEmpty)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}
