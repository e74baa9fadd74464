package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gid/graph"
)

func TestAddEdge_LazyVerticesAndMultiset(t *testing.T) {
	g := graph.NewGraph()

	isNew := g.AddEdge(1, 2)
	assert.True(t, isNew)
	assert.True(t, g.HasVertex(1))
	assert.True(t, g.HasVertex(2))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.OutDegree(1))

	// Repeating the same edge counts in the multiset but does not grow the
	// distinct neighbor set.
	isNew = g.AddEdge(1, 2)
	assert.False(t, isNew)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, g.OutDegree(1))
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge(5, 5)
	assert.Equal(t, []graph.VertexID{5}, g.OutNeighborsSorted(5))
	assert.Equal(t, []graph.VertexID{5}, g.InNeighborsSorted(5))
}

func TestOutNeighborsOrdered_TracksInsertionOrder(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge(0, 3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)

	assert.Equal(t, []graph.VertexID{3, 1, 2}, g.OutNeighborsOrdered(0))
	assert.Equal(t, []graph.VertexID{1, 2, 3}, g.OutNeighborsSorted(0))
}

func TestMarkClosed_Idempotent(t *testing.T) {
	g := graph.NewGraph()
	wasClosed := g.MarkClosed(9)
	assert.False(t, wasClosed)
	assert.True(t, g.Closed(9))

	wasClosed = g.MarkClosed(9)
	assert.True(t, wasClosed)
}

func TestMarkTerminal_ImpliesClosed(t *testing.T) {
	g := graph.NewGraph()
	g.MarkTerminal(7)
	assert.True(t, g.Terminal(7))
	assert.True(t, g.Closed(7))
}

func TestVertices_SortedAndComplete(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge(3, 1)
	g.MarkClosed(9)
	assert.Equal(t, []graph.VertexID{1, 3, 9}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())
}

func TestUnmentionedVertex_NotClosedNotTerminal(t *testing.T) {
	g := graph.NewGraph()
	assert.False(t, g.HasVertex(42))
	assert.False(t, g.Closed(42))
	assert.False(t, g.Terminal(42))
}
