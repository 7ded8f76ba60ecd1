package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/core"
)

// TestAddVertex_Idempotent verifies that re-adding a vertex keeps its edges.
func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph[string]()
	assert.True(t, g.AddVertex("A"))
	g.AddEdge("A", "B", 1)
	assert.False(t, g.AddVertex("A"))

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, []string{"B"}, g.Neighbors("A"))
}

// TestAddEdge_Symmetric checks that both endpoints see each other with the same weight.
func TestAddEdge_Symmetric(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 4)

	require.True(t, g.HasVertex("A"))
	require.True(t, g.HasVertex("B"))
	assert.Equal(t, []core.Edge[string]{{To: "B", Weight: 4}}, g.Edges("A"))
	assert.Equal(t, []core.Edge[string]{{To: "A", Weight: 4}}, g.Edges("B"))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_ParallelEdgesAppend documents that repeated pairs are not merged.
func TestAddEdge_ParallelEdgesAppend(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "B", 3)

	assert.Equal(t, []string{"B", "B"}, g.Neighbors("A"))
	assert.Equal(t, []core.Edge[string]{{To: "B", Weight: 1}, {To: "B", Weight: 3}}, g.Edges("A"))
	assert.Equal(t, 2, g.Degree("B"))
	assert.Equal(t, 2, g.EdgeCount())
}

// TestNeighbors_InsertionOrder ensures adjacency order follows AddEdge calls.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "C", 1)
	g.AddEdge("A", "B", 1)
	g.AddEdge("D", "A", 1)

	assert.Equal(t, []string{"C", "B", "D"}, g.Neighbors("A"))
	assert.Equal(t, []string{"A", "C", "B", "D"}, g.Vertices())
}

// TestUnknownVertex covers queries on vertices that were never mentioned.
func TestUnknownVertex(t *testing.T) {
	g := core.NewGraph[string]()
	assert.False(t, g.HasVertex("ghost"))
	assert.Empty(t, g.Neighbors("ghost"))
	assert.Nil(t, g.Edges("ghost"))
	assert.Equal(t, 0, g.Degree("ghost"))

	g.AddVertex("lonely")
	assert.NotNil(t, g.Neighbors("lonely"))
	assert.Empty(t, g.Neighbors("lonely"))
}

// TestSelfLoop records both halves of a loop on the same vertex.
func TestSelfLoop(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddEdge(7, 7, 2)
	assert.Equal(t, []int{7, 7}, g.Neighbors(7))
	assert.Equal(t, 1, g.VertexCount())
}

// TestReturnedSlicesAreCopies makes sure callers cannot corrupt adjacency.
func TestReturnedSlicesAreCopies(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 1)

	nb := g.Neighbors("A")
	nb[0] = "Z"
	es := g.Edges("A")
	es[0].Weight = 99
	vs := g.Vertices()
	vs[0] = "Q"

	assert.Equal(t, []string{"B"}, g.Neighbors("A"))
	assert.Equal(t, int64(1), g.Edges("A")[0].Weight)
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
}
