package core

import "sync"

// Edge is one directed half of an undirected connection: the destination
// vertex and the weight of the connection.
type Edge[V comparable] struct {
	// To is the destination vertex.
	To V

	// Weight is the cost of traversing the edge.
	Weight int64
}

// Graph is an undirected weighted adjacency-list graph.
//
// order keeps vertices in first-mention order so that iteration is
// deterministic; adjacency keeps each vertex's edges in insertion order.
// edgeCount counts undirected edges (each mirrored pair once).
type Graph[V comparable] struct {
	mu sync.RWMutex

	order     []V
	adjacency map[V][]Edge[V]
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[V comparable]() *Graph[V] {
	return &Graph[V]{
		adjacency: make(map[V][]Edge[V]),
	}
}
