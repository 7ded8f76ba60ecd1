package core

// AddVertex ensures v has an (initially empty) adjacency list.
// Reports true if v was newly created, false if it already existed.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ensureVertex(v)
}

// HasVertex reports whether v is known to the graph.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]

	return ok
}

// AddEdge connects a and b with the given weight, creating either vertex
// if needed. The edge is stored twice, once in each endpoint's list, and
// is always appended as a new entry even if a and b are already connected.
// A self-loop (a == b) therefore contributes two entries to a's list.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(a, b V, weight int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Ensure both endpoints exist
	g.ensureVertex(a)
	g.ensureVertex(b)

	// 2) Append mirrored halves
	g.adjacency[a] = append(g.adjacency[a], Edge[V]{To: b, Weight: weight})
	g.adjacency[b] = append(g.adjacency[b], Edge[V]{To: a, Weight: weight})
	g.edgeCount++
}

// Neighbors returns the destination of every edge leaving v, in insertion
// order. Parallel edges yield repeated entries. Unknown v yields nil.
// Complexity: O(d) where d is the degree of v.
func (g *Graph[V]) Neighbors(v V) []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, ok := g.adjacency[v]
	if !ok {
		return nil
	}
	out := make([]V, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out
}

// Edges returns a copy of v's adjacency list. Unknown v yields nil.
// Complexity: O(d).
func (g *Graph[V]) Edges(v V) []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, ok := g.adjacency[v]
	if !ok {
		return nil
	}

	return append([]Edge[V](nil), edges...)
}

// Vertices returns every vertex in first-mention order.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]V(nil), g.order...)
}

// Degree returns the number of adjacency entries of v (0 if unknown).
func (g *Graph[V]) Degree(v V) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v])
}

// VertexCount returns the number of vertices.
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of undirected edges, parallel edges included.
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// ensureVertex creates v's adjacency entry if missing.
// Caller must hold the write lock.
func (g *Graph[V]) ensureVertex(v V) bool {
	if _, exists := g.adjacency[v]; exists {
		return false
	}
	g.adjacency[v] = []Edge[V]{}
	g.order = append(g.order, v)

	return true
}
