package dfs

// Neighbors lists the vertices adjacent to v.
type Neighbors[V comparable] func(v V) []V

// BackEdge is the edge that closed the first cycle found: From is the
// vertex being explored, To the already visited non-parent neighbor.
type BackEdge[V comparable] struct {
	From V
	To   V
}

// frame is one level of the explicit DFS stack.
type frame[V comparable] struct {
	v         V
	parent    V
	hasParent bool
	nbrs      []V // neighbors of v, fetched once on entry
	next      int // index of the next neighbor to examine
}
