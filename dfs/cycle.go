package dfs

// HasCycle reports whether the undirected graph given by vertices and
// neighbors contains at least one cycle.
func HasCycle[V comparable](vertices []V, neighbors Neighbors[V]) bool {
	_, found := FindCycle(vertices, neighbors)
	return found
}

// FindCycle walks every component depth-first and returns the first
// back-edge it meets. Returns false only after all components have been
// fully explored without one.
//
// vertices fixes the order in which components are started; neighbors
// fixes the order in which each vertex's edges are examined.
func FindCycle[V comparable](vertices []V, neighbors Neighbors[V]) (BackEdge[V], bool) {
	visited := make(map[V]bool, len(vertices))
	stack := make([]frame[V], 0, 16)

	for _, root := range vertices {
		if visited[root] {
			continue
		}

		// 1) Enter the root of a new component
		visited[root] = true
		stack = append(stack, frame[V]{v: root, nbrs: neighbors(root)})

		// 2) Iterative DFS: examine one neighbor of the top frame per step
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.nbrs) {
				stack = stack[:len(stack)-1] // fully explored
				continue
			}
			nbr := top.nbrs[top.next]
			top.next++

			switch {
			case !visited[nbr]:
				visited[nbr] = true
				stack = append(stack, frame[V]{
					v:         nbr,
					parent:    top.v,
					hasParent: true,
					nbrs:      neighbors(nbr),
				})
			case !top.hasParent || nbr != top.parent:
				return BackEdge[V]{From: top.v, To: nbr}, true
			}
		}
	}

	var none BackEdge[V]
	return none, false
}
