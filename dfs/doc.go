// Package dfs implements depth-first cycle detection for undirected graphs
// described by a vertex list and a neighbor function.
//
// The walk restarts from every vertex not yet visited, so cycles in any
// connected component are found. Each stack frame carries the vertex and
// the parent that led to it; meeting an already visited neighbor other
// than the immediate parent is a back-edge and proves a cycle.
//
// The walk uses an explicit frame stack instead of recursion, so a
// path-shaped graph with millions of vertices does not grow the goroutine
// stack.
//
// The parent check compares vertices, not edges: a neighbor function that
// lists the same neighbor twice (a parallel edge) makes the second copy a
// back-edge. Callers wanting simple-graph semantics pass deduplicated
// neighbor lists.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)   (visited set + frame stack)
package dfs
