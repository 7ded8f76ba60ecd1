// Package bfs provides breadth-first search over a core.Graph, ignoring
// edge weights, and the fewest-hop path query built on top of it.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start
//     vertex and returns a Result with the visit Order, the Depth of every
//     reached vertex and the Parent links of the BFS tree.
//   - ShortestPath stops as soon as the target is dequeued and returns the
//     path start → … → end, both endpoints included.
//
// Determinism
//
//	core.Graph returns neighbors in insertion order and BFS enqueues them in
//	that order, so among several equally short paths the one whose edges
//	were added first wins. Each vertex is enqueued at most once, so parallel
//	edges do not change the result.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (queue, visited set, parent map)
//
// Options
//
//   - WithContext(ctx):   abort with ctx.Err() once ctx is done.
//   - WithMaxDepth(d):    do not enqueue beyond depth d (d > 0); 0 = no limit.
//   - WithOnVisit(fn):    hook per visited vertex; a returned error aborts.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if BFS is started from an unknown vertex.
//   - ErrOptionViolation      for an invalid option (negative MaxDepth).
//
// ShortestPath never fails: unknown endpoints or unreachable targets yield
// an empty path.
package bfs
