// Package core provides Graph, a small thread-safe undirected weighted
// multigraph keyed by any comparable vertex identity.
//
// Storage is a plain adjacency list per vertex:
//
//	adjacency[v] = []Edge{{To: w1, Weight: x1}, {To: w2, Weight: x2}, ...}
//
// AddEdge always appends a mirrored pair (a→b and b→a with the same weight),
// so the structure behaves as undirected. Adding the same pair twice appends
// a parallel edge; existing weights are never updated in place and edges are
// never removed.
//
// Core Methods:
//
//	AddVertex(v V) bool                 // O(1), idempotent
//	HasVertex(v V) bool                 // O(1)
//	AddEdge(a, b V, weight int64)       // O(1) amortized, auto-adds vertices
//	Neighbors(v V) []V                  // O(d), insertion order, parallel edges repeated
//	Edges(v V) []Edge[V]                // O(d), insertion order
//	Vertices() []V                      // O(V), first-mention order
//	Degree(v V) int                     // O(1)
//	VertexCount() int, EdgeCount() int  // O(1)
//
// Unknown vertices are never an error: Neighbors and Edges return nil.
//
// Weights are not validated. Shortest-distance algorithms built on top of
// Graph (see package dijkstra) assume non-negative weights.
//
// All methods take the graph's sync.RWMutex: mutations a write lock,
// queries a read lock. Returned slices are copies and safe to keep.
package core
