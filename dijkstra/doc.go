// Package dijkstra computes single-source shortest weighted distances over
// a core.Graph.
//
// Distances maintains a min-priority queue of (vertex, tentative distance)
// pairs. It repeatedly pops the closest entry, skips it if a shorter
// distance for that vertex was already settled ("lazy decrease-key"), and
// otherwise relaxes every edge leaving the vertex:
//
//	if dist[u] + w(u,v) < dist[v] { dist[v] = dist[u] + w(u,v); push(v) }
//
// The result maps each reachable vertex to its minimum distance, excluding
// the source itself. Unreachable vertices are omitted.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)   (the heap may hold one entry per relaxation)
//
// Weights must be non-negative. They are not validated: a negative weight
// silently produces wrong distances.
//
// An unknown source yields an empty map, not an error.
package dijkstra
