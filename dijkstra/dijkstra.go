package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/socialnet/core"
)

// Distances returns the minimum total weight from source to every other
// reachable vertex of g. The source and unreachable vertices are excluded.
// A nil graph or unknown source yields an empty, non-nil map.
func Distances[V comparable](g *core.Graph[V], source V) map[V]int64 {
	if g == nil || !g.HasVertex(source) {
		return map[V]int64{}
	}

	r := newRunner(g, source)
	r.process()

	// Collect reached vertices, dropping the source itself.
	out := make(map[V]int64, len(r.dist))
	for v, d := range r.dist {
		if v == source || d == infinity {
			continue
		}
		out[v] = d
	}

	return out
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	g    *core.Graph[V] // read-only within Distances
	dist map[V]int64    // vertex → best known distance from source
	pq   nodePQ[V]      // lazy priority queue
}

// newRunner sets every known vertex to +∞ except source (0) and seeds the
// heap with (source, 0).
func newRunner[V comparable](g *core.Graph[V], source V) *runner[V] {
	vertices := g.Vertices()
	r := &runner[V]{
		g:    g,
		dist: make(map[V]int64, len(vertices)),
		pq:   make(nodePQ[V], 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = infinity
	}
	r.dist[source] = 0
	heap.Push(&r.pq, nodeItem[V]{id: source, dist: 0})

	return r
}

// process pops the closest entry until the heap is empty, skipping stale
// entries whose popped distance exceeds the settled one.
func (r *runner[V]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[V])
		if item.dist > r.dist[item.id] {
			continue
		}
		r.relax(item.id)
	}
}

// relax tries to improve every neighbor of u through u.
func (r *runner[V]) relax(u V) {
	du := r.dist[u]
	for _, e := range r.g.Edges(u) {
		cur, known := r.dist[e.To]
		if !known {
			// vertex added after initialization; treat as unreached
			cur = infinity
		}
		newDist := du + e.Weight
		if newDist >= cur {
			continue
		}
		r.dist[e.To] = newDist
		heap.Push(&r.pq, nodeItem[V]{id: e.To, dist: newDist})
	}
}
