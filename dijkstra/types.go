package dijkstra

import "math"

// infinity marks a vertex that has not been reached yet.
const infinity = math.MaxInt64

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem[V comparable] struct {
	id   V
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ[V comparable] []nodeItem[V]

// Len returns the number of items in the heap.
func (pq nodePQ[V]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[V]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ[V]) Push(x any) { *pq = append(*pq, x.(nodeItem[V])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
