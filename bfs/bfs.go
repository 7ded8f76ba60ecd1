package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socialnet/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph   *core.Graph[V]
	opts    Options[V]
	ctx     context.Context
	queue   []queueItem[V]
	visited map[V]bool
	res     *Result[V]

	// stop, when set, ends the walk right after the matching vertex is dequeued.
	stop    func(V) bool
	stopped bool
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// the context error on cancellation, or any OnVisit hook error.
func BFS[V comparable](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, o)
	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

// ShortestPath returns a minimum-hop path from start to end, inclusive of
// both endpoints. Among equally short paths the one discovered first in
// adjacency order is returned. An empty path is returned when g is nil,
// either endpoint is unknown, or end is unreachable.
//
// Complexity: O(V + E).
func ShortestPath[V comparable](g *core.Graph[V], start, end V) []V {
	if g == nil || !g.HasVertex(start) || !g.HasVertex(end) {
		return nil
	}

	w := newWalker(g, DefaultOptions[V]())
	w.stop = func(v V) bool { return v == end }
	w.enqueue(start, 0, start, false)
	// default options carry no hooks or context that could fail
	_ = w.loop()
	if !w.stopped {
		return nil
	}

	return w.res.PathTo(end)
}

func newWalker[V comparable](g *core.Graph[V], o Options[V]) *walker[V] {
	n := g.VertexCount()

	return &walker[V]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[V], 0, n),
		visited: make(map[V]bool, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}
}

// enqueue marks v visited at depth d, records its parent and queues it.
func (w *walker[V]) enqueue(v V, d int, parent V, hasParent bool) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if hasParent {
		w.res.Parent[v] = parent
	}
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty, stop, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
		}
		if w.stop != nil && w.stop(item.v) {
			w.stopped = true
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors enqueues every unseen neighbor within MaxDepth.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.v) {
		if !w.visited[nbr] {
			w.enqueue(nbr, next, item.v, true)
		}
	}
}
