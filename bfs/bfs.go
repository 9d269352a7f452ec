// SPDX-License-Identifier: MIT
//
// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/volcano/core"
)

// queueItem pairs a valve ordinal with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, ok := g.Index(startID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start valve (no parent)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// Distances returns the hop distance from start to every reachable valve,
// indexed by ordinal; unreachable valves hold -1.
// It is a slice-based fast path used by the all-pairs builders.
func Distances(ctx context.Context, g *core.Graph, start int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 || start >= g.Len() {
		return nil, fmt.Errorf("%w: ordinal %d", ErrStartVertexNotFound, start)
	}

	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = -1
	}
	dist[start] = 0
	queue := make([]int, 0, g.Len())
	queue = append(queue, start)
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range g.NeighborIndices(cur) {
			if dist[nbr] >= 0 {
				continue
			}
			dist[nbr] = dist[cur] + 1
			queue = append(queue, nbr)
		}
	}

	return dist, nil
}

// enqueue marks idx visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	id := w.graph.ID(idx)
	w.visited[idx] = true
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = w.graph.ID(parent)
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the valve in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	id := w.graph.ID(item.idx)
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.NeighborIndices(item.idx) {
		if w.visited[nbr] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(w.graph.ID(item.idx), w.graph.ID(nbr)) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.idx)
	}
}
