// SPDX-License-Identifier: MIT
// Package: search
//
// engine.go: maximum pressure release from a start valve.
//
// Implementation:
//   - NewEngine flattens everything the hot path needs into dense buffers:
//     per-flow-ordinal rate and ordinal, and dist[i*k+b] = minutes from valve i
//     to flow valve b (-1 when unreachable).
//   - Each MaxRelease call owns a private walker; the Engine itself is never
//     written after NewEngine returns.
//   - NoBound: direct recursion, every branch returns its own maximum.
//   - UpperBound: depth-first branch-and-bound with an incumbent. A node is cut
//     when acc + Σ rate_b·(t−1−dist(cur,b)) over eligible unopened b cannot beat
//     the incumbent. Every real continuation opens b no earlier than that, so the
//     cut never removes the optimum.

package search

import (
	"context"
	"sort"

	"go.trai.ch/zerr"

	"github.com/katalvlaran/volcano/core"
	"github.com/katalvlaran/volcano/matrix"
)

// Query is one search request. The zero Restrict is Unrestricted.
type Query struct {
	// Start is the valve the actor stands at.
	Start string
	// Minutes is the remaining time budget.
	Minutes int
	// Opened holds flow ordinals already opened; they are never reopened.
	Opened Set
	// Restrict limits which flow valves may be opened (including Start).
	Restrict Restriction
}

// Stats reports the work done by one call.
type Stats struct {
	// Nodes counts expanded search states.
	Nodes int64
	// Pruned counts states cut by the upper bound (always 0 for NoBound).
	Pruned int64
}

// Engine answers MaxRelease queries over one graph and its distance matrix.
// It is immutable and safe for concurrent use.
type Engine struct {
	g    *core.Graph
	opts Options

	n     int   // valve count
	k     int   // flow valve count
	rate  []int // rate[b]
	ord   []int // ord[b] = valve ordinal of flow ordinal b
	dist  []int // dist[i*k+b]; -1 = unreachable
	order []int // order[i*k:(i+1)*k] = flow ordinals by ascending dist from i
	full  Set
}

// NewEngine prepares an Engine. d must have been built from g.
//
// Errors:
//   - ErrNilGraph, ErrNilDistances, ErrDimensionMismatch, ErrOptionViolation.
//
// Complexity: O(n·k log k) time, O(n·k) space.
func NewEngine(g *core.Graph, d *matrix.Distances, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if d == nil {
		return nil, ErrNilDistances
	}
	if d.Len() != g.Len() {
		return nil, zerr.With(zerr.With(ErrDimensionMismatch, "graph", g.Len()), "matrix", d.Len())
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &Engine{
		g:    g,
		opts: o,
		n:    g.Len(),
		k:    g.FlowCount(),
		ord:  g.FlowIndices(),
	}
	e.full = FullSet(e.k)
	e.rate = make([]int, e.k)
	for b, i := range e.ord {
		e.rate[b] = g.Rate(i)
	}

	e.dist = make([]int, e.n*e.k)
	e.order = make([]int, e.n*e.k)
	for i := 0; i < e.n; i++ {
		row := e.dist[i*e.k : (i+1)*e.k]
		for b, j := range e.ord {
			if v, ok := d.At(i, j); ok {
				row[b] = v
			} else {
				row[b] = -1
			}
		}
		ord := e.order[i*e.k : (i+1)*e.k]
		for b := range ord {
			ord[b] = b
		}
		sort.SliceStable(ord, func(x, y int) bool { return row[ord[x]] < row[ord[y]] })
	}

	return e, nil
}

// Bound returns the pruning policy in effect.
func (e *Engine) Bound() Bound { return e.opts.Bound }

// FlowSet returns every flow ordinal of the engine's graph.
func (e *Engine) FlowSet() Set { return e.full }

// MaxRelease returns the maximum pressure releasable from q.Start within
// q.Minutes. Opening Start (when it has a positive rate, is unopened and is
// allowed by q.Restrict) is included in the result.
//
// Errors:
//   - ErrNegativeTime, ErrStartNotFound, or ctx.Err() on cancellation.
func (e *Engine) MaxRelease(ctx context.Context, q Query) (int, error) {
	v, _, err := e.MaxReleaseStats(ctx, q)

	return v, err
}

// MaxReleaseStats is MaxRelease plus the work counters of the call.
func (e *Engine) MaxReleaseStats(ctx context.Context, q Query) (int, Stats, error) {
	if q.Minutes < 0 {
		return 0, Stats{}, zerr.With(ErrNegativeTime, "minutes", q.Minutes)
	}
	start, ok := e.g.Index(q.Start)
	if !ok {
		return 0, Stats{}, zerr.With(ErrStartNotFound, "start", q.Start)
	}
	if q.Minutes == 0 {
		return 0, Stats{}, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	w := walker{
		e:     e,
		ctx:   ctx,
		allow: q.Restrict.Mask().Intersect(e.full),
	}

	opened := q.Opened.Intersect(e.full)
	t := q.Minutes
	acc := 0
	if b, ok := e.g.FlowBit(start); ok && !opened.Has(b) && w.allow.Has(b) {
		opened = opened.With(b)
		t--
		acc = e.rate[b] * t
	}

	var best int
	switch e.opts.Bound {
	case NoBound:
		best = acc + w.exact(start, t, opened)
	default:
		w.best = acc
		w.branch(start, t, opened, acc)
		best = w.best
	}
	if w.err != nil {
		return 0, w.stats(), w.err
	}

	return best, w.stats(), nil
}

// walker holds the per-call mutable state.
type walker struct {
	e     *Engine
	ctx   context.Context
	allow Set

	best   int
	steps  int64 // sparse cancellation checks counter
	pruned int64
	err    error
}

func (w *walker) stats() Stats { return Stats{Nodes: w.steps, Pruned: w.pruned} }

// tick counts one node and checks the context every 4096 nodes.
func (w *walker) tick() bool {
	w.steps++
	if w.err != nil {
		return false
	}
	if w.steps&4095 == 0 {
		if err := w.ctx.Err(); err != nil {
			w.err = err
			return false
		}
	}

	return true
}

// exact returns the best additional release from cur with t minutes left,
// cur already handled.
func (w *walker) exact(cur, t int, opened Set) int {
	if !w.tick() {
		return 0
	}
	e := w.e
	row := e.dist[cur*e.k : (cur+1)*e.k]
	best := 0
	for _, b := range e.order[cur*e.k : (cur+1)*e.k] {
		d := row[b]
		if d <= 0 || d > t-1 {
			continue
		}
		if opened.Has(b) || !w.allow.Has(b) {
			continue
		}
		rem := t - d - 1
		got := e.rate[b]*rem + w.exact(e.ord[b], rem, opened.With(b))
		if got > best {
			best = got
		}
		if w.err != nil {
			return 0
		}
	}

	return best
}

// branch explores from cur with t minutes left and acc released so far,
// raising w.best when a better total is seen.
func (w *walker) branch(cur, t int, opened Set, acc int) {
	if !w.tick() {
		return
	}
	if acc > w.best {
		w.best = acc
	}
	e := w.e
	row := e.dist[cur*e.k : (cur+1)*e.k]
	ord := e.order[cur*e.k : (cur+1)*e.k]

	bound := acc
	for _, b := range ord {
		d := row[b]
		if d <= 0 || d > t-1 || opened.Has(b) || !w.allow.Has(b) {
			continue
		}
		bound += e.rate[b] * (t - d - 1)
	}
	if bound == acc {
		return // leaf
	}
	if bound <= w.best {
		w.pruned++
		return
	}

	for _, b := range ord {
		d := row[b]
		if d <= 0 || d > t-1 || opened.Has(b) || !w.allow.Has(b) {
			continue
		}
		rem := t - d - 1
		w.branch(e.ord[b], rem, opened.With(b), acc+e.rate[b]*rem)
		if w.err != nil {
			return
		}
	}
}
