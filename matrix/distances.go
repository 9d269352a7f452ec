// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Immutable all-pairs travel-time matrix and its Build entry point.
//
// Contract:
//   - Square n×n over graph ordinals; -1 means "no path"; diagonal is 0.
//   - No method mutates a *Distances after Build returns.

package matrix

import (
	"github.com/katalvlaran/volcano/core"
)

const opBuild = "Build"

// noPath marks an unreachable pair in the flat buffer.
const noPath = -1

// Distances is the immutable shortest travel time between every pair of valves.
type Distances struct {
	n      int
	ids    []string // ordinal → valve ID, for name lookups
	index  map[string]int
	data   []int // row-major, data[i*n+j]
	passes int
}

// newDistances allocates an n×n matrix with a zero diagonal and noPath elsewhere.
func newDistances(g *core.Graph) *Distances {
	n := g.Len()
	d := &Distances{
		n:     n,
		ids:   make([]string, n),
		index: make(map[string]int, n),
		data:  make([]int, n*n),
	}
	for i := 0; i < n; i++ {
		id := g.ID(i)
		d.ids[i] = id
		d.index[id] = i
		for j := 0; j < n; j++ {
			if i != j {
				d.data[i*n+j] = noPath
			}
		}
	}

	return d
}

// seedTunnels writes distance 1 for every declared tunnel.
func (d *Distances) seedTunnels(g *core.Graph) {
	for i := 0; i < d.n; i++ {
		for _, j := range g.NeighborIndices(i) {
			d.data[i*d.n+j] = 1
		}
	}
}

// Build computes the all-pairs matrix of g with the selected algorithm.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrUnknownAlgorithm for an Algorithm outside the enum.
//   - ctx.Err() when the configured context is cancelled mid-build.
//
// Complexity:
//   - FloydWarshall: O(n³) time; Fixpoint: O(passes·n³) worst case;
//     BFS: O(n·(n+t)). All use O(n²) space.
func Build(g *core.Graph, opts ...Option) (*Distances, error) {
	if g == nil {
		return nil, matrixErrorf(opBuild, ErrGraphNil)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := newDistances(g)
	var err error
	switch o.Algo {
	case FloydWarshall:
		d.seedTunnels(g)
		floydWarshallInPlace(d)
	case Fixpoint:
		d.seedTunnels(g)
		err = fixpointInPlace(o.Ctx, d)
	case BFS:
		err = bfsRows(o.Ctx, g, d)
	default:
		err = ErrUnknownAlgorithm
	}
	if err != nil {
		return nil, matrixErrorf(opBuild, err)
	}

	return d, nil
}

// Len returns the matrix order (number of valves).
func (d *Distances) Len() int { return d.n }

// At returns the travel time from ordinal i to ordinal j.
// ok is false when j is unreachable from i.
func (d *Distances) At(i, j int) (minutes int, ok bool) {
	v := d.data[i*d.n+j]

	return v, v != noPath
}

// Between returns the travel time between two valves by ID.
// ok is false when either ID is unknown or b is unreachable from a.
func (d *Distances) Between(a, b string) (minutes int, ok bool) {
	i, okA := d.index[a]
	j, okB := d.index[b]
	if !okA || !okB {
		return 0, false
	}

	return d.At(i, j)
}

// Row returns a copy of the distances from ordinal i; -1 marks unreachable.
func (d *Distances) Row(i int) []int {
	return append([]int(nil), d.data[i*d.n:(i+1)*d.n]...)
}

// Reachable counts the valves reachable from ordinal i, excluding i itself.
func (d *Distances) Reachable(i int) int {
	cnt := 0
	for j := 0; j < d.n; j++ {
		if j != i && d.data[i*d.n+j] != noPath {
			cnt++
		}
	}

	return cnt
}

// Passes reports how many full scans the Fixpoint builder needed
// (including the final quiet pass); 0 for the other builders.
func (d *Distances) Passes() int { return d.passes }
