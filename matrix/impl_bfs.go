// SPDX-License-Identifier: MIT
// Package: matrix
//
// impl_bfs.go: one breadth-first search per source valve.

package matrix

import (
	"context"

	"github.com/katalvlaran/volcano/bfs"
	"github.com/katalvlaran/volcano/core"
)

// bfsRows fills every row of d from a BFS rooted at that row's valve.
func bfsRows(ctx context.Context, g *core.Graph, d *Distances) error {
	for i := 0; i < d.n; i++ {
		row, err := bfs.Distances(ctx, g, i)
		if err != nil {
			return err
		}
		copy(d.data[i*d.n:(i+1)*d.n], row)
	}

	return nil
}
