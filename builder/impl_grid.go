// SPDX-License-Identifier: MIT
// Package: volcano/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Cell (r,c) is valve index r*cols+c, named via cfg.idFn so IDs stay
//     valid in the record format.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Stable tunnel order: for each (r,c) emit Right then Bottom if present.
//
// Complexity:
//   • Time: O(rows*cols) valves and tunnels.

package builder

import (
	"fmt"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(nw *network, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		addIndexed(nw, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cfg.idFn(r*cols + c)
				if c+1 < cols {
					nw.connect(u, cfg.idFn(r*cols+c+1))
				}
				if r+1 < rows {
					nw.connect(u, cfg.idFn((r+1)*cols+c))
				}
			}
		}

		return nil
	}
}
