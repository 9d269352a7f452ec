// SPDX-License-Identifier: MIT
// Package: volcano/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds valves via cfg.idFn in ascending index order (0..n-1).
//   - Emits tunnels (i-1) <-> i for i=1..n-1 in stable increasing order.

package builder

import (
	"fmt"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a corridor of n valves.
func Path(n int) Constructor {
	return func(nw *network, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		addIndexed(nw, cfg, n)
		for i := 1; i < n; i++ {
			nw.connect(cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}
