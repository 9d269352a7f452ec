// SPDX-License-Identifier: MIT
// Package: volcano/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds valves via cfg.idFn in ascending index order (0..n-1).
//   • Emits tunnels in stable order i <-> (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) valves + O(n) tunnel pairs.

package builder

import (
	"fmt"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-valve ring.
func Cycle(n int) Constructor {
	return func(nw *network, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		addIndexed(nw, cfg, n)
		for i := 0; i < n; i++ {
			nw.connect(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}
