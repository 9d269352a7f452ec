// SPDX-License-Identifier: MIT
// Package: volcano/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Connects every unordered pair {i,j}, i<j, in lexicographic index order.
//
// Complexity:
//   • Time: O(n²) tunnels.

package builder

import (
	"fmt"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that links every pair of n valves.
func Complete(n int) Constructor {
	return func(nw *network, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		addIndexed(nw, cfg, n)
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				nw.connect(u, cfg.idFn(j))
			}
		}

		return nil
	}
}
