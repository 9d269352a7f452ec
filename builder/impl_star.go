// SPDX-License-Identifier: MIT
// Package: volcano/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Index 0 is the hub; leaves 1..n-1 are added and connected in ascending order.

package builder

import (
	"fmt"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub with n-1 leaves.
func Star(n int) Constructor {
	return func(nw *network, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		addIndexed(nw, cfg, n)
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			nw.connect(hub, cfg.idFn(i))
		}

		return nil
	}
}
