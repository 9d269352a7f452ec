// SPDX-License-Identifier: MIT
// Package: volcano/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over unordered pairs {i,j}, i<j: each tunnel
//     pair is included independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Valve rates are drawn before any tunnel trial, so the rate sequence does
//     not depend on p.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i).

package builder

import (
	"fmt"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random network over n
// valves with independent tunnel probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(nw *network, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addIndexed(nw, cfg, n)

		var i, j int
		for i = 0; i < n; i++ {
			u := cfg.idFn(i)
			for j = i + 1; j < n; j++ {
				switch {
				case p == probMax:
				case p == probMin:
					continue
				case cfg.rng.Float64() >= p:
					continue
				}
				nw.connect(u, cfg.idFn(j))
			}
		}

		return nil
	}
}
