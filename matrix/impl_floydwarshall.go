// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) over integer minutes with deterministic loop order.
//
// Contract:
//   - Square matrix; -1 means “no path”; diagonal must be 0 before calling.

package matrix

// floydWarshallInPlace runs APSP closure on d in-place.
//
// Policy (assumed by callers):
//   - noPath (-1) denotes "no path" off-diagonal.
//   - The diagonal MUST be 0 before calling (distance to self).
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Distances) {
	n := d.n

	// Predeclare all loop counters and temporaries.
	var (
		k, i, j      int // loop indices
		baseK, baseI int // row base offsets for K and I in the flat buffer
		ik, ij, kj   int // distances d[i,k], d[i,j], d[k,j]
		cand         int // candidate path length via k
	)

	data := d.data

	for k = 0; k < n; k++ { // outer: pick intermediate valve k
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source valve i
			ik = data[i*n+k]
			if ik == noPath { // i cannot reach k
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination valve j
				kj = data[baseK+j]
				if kj == noPath {
					continue
				}
				ij = data[baseI+j]
				cand = ik + kj
				if ij == noPath || cand < ij { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}
