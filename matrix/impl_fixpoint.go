// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Iterative path-composition APSP: repeat full scans until quiet.
//
// Contract:
//   - Called after seedTunnels; the diagonal is 0 and is never rewritten.
//   - A composite start→mid→end is accepted only when end != start and it is
//     strictly shorter than the known start→end distance (or none is known).

package matrix

import "context"

// fixpointInPlace composes known legs until a complete pass produces no update.
// Each pass at least doubles the longest path length fully resolved, so the
// number of passes is O(log diameter) in practice and bounded by n.
func fixpointInPlace(ctx context.Context, d *Distances) error {
	n := d.n
	data := d.data

	var (
		start, mid, end int
		d1, d2, cur     int
		updated         bool
	)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.passes++
		updated = false
		for start = 0; start < n; start++ {
			for mid = 0; mid < n; mid++ {
				if mid == start {
					continue
				}
				d1 = data[start*n+mid]
				if d1 == noPath {
					continue
				}
				for end = 0; end < n; end++ {
					if end == start {
						continue
					}
					d2 = data[mid*n+end]
					if d2 == noPath || mid == end {
						continue
					}
					cur = data[start*n+end]
					if cur != noPath && cur <= d1+d2 {
						continue
					}
					data[start*n+end] = d1 + d2
					updated = true
				}
			}
		}
		if !updated {
			return nil
		}
	}
}
