// SPDX-License-Identifier: MIT

package optimizer

import (
	"iter"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/volcano/search"
)

// Partitions yields (A, flow∖A) for every subset A of flow with
// |A| ≤ ⌊|flow|/2⌋, smallest subsets first and lexicographic within a size.
//
// Swapping the two actors does not change the summed result, so larger A
// are skipped. When |flow| is even, subsets of size exactly |flow|/2 still
// appear together with their complements. The empty A is included: it is the
// single actor working alone.
func Partitions(flow search.Set) iter.Seq2[search.Set, search.Set] {
	return func(yield func(search.Set, search.Set) bool) {
		members := flow.Bits()
		m := len(members)
		if !yield(0, flow) {
			return
		}
		for k := 1; k <= m/2; k++ {
			gen := combin.NewCombinationGenerator(m, k)
			comb := make([]int, k)
			for gen.Next() {
				gen.Combination(comb)
				var a search.Set
				for _, c := range comb {
					a = a.With(members[c])
				}
				if !yield(a, flow.Minus(a)) {
					return
				}
			}
		}
	}
}

// PartitionCount returns how many pairs Partitions(flow) yields:
// Σ C(m, k) for k = 0..⌊m/2⌋.
func PartitionCount(flow search.Set) int {
	m := flow.Len()
	total := 0
	for k := 0; k <= m/2; k++ {
		total += combin.Binomial(m, k)
	}

	return total
}
