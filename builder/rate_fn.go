// Package builder provides helper types for configuring valve flow-rate
// distributions in network constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultRate is the flow rate assigned to each valve when no custom RateFn is provided.
const DefaultRate = 1

// RateFn produces a valve flow rate given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type RateFn func(rng *rand.Rand) int

// ConstantRateFn returns a RateFn that always yields the provided value.
// Panics if value < 0.
func ConstantRateFn(value int) RateFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantRateFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformRateFn returns a RateFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min. With a nil rng it yields min.
func UniformRateFn(min, max int) RateFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformRateFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Intn(max-min+1)
	}
}

// SparseRateFn returns a RateFn that yields a uniform rate in [min, max] with
// probability p and 0 otherwise, mimicking networks where most valves are jammed.
// Panics if p is outside [0,1] or the range is invalid. With a nil rng it yields 0.
func SparseRateFn(p float64, min, max int) RateFn {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("SparseRateFn: p must be in [0,1], got %g", p))
	}
	uniform := UniformRateFn(min, max)

	return func(rng *rand.Rand) int {
		if rng == nil || rng.Float64() >= p {
			return 0
		}

		return uniform(rng)
	}
}

// WithConstantRate sets a fixed rate via ConstantRateFn.
func WithConstantRate(r int) BuilderOption {
	return WithRateFn(ConstantRateFn(r))
}

// WithUniformRate sets rates ∼ U[min,max] via UniformRateFn.
func WithUniformRate(min, max int) BuilderOption {
	return WithRateFn(UniformRateFn(min, max))
}

// WithSparseRate sets rates via SparseRateFn.
func WithSparseRate(p float64, min, max int) BuilderOption {
	return WithRateFn(SparseRateFn(p, min, max))
}
