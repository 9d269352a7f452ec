// SPDX-License-Identifier: MIT
// Package: volcano/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn   = PairIDFn             ("AA","AB",...,"ZZ")
//   • rng    = nil                  (pure/deterministic unless seeded)
//   • rateFn = ConstantRateFn(DefaultRate)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Valve ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Flow-rate generator, called once per new valve in index order.
	rateFn RateFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   PairIDFn,
		rng:    nil,
		rateFn: ConstantRateFn(DefaultRate),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
