// SPDX-License-Identifier: MIT
// Package: volcano/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildValves(bopts, cons...). Resolves cfg, runs cons in order
//     against a shared draft network, then emits records.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical valve records.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/volcano/core"
)

// Constructor applies a deterministic mutation to the draft network using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add valves in ascending index order via cfg.idFn.
//   - Preserve determinism for the same config and call order.
type Constructor func(nw *network, cfg builderConfig) error

// BuildValves resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting valve records sorted by ID.
// Any constructor error is wrapped with the context "BuildValves: %w".
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//   - Emitting records: O(V log V + T).
func BuildValves(bopts []BuilderOption, cons ...Constructor) ([]core.Valve, error) {
	cfg := newBuilderConfig(bopts...)
	nw := newNetwork()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildValves: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(nw, cfg); err != nil {
			return nil, fmt.Errorf("BuildValves: %w", err)
		}
	}

	return nw.valves(), nil
}

// BuildGraph is BuildValves followed by core.NewGraph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	valves, err := BuildValves(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(valves)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Every factory adds bidirectional tunnels only, so generated networks always
// pass core.WithStrictSymmetry.

// Cycle builds an n-valve ring (n ≥ 3).
//func Cycle(n int) Constructor

// Path builds a simple corridor of n valves (n ≥ 2).
//func Path(n int) Constructor

// Star builds a hub (index 0) with n-1 leaves (n ≥ 2).
//func Star(n int) Constructor

// Complete connects every pair of n valves (n ≥ 1).
//func Complete(n int) Constructor

// Grid builds an R×C 4-neighborhood grid in row-major index order.
//func Grid(rows, cols int) Constructor

// RandomSparse builds an Erdős–Rényi-like network; requires a seeded RNG for 0<p<1.
//func RandomSparse(n int, p float64) Constructor
