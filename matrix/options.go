// SPDX-License-Identifier: MIT
// Package: matrix
//
// options.go: functional options for Build.

package matrix

import (
	"context"
	"fmt"
)

// Algorithm selects the all-pairs builder.
type Algorithm int

const (
	// FloydWarshall runs the O(n³) dynamic program (default).
	FloydWarshall Algorithm = iota
	// Fixpoint repeats path composition until a pass makes no improvement.
	Fixpoint
	// BFS runs one breadth-first search per source valve.
	BFS
)

// String returns the CLI/config spelling of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case FloydWarshall:
		return "floyd-warshall"
	case Fixpoint:
		return "fixpoint"
	case BFS:
		return "bfs"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm is the inverse of Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "floyd-warshall", "":
		return FloydWarshall, nil
	case "fixpoint":
		return Fixpoint, nil
	case "bfs":
		return BFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Options holds the resolved Build configuration.
type Options struct {
	// Algo selects the builder.
	Algo Algorithm

	// Ctx is checked between BFS sources and fixpoint passes.
	Ctx context.Context
}

// Option mutates Options before Build runs.
type Option func(*Options)

// DefaultOptions returns Floyd–Warshall with a background context.
func DefaultOptions() Options {
	return Options{Algo: FloydWarshall, Ctx: context.Background()}
}

// WithAlgorithm selects the all-pairs builder.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algo = a }
}

// WithContext sets the context used for cancellation checks.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
