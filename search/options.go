// SPDX-License-Identifier: MIT
// Package: search
//
// options.go: functional options for NewEngine.

package search

import "fmt"

// Bound selects the pruning policy.
type Bound int

const (
	// UpperBound runs depth-first branch-and-bound with an admissible
	// optimistic estimate (default).
	UpperBound Bound = iota
	// NoBound runs the plain exhaustive recursion.
	NoBound
)

// String returns the config spelling of the bound policy.
func (b Bound) String() string {
	switch b {
	case UpperBound:
		return "upper"
	case NoBound:
		return "none"
	default:
		return fmt.Sprintf("Bound(%d)", int(b))
	}
}

// ParseBound is the inverse of Bound.String.
func ParseBound(s string) (Bound, error) {
	switch s {
	case "upper", "":
		return UpperBound, nil
	case "none":
		return NoBound, nil
	default:
		return 0, fmt.Errorf("%w: unknown bound %q", ErrOptionViolation, s)
	}
}

// Options holds the resolved Engine configuration.
type Options struct {
	// Bound selects pruning; results are identical for every policy.
	Bound Bound

	// internal error recorded during option parsing
	err error
}

// Option configures an Engine.
type Option func(*Options)

// DefaultOptions returns UpperBound pruning.
func DefaultOptions() Options {
	return Options{Bound: UpperBound}
}

// WithBound selects the pruning policy. Unknown values surface as
// ErrOptionViolation from NewEngine.
func WithBound(b Bound) Option {
	return func(o *Options) {
		switch b {
		case UpperBound, NoBound:
			o.Bound = b
		default:
			o.err = fmt.Errorf("%w: %s", ErrOptionViolation, b)
		}
	}
}
