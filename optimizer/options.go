// SPDX-License-Identifier: MIT

package optimizer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

var (
	// ErrNilSearcher is returned by New when no Searcher is supplied.
	ErrNilSearcher = errors.New("optimizer: searcher is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("optimizer: invalid option supplied")
)

// Options holds the resolved Optimizer configuration.
type Options struct {
	// Workers bounds concurrent partition evaluations in TwoActor.
	Workers int

	// Logger receives progress records; defaults to a discard handler.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures an Optimizer.
type Option func(*Options)

// DefaultOptions uses GOMAXPROCS workers and a silent logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers bounds the partition worker pool. n < 1 → ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the progress logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
