// SPDX-License-Identifier: MIT

package volcano

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("volcano: invalid option supplied")

type options struct {
	logger  *slog.Logger
	workers int // 0 = use the scenario value

	err error
}

// Option tunes a Solve call.
type Option func(*options)

func defaultOptions() options {
	return options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger routes progress records to l; nil keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers overrides Scenario.Workers.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}
