// SPDX-License-Identifier: MIT
// Package search: sentinel error set.

package search

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"

	"github.com/katalvlaran/volcano/core"
)

var (
	// ErrNilGraph is returned by NewEngine when the graph is nil.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNilDistances is returned by NewEngine when the distance matrix is nil.
	ErrNilDistances = errors.New("search: distances are nil")

	// ErrDimensionMismatch is returned when the matrix order differs from the graph size.
	ErrDimensionMismatch = errors.New("search: distance matrix does not match graph")

	// ErrStartNotFound is returned when Query.Start names no valve.
	ErrStartNotFound = errors.New("search: start valve not found")

	// ErrNegativeTime is returned when Query.Minutes is below zero.
	ErrNegativeTime = errors.New("search: negative time budget")

	// ErrNotFlowValve is returned by SetOfIDs for a zero-rate valve.
	ErrNotFlowValve = errors.New("search: valve has zero flow rate")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

func notFound(id string) error {
	return zerr.With(fmt.Errorf("%w: %q", core.ErrValveNotFound, id), "valve", id)
}

func notFlow(id string) error {
	return zerr.With(ErrNotFlowValve, "valve", id)
}
