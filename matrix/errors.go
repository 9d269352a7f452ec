// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Builders return these sentinels wrapped with the operation name;
// tests check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when Build receives a nil graph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the enum.
	ErrUnknownAlgorithm = errors.New("matrix: unknown distance algorithm")
)

// matrixErrorf prefixes err with the operation tag, keeping errors.Is intact.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
