// SPDX-License-Identifier: MIT

// Package sparsity: sentinel error set.
// Evaluator-contract violations reuse the jacobian package sentinels
// (ErrNilEvaluator, ErrResponseSize) so callers match one sentinel per
// condition across the whole module.

package sparsity

import "errors"

var (
	// ErrInvalidDimensions indicates that requested pattern dimensions are non-positive.
	ErrInvalidDimensions = errors.New("sparsity: dimensions must be > 0")

	// ErrOutOfRange indicates that a (row, col) index is outside the pattern shape.
	ErrOutOfRange = errors.New("sparsity: index out of range")

	// ErrEmptySparsity reports that no nonzero cell survived any discovery
	// trial. It is a condition, not a failure: Discover still returns the
	// (valid, empty) Pattern, and the caller chooses the fallback.
	ErrEmptySparsity = errors.New("sparsity: no nonzero entries discovered")

	// ErrNoOutputs indicates that the evaluator returned an empty response
	// for the baseline, leaving the Jacobian with zero rows.
	ErrNoOutputs = errors.New("sparsity: evaluator returned no outputs")
)
