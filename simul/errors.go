// SPDX-License-Identifier: MIT

// Package simul: sentinel error set.
// Evaluator-contract violations reuse the jacobian package sentinels
// (ErrNilEvaluator, ErrResponseSize, ErrOutOfRange) so each condition keeps
// a single sentinel module-wide.

package simul

import "errors"

var (
	// ErrNilColoring indicates that a nil *coloring.Coloring was supplied.
	ErrNilColoring = errors.New("simul: coloring is nil")

	// ErrComplexEvaluator indicates that ComplexStep mode was selected
	// without supplying a ComplexEvaluator.
	ErrComplexEvaluator = errors.New("simul: complex-step mode requires a ComplexEvaluator")

	// ErrNoOutputs indicates that the evaluator returned an empty response,
	// leaving the Jacobian with zero rows.
	ErrNoOutputs = errors.New("simul: evaluator returned no outputs")

	// ErrInvalidDimensions indicates non-positive row/column counts.
	ErrInvalidDimensions = errors.New("simul: dimensions must be > 0")
)
