// SPDX-License-Identifier: MIT

// Package jacobian: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// jacobian package. Callers match them via errors.Is; context is added with
// fmt.Errorf("ctx: %w", ErrX) at the detection site, never by rewording.

package jacobian

import "errors"

var (
	// ErrInvalidDimensions indicates that requested buffer dimensions are non-positive.
	ErrInvalidDimensions = errors.New("jacobian: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("jacobian: index out of range")

	// ErrFrozen signals a mutation attempt on a buffer that was already
	// handed back as an immutable result.
	ErrFrozen = errors.New("jacobian: buffer is frozen")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("jacobian: NaN or Inf encountered")

	// ErrNilEvaluator indicates that a nil evaluator callback was supplied.
	ErrNilEvaluator = errors.New("jacobian: evaluator is nil")

	// ErrResponseSize indicates that an evaluator returned a response whose
	// length differs from the established output dimension.
	ErrResponseSize = errors.New("jacobian: evaluator response size mismatch")
)
