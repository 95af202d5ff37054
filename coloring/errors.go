// SPDX-License-Identifier: MIT

// Package coloring: sentinel error set.

package coloring

import "errors"

var (
	// ErrNilPattern indicates that a nil *sparsity.Pattern was supplied.
	ErrNilPattern = errors.New("coloring: pattern is nil")

	// ErrNotPartition indicates that the supplied groups do not partition
	// the column range [0, n): a column is missing, repeated, or out of range.
	ErrNotPartition = errors.New("coloring: groups are not a partition of columns")

	// ErrGroupConflict indicates that two columns inside one group share a
	// structurally nonzero row, making their responses inseparable.
	ErrGroupConflict = errors.New("coloring: same-group columns share a nonzero row")

	// ErrDimensionMismatch indicates that a coloring and a pattern (or an
	// expected shape) disagree on dimensions.
	ErrDimensionMismatch = errors.New("coloring: dimension mismatch")
)
