// SPDX-License-Identifier: MIT

// Package colorstore: sentinel error set.

package colorstore

import "errors"

var (
	// ErrCacheMiss indicates that no record exists under the requested key.
	ErrCacheMiss = errors.New("colorstore: cache miss")

	// ErrCorruptRecord indicates that a persisted record failed to decode
	// or failed coloring validation. LoadOrCompute treats it as a miss.
	ErrCorruptRecord = errors.New("colorstore: corrupt record")

	// ErrDimensionMismatch indicates that a loaded record's dimensions
	// disagree with the current function's input/output sizes.
	ErrDimensionMismatch = errors.New("colorstore: dimension mismatch")

	// ErrNilStore indicates that a nil Store was supplied.
	ErrNilStore = errors.New("colorstore: store is nil")

	// ErrNilCompute indicates that a nil compute callback was supplied.
	ErrNilCompute = errors.New("colorstore: compute callback is nil")

	// ErrEmptyKey indicates an empty cache key.
	ErrEmptyKey = errors.New("colorstore: empty key")

	// ErrNilColoring indicates that a nil coloring or pattern was passed to Marshal.
	ErrNilColoring = errors.New("colorstore: coloring or pattern is nil")
)
