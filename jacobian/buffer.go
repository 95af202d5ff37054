// SPDX-License-Identifier: MIT

// Package jacobian - sparse result buffer & safe accessors.
//
// Purpose:
//   - Accumulate decoded Jacobian entries addressed by (row, col).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep deterministic export orders (sorted entries, no map iteration leaks).
//   - Enforce the ownership handoff: the engine writes, then Freeze() makes the
//     buffer immutable before it reaches the caller.
//
// Complexity quicksheet:
//   - NewBuffer: O(1); At/Set: O(1) expected; Entries: O(nnz·log nnz); ToDense: O(r·c).

package jacobian

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// bufErrorf wraps a sentinel with uniform Buffer context and callsite indices.
func bufErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Buffer.%s(%d,%d): %w", method, row, col, err)
}

// cell addresses one Jacobian entry.
type cell struct{ r, c int }

// Entry is one exported nonzero of the assembled Jacobian.
type Entry struct {
	Row, Col int
	Val      float64
}

// Buffer is a sparse m×n Jacobian accumulator.
//
// Writes go through Set with bounds and finiteness checks; once Freeze() is
// called every further Set returns ErrFrozen. Reads are always allowed.
type Buffer struct {
	r, c   int               // row and column counts (> 0)
	vals   map[cell]float64  // nonzero entries; absent key means structural zero
	frozen bool              // set once by Freeze(); guards all mutation
}

// NewBuffer creates an empty rows×cols buffer.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the entry map.
// Complexity: O(1).
func NewBuffer(rows, cols int) (*Buffer, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Buffer{r: rows, c: cols, vals: make(map[cell]float64)}, nil
}

// Rows returns the number of Jacobian rows (outputs). Complexity: O(1).
func (b *Buffer) Rows() int { return b.r }

// Cols returns the number of Jacobian columns (inputs). Complexity: O(1).
func (b *Buffer) Cols() int { return b.c }

// NNZ returns the number of stored entries. Complexity: O(1).
func (b *Buffer) NNZ() int { return len(b.vals) }

// Frozen reports whether the buffer has been sealed. Complexity: O(1).
func (b *Buffer) Frozen() bool { return b.frozen }

// inRange validates a coordinate pair against the buffer shape.
func (b *Buffer) inRange(row, col int) bool {
	return row >= 0 && row < b.r && col >= 0 && col < b.c
}

// Set stores value at (row, col).
// Stage 1 (Validate): frozen state, bounds, finiteness.
// Stage 2 (Execute): write the entry (last-write-wins).
// Errors: ErrFrozen, ErrOutOfRange, ErrNaNInf — wrapped with method context.
// Complexity: O(1) expected.
func (b *Buffer) Set(row, col int, value float64) error {
	if b.frozen {
		return bufErrorf(ctxSet, row, col, ErrFrozen)
	}
	if !b.inRange(row, col) {
		return bufErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return bufErrorf(ctxSet, row, col, ErrNaNInf)
	}
	b.vals[cell{row, col}] = value

	return nil
}

// At returns the value stored at (row, col); structural zeros read as 0.
// Errors: ErrOutOfRange — wrapped with method context.
// Complexity: O(1) expected.
func (b *Buffer) At(row, col int) (float64, error) {
	if !b.inRange(row, col) {
		return 0, bufErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return b.vals[cell{row, col}], nil
}

// Freeze seals the buffer. Idempotent; every Set afterwards returns ErrFrozen.
// Complexity: O(1).
func (b *Buffer) Freeze() { b.frozen = true }

// Entries returns all stored entries in row-major order.
// The slice is freshly allocated; mutating it does not affect the buffer.
// Complexity: O(nnz·log nnz).
func (b *Buffer) Entries() []Entry {
	out := make([]Entry, 0, len(b.vals))
	for k, v := range b.vals {
		out = append(out, Entry{Row: k.r, Col: k.c, Val: v})
	}
	// Deterministic export: row-major, never raw map order.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}

// ToDense materializes the buffer as a dense gonum matrix.
// Structural zeros become explicit 0 entries. The result shares no storage
// with the buffer. Complexity: O(r·c).
func (b *Buffer) ToDense() *mat.Dense {
	d := mat.NewDense(b.r, b.c, nil)
	for k, v := range b.vals {
		d.Set(k.r, k.c, v)
	}

	return d
}
