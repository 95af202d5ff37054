// SPDX-License-Identifier: MIT

// Package sparsity - Pattern storage & deterministic views.
//
// Purpose:
//   - Record the structurally nonzero (row, col) cells of an m×n Jacobian.
//   - Serve the views the coloring stage needs: cells grouped per row and
//     per column, always in sorted order (no map-iteration leaks).
//   - Keep equality cheap for idempotence checks and cache validation.

package sparsity

import "sort"

// Cell addresses one structurally nonzero Jacobian entry.
type Cell struct {
	Row, Col int
}

// Pattern is the set of structurally nonzero cells of an m×n Jacobian.
//
// The zero Pattern is not usable; construct via NewPattern. A Pattern is
// conservative: it may over-include (a cell nonzero in one unlucky trial
// stays in), but discovery is biased so it does not under-include.
type Pattern struct {
	rows, cols int
	nz         map[Cell]struct{}
}

// NewPattern creates an empty rows×cols pattern.
// Errors: ErrInvalidDimensions for non-positive shapes. Complexity: O(1).
func NewPattern(rows, cols int) (*Pattern, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Pattern{rows: rows, cols: cols, nz: make(map[Cell]struct{})}, nil
}

// Rows returns the output dimension m. Complexity: O(1).
func (p *Pattern) Rows() int { return p.rows }

// Cols returns the input dimension n. Complexity: O(1).
func (p *Pattern) Cols() int { return p.cols }

// NNZ returns the number of structurally nonzero cells. Complexity: O(1).
func (p *Pattern) NNZ() int { return len(p.nz) }

// Empty reports whether no cell is marked nonzero. Complexity: O(1).
func (p *Pattern) Empty() bool { return len(p.nz) == 0 }

// Mark records (row, col) as structurally nonzero. Idempotent.
// Errors: ErrOutOfRange. Complexity: O(1) expected.
func (p *Pattern) Mark(row, col int) error {
	if row < 0 || row >= p.rows || col < 0 || col >= p.cols {
		return ErrOutOfRange
	}
	p.nz[Cell{Row: row, Col: col}] = struct{}{}

	return nil
}

// Has reports whether (row, col) is marked nonzero.
// Out-of-range coordinates read as false. Complexity: O(1) expected.
func (p *Pattern) Has(row, col int) bool {
	_, ok := p.nz[Cell{Row: row, Col: col}]

	return ok
}

// Cells returns every nonzero cell in row-major order.
// The slice is freshly allocated. Complexity: O(nnz·log nnz).
func (p *Pattern) Cells() []Cell {
	out := make([]Cell, 0, len(p.nz))
	for c := range p.nz {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}

// ColumnRows returns the sorted rows where column col is nonzero.
// An out-of-range column yields nil. Complexity: O(nnz).
func (p *Pattern) ColumnRows(col int) []int {
	if col < 0 || col >= p.cols {
		return nil
	}
	var rows []int
	for c := range p.nz {
		if c.Col == col {
			rows = append(rows, c.Row)
		}
	}
	sort.Ints(rows)

	return rows
}

// RowColumns returns the sorted columns where row is nonzero.
// An out-of-range row yields nil. Complexity: O(nnz).
func (p *Pattern) RowColumns(row int) []int {
	if row < 0 || row >= p.rows {
		return nil
	}
	var cols []int
	for c := range p.nz {
		if c.Row == row {
			cols = append(cols, c.Col)
		}
	}
	sort.Ints(cols)

	return cols
}

// Equal reports whether two patterns have identical shape and cells.
// A nil other compares unequal. Complexity: O(nnz).
func (p *Pattern) Equal(other *Pattern) bool {
	if other == nil || p.rows != other.rows || p.cols != other.cols || len(p.nz) != len(other.nz) {
		return false
	}
	for c := range p.nz {
		if _, ok := other.nz[c]; !ok {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy. Complexity: O(nnz).
func (p *Pattern) Clone() *Pattern {
	cp := &Pattern{rows: p.rows, cols: p.cols, nz: make(map[Cell]struct{}, len(p.nz))}
	for c := range p.nz {
		cp.nz[c] = struct{}{}
	}

	return cp
}
