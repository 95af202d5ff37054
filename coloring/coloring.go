// SPDX-License-Identifier: MIT

// Package coloring - Coloring type, construction & validation.
//
// Purpose:
//   - Hold the ordered partition of columns into ColorGroups plus, per group,
//     the decode table row → owning column used to disentangle a combined
//     perturbation response.
//   - Reconstruct and fully re-validate a Coloring from raw parts (the
//     persistence path), so a corrupt or hand-built artifact can never
//     smuggle an invalid grouping into colored evaluation.

package coloring

import "github.com/katalvlaran/simjac/sparsity"

// Coloring is an ordered partition of the columns [0, n) into groups that
// are safe to perturb simultaneously, with per-group decode tables.
//
// Invariants (enforced by Greedy and New):
//   - every column appears in exactly one group;
//   - no two columns of one group share a structurally nonzero row.
type Coloring struct {
	nCols  int
	groups [][]int       // ordered groups; column order inside a group is preserved
	owner  []map[int]int // owner[g][row] = the only column of group g nonzero in row
}

// NumColors returns the number of groups — the number of evaluator calls
// colored evaluation will make. Complexity: O(1).
func (c *Coloring) NumColors() int { return len(c.groups) }

// NumColumns returns the total column count n. Complexity: O(1).
func (c *Coloring) NumColumns() int { return c.nCols }

// Group returns a copy of group g's column indices, or nil when g is out of
// range. Complexity: O(|group|).
func (c *Coloring) Group(g int) []int {
	if g < 0 || g >= len(c.groups) {
		return nil
	}
	out := make([]int, len(c.groups[g]))
	copy(out, c.groups[g])

	return out
}

// Groups returns a deep copy of all groups in order. Complexity: O(n).
func (c *Coloring) Groups() [][]int {
	out := make([][]int, len(c.groups))
	for g := range c.groups {
		out[g] = c.Group(g)
	}

	return out
}

// OwnerOf returns the column of group g owning the given row, if any.
// Rows absent from the table are structural zeros for that group.
// Complexity: O(1) expected.
func (c *Coloring) OwnerOf(g, row int) (col int, ok bool) {
	if g < 0 || g >= len(c.owner) {
		return 0, false
	}
	col, ok = c.owner[g][row]

	return col, ok
}

// DecodeTable returns a copy of group g's row → column table, or nil when g
// is out of range. Complexity: O(|table|).
func (c *Coloring) DecodeTable(g int) map[int]int {
	if g < 0 || g >= len(c.owner) {
		return nil
	}
	out := make(map[int]int, len(c.owner[g]))
	for r, col := range c.owner[g] {
		out[r] = col
	}

	return out
}

// Improvement returns the evaluation-count reduction in percent:
// (1 − colors/columns) · 100. A one-color coloring of 10 columns yields 90.
// Complexity: O(1).
func (c *Coloring) Improvement() float64 {
	if c.nCols == 0 {
		return 0
	}

	return (1 - float64(len(c.groups))/float64(c.nCols)) * 100
}

// New reconstructs a Coloring from raw groups and re-derives the decode
// tables from the pattern, validating every invariant on the way.
//
// Stage 1 (Validate): pattern non-nil, pattern width matches nCols.
// Stage 2 (Partition): every column in [0, nCols) appears exactly once.
// Stage 3 (Decode): build owner tables; a row owned twice within one group
// means two same-group columns share that row → ErrGroupConflict.
//
// Errors: ErrNilPattern, ErrDimensionMismatch, ErrNotPartition, ErrGroupConflict.
// Complexity: O(n + nnz).
func New(groups [][]int, nCols int, p *sparsity.Pattern) (*Coloring, error) {
	if p == nil {
		return nil, ErrNilPattern
	}
	if nCols <= 0 || p.Cols() != nCols {
		return nil, ErrDimensionMismatch
	}

	// Partition completeness: each column exactly once, all in range.
	seen := make([]bool, nCols)
	total := 0
	for _, grp := range groups {
		for _, col := range grp {
			if col < 0 || col >= nCols || seen[col] {
				return nil, ErrNotPartition
			}
			seen[col] = true
			total++
		}
	}
	if total != nCols {
		return nil, ErrNotPartition
	}

	// Decode tables; uniqueness per (group, row) is exactly conflict-freedom.
	owner := make([]map[int]int, len(groups))
	for g, grp := range groups {
		owner[g] = make(map[int]int)
		for _, col := range grp {
			for _, row := range p.ColumnRows(col) {
				if _, taken := owner[g][row]; taken {
					return nil, ErrGroupConflict
				}
				owner[g][row] = col
			}
		}
	}

	// Deep-copy groups so the caller's slices cannot mutate the invariant.
	cp := make([][]int, len(groups))
	for g := range groups {
		cp[g] = make([]int, len(groups[g]))
		copy(cp[g], groups[g])
	}

	return &Coloring{nCols: nCols, groups: cp, owner: owner}, nil
}

// Validate re-checks an existing coloring against a pattern, returning the
// first violated invariant. Useful after loading a persisted coloring when
// the caller wants more than the dimension check.
// Errors: same set as New. Complexity: O(n + nnz).
func Validate(c *Coloring, p *sparsity.Pattern) error {
	if c == nil {
		return ErrDimensionMismatch
	}
	_, err := New(c.groups, c.nCols, p)

	return err
}
