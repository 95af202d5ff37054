// SPDX-License-Identifier: MIT

// Package colorstore - record codec.
//
// Purpose:
//   - Lossless, idempotent round-trip of a Coloring + Pattern pair.
//   - The decode tables are persisted alongside the groups AND re-derived on
//     load; any disagreement marks the record corrupt. Validation lives in
//     coloring.New, so the codec cannot resurrect an invalid grouping.
//
// The byte layout (JSON) is an implementation detail of this package; only
// the Marshal/Unmarshal contract is stable.

package colorstore

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/simjac/coloring"
	"github.com/katalvlaran/simjac/sparsity"
)

// record is the on-disk shape. Cells are row-major sorted; map keys are
// rows encoded as JSON object keys.
type record struct {
	Rows   int           `json:"rows"`
	Cols   int           `json:"cols"`
	Groups [][]int       `json:"groups"`
	Decode []map[int]int `json:"decode"`
	Cells  [][2]int      `json:"cells"`
}

// Marshal serializes a coloring and the pattern it was derived from.
// Stage 1 (Validate): non-nil inputs, full invariant re-check against p.
// Stage 2 (Encode): deterministic record (sorted cells, ordered groups).
// Errors: ErrNilColoring; coloring validation errors pass through.
// Complexity: O(n + nnz).
func Marshal(c *coloring.Coloring, p *sparsity.Pattern) ([]byte, error) {
	if c == nil || p == nil {
		return nil, ErrNilColoring
	}
	if err := coloring.Validate(c, p); err != nil {
		return nil, fmt.Errorf("colorstore: refusing to persist invalid coloring: %w", err)
	}

	cells := p.Cells()
	rec := record{
		Rows:   p.Rows(),
		Cols:   p.Cols(),
		Groups: c.Groups(),
		Decode: make([]map[int]int, c.NumColors()),
		Cells:  make([][2]int, len(cells)),
	}
	for g := 0; g < c.NumColors(); g++ {
		rec.Decode[g] = c.DecodeTable(g)
	}
	for i, cell := range cells {
		rec.Cells[i] = [2]int{cell.Row, cell.Col}
	}

	return json.Marshal(rec)
}

// Unmarshal reconstructs a coloring and pattern from Marshal output.
// Every structural invariant is re-validated; any violation (or undecodable
// input, or decode tables that disagree with the groups) yields
// ErrCorruptRecord so callers can treat the artifact as a cache miss.
// Complexity: O(n + nnz).
func Unmarshal(data []byte) (*coloring.Coloring, *sparsity.Pattern, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}

	p, err := sparsity.NewPattern(rec.Rows, rec.Cols)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	for _, cell := range rec.Cells {
		if markErr := p.Mark(cell[0], cell[1]); markErr != nil {
			return nil, nil, fmt.Errorf("%w: cell (%d,%d): %v", ErrCorruptRecord, cell[0], cell[1], markErr)
		}
	}

	c, err := coloring.New(rec.Groups, rec.Cols, p)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}

	// The persisted decode tables are redundant with (groups, pattern);
	// disagreement means the record was tampered with or torn.
	if len(rec.Decode) != c.NumColors() {
		return nil, nil, fmt.Errorf("%w: decode table count %d, want %d", ErrCorruptRecord, len(rec.Decode), c.NumColors())
	}
	for g := 0; g < c.NumColors(); g++ {
		derived := c.DecodeTable(g)
		if len(rec.Decode[g]) != len(derived) {
			return nil, nil, fmt.Errorf("%w: decode table %d size mismatch", ErrCorruptRecord, g)
		}
		for row, col := range rec.Decode[g] {
			if dcol, ok := derived[row]; !ok || dcol != col {
				return nil, nil, fmt.Errorf("%w: decode table %d row %d", ErrCorruptRecord, g, row)
			}
		}
	}

	return c, p, nil
}
