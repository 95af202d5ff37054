package coloring

import (
	"sort"

	"github.com/katalvlaran/simjac/sparsity"
)

// Greedy — distance-1 coloring of the column conflict graph
//
// Description:
//
//	Greedy partitions Jacobian columns into simultaneously-perturbable
//	groups. Columns sharing a structurally nonzero row conflict and must
//	receive different colors; everything else may be merged.
//
// Algorithm Outline:
//  1. Build the conflict graph: for each row, connect its nonzero columns
//     pairwise.
//  2. Order columns by descending conflict degree, ties broken ascending by
//     column index. The order is fixed and deterministic across runs.
//  3. Scan the order; give each column the lowest color not used by any of
//     its already-colored neighbors.
//  4. Materialize groups (columns ascending inside each group) and derive
//     the per-group decode tables row → owning column.
//
// The result is a valid coloring, not necessarily a minimum one — optimal
// coloring is NP-hard, and largest-degree-first greedy is the standard
// fast approximation for the banded/diagonal patterns of this domain.
//
// Degenerate cases:
//   - fully dense pattern → one color per column (correct, no speedup);
//   - empty pattern → a single color holding every column.
//
// Errors:
//   - ErrNilPattern — p is nil.
//
// Complexity:
//
//	Time O(Σ_r nnz(r)² + V·log V), Space O(V + E).
func Greedy(p *sparsity.Pattern) (*Coloring, error) {
	if p == nil {
		return nil, ErrNilPattern
	}
	n := p.Cols()
	g := buildConflicts(p)

	// Fixed deterministic order: descending degree, ascending index on ties.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		di, dj := g.degree(order[i]), g.degree(order[j])
		if di != dj {
			return di > dj
		}

		return order[i] < order[j]
	})

	const uncolored = -1
	color := make([]int, n)
	for i := range color {
		color[i] = uncolored
	}

	nColors := 0
	taken := make([]int, n) // taken[c] == stamp ⇒ color c blocked for current column
	for i := range taken {
		taken[i] = -1
	}
	for stamp, col := range order {
		// Block the colors of already-colored neighbors.
		for nb := range g.adj[col] {
			if color[nb] != uncolored {
				taken[color[nb]] = stamp
			}
		}
		// Lowest free color. At most degree+1 probes, so index n-1 is a
		// safe upper bound and the loop always terminates with a color.
		assigned := uncolored
		for c := 0; c < n; c++ {
			if taken[c] != stamp {
				assigned = c

				break
			}
		}
		color[col] = assigned
		if assigned+1 > nColors {
			nColors = assigned + 1
		}
	}

	// Materialize ordered groups; ascending column order inside each group.
	groups := make([][]int, nColors)
	for col := 0; col < n; col++ {
		groups[color[col]] = append(groups[color[col]], col)
	}

	// New re-derives decode tables and re-checks every invariant; greedy
	// output always passes, so any error here is a programmer error.
	return New(groups, n, p)
}
