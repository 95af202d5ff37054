// SPDX-License-Identifier: MIT

// Package coloring - column conflict graph.
//
// Purpose:
//   - Derive the adjacency structure the greedy pass colors: columns are
//     vertices, and an edge joins two columns whenever they share a
//     structurally nonzero row.
//   - Keep construction deterministic: rows are scanned in ascending order
//     and neighbor sets are materialized per column index, so the same
//     pattern always yields the same adjacency.

package coloring

import "github.com/katalvlaran/simjac/sparsity"

// conflictGraph is the adjacency of the column conflict graph.
// adj[c] holds the set of columns that cannot share a color with c.
type conflictGraph struct {
	n   int
	adj []map[int]struct{}
}

// buildConflicts scans the pattern row by row and connects every pair of
// columns that co-occur in a row.
// Complexity: O(Σ_r nnz(r)²) time, O(V+E) space.
func buildConflicts(p *sparsity.Pattern) *conflictGraph {
	g := &conflictGraph{n: p.Cols(), adj: make([]map[int]struct{}, p.Cols())}
	for c := 0; c < g.n; c++ {
		g.adj[c] = make(map[int]struct{})
	}

	for row := 0; row < p.Rows(); row++ {
		cols := p.RowColumns(row) // ascending, deterministic
		for i := 0; i < len(cols); i++ {
			for j := i + 1; j < len(cols); j++ {
				g.adj[cols[i]][cols[j]] = struct{}{}
				g.adj[cols[j]][cols[i]] = struct{}{}
			}
		}
	}

	return g
}

// degree returns the number of conflict neighbors of column c.
func (g *conflictGraph) degree(c int) int { return len(g.adj[c]) }
