// Package coloring partitions Jacobian columns into groups that can be
// perturbed simultaneously, via greedy distance-1 coloring of the column
// conflict graph.
//
// 🚀 What is a coloring?
//
//	Two columns conflict when they share a structurally nonzero row: perturb
//	them together and their contributions to that row are inseparable.
//	Model columns as vertices, conflicts as edges, and any proper vertex
//	coloring yields groups of columns that are safe to perturb at once.
//	The number of colors is the number of function evaluations needed.
//
// ✨ Key properties:
//   - Greedy largest-degree-first order, ties broken by column index —
//     valid and reproducible, not necessarily minimum. Optimal coloring is
//     NP-hard; for the diagonal/banded patterns common in this domain the
//     greedy loss is typically small.
//   - Every column lands in exactly one group (partition completeness).
//   - Each group carries a decode table row → owning column, so a combined
//     perturbation response maps back to individual Jacobian entries.
//   - Degenerate dense patterns color to one column per group: no speedup,
//     still correct. An empty pattern colors to a single group.
//
// ⚙️ Usage:
//
//	c, err := coloring.Greedy(pattern)
//	fmt.Println(c.NumColors(), "evaluations instead of", c.NumColumns())
//
// Complexity: O(Σ_r nnz(r)²) conflict edges, O(V+E) greedy pass.
package coloring
