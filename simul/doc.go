// Package simul evaluates sparse Jacobians through a coloring: one function
// call per color instead of one per column, plus the uncolored fallback and
// the orchestration that ties discovery, coloring and evaluation together.
//
// 🚀 What is simultaneous evaluation?
//
//	All columns of one ColorGroup touch disjoint rows, so a single
//	perturbation that is nonzero at every group column produces a response
//	that decomposes exactly: each response row belongs to at most one group
//	column (the group's decode table says which). Walking the groups
//	reconstructs the full sparse Jacobian in NumColors evaluations.
//
// ✨ Key properties:
//   - Forward-mode only: finite-difference against a zero-vector baseline,
//     or complex-step via a ComplexEvaluator. Decoding relies on linear
//     attribution of each column's contribution, which reverse mode cannot
//     provide in this scheme.
//   - Strictly synchronous: the user callback is never invoked
//     concurrently within one pass, and a pass runs to completion.
//   - Explicit threshold policy: Run rejects a coloring whose improvement
//     falls below MinImprovement and falls back to one-perturbation-per-
//     column — a weak coloring is never silently applied.
//
// ⚙️ Usage:
//
//	res, err := simul.Run(eval, n,
//	    simul.WithMinImprovement(25),
//	    simul.WithDiscovery(sparsity.WithTrials(5)),
//	)
//	// res.Jacobian is frozen; res.Colored reports which path ran.
//
// Cost: discovery (Trials·n + 1) + NumColors (+1 baseline) calls when the
// coloring is accepted; discovery + n (+1) calls when it is rejected.
package simul
