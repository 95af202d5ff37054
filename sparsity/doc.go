// Package sparsity discovers the structurally nonzero pattern of a Jacobian
// by sampling full finite-difference Jacobians with randomized perturbation
// magnitudes.
//
// 🚀 What is sparsity discovery?
//
//	Before columns can be colored, the engine must know which (row, col)
//	cells of the Jacobian can ever be nonzero. Discover estimates the full
//	Jacobian several times — one perturbation per column, each with an
//	independent random magnitude — and keeps every cell whose sensitivity
//	exceeds tolerance in at least one trial.
//
// ✨ Key properties:
//   - Conservative by construction: a cell flagged nonzero in ANY trial is
//     kept. False negatives (silently dropped entries) are the dangerous
//     failure mode; over-inclusion only costs an extra color.
//   - Deterministic: sampling uses a caller-visible seed (default fixed),
//     so two runs with equal options yield identical patterns.
//   - Non-fatal empty result: a pattern with zero nonzeros is reported via
//     ErrEmptySparsity alongside the (valid, empty) Pattern — the caller
//     decides whether to proceed uncolored.
//
// ⚙️ Usage:
//
//	p, err := sparsity.Discover(eval, 10,
//	    sparsity.WithTrials(5),
//	    sparsity.WithTolerance(1e-10),
//	)
//	if errors.Is(err, sparsity.ErrEmptySparsity) {
//	    // trivial or disconnected function; fall back to dense evaluation
//	}
//
// Cost: (Trials × n) + 1 evaluator calls for n input columns.
package sparsity
