// Package simjac computes sparse Jacobians with far fewer function
// evaluations than one-perturbation-per-column, by coloring columns that
// can be perturbed simultaneously.
//
// 🚀 What is simjac?
//
//	A deterministic, zero-global-state library that brings together:
//		• Sparsity discovery: sample full finite-difference Jacobians and
//		  keep every cell that ever exceeds tolerance
//		• Graph coloring: greedy distance-1 coloring of the column
//		  conflict graph derived from the sparsity pattern
//		• Colored evaluation: one function call per color, decoded back
//		  into individual Jacobian entries
//		• Persistence: lossless round-trip of a coloring + pattern, with
//		  per-instance or per-type cache keys
//
// ✨ Why choose simjac?
//
//   - Evaluation count = number of colors, not number of columns
//   - Forward finite-difference and complex-step modes
//   - Reproducible runs – fixed orders, seeded sampling, no hidden state
//   - Explicit fallback – weak colorings are rejected, never silently used
//
// Under the hood, everything is organized under five subpackages:
//
//	jacobian/   — evaluator contracts, perturbation modes, sparse result buffer
//	sparsity/   — empirical nonzero-pattern discovery
//	coloring/   — conflict graph, greedy coloring, decode tables
//	simul/      — colored & uncolored evaluation, orchestration, thresholds
//	colorstore/ — serialization and cache keyed by component identity
//
// Quick ASCII example:
//
//	    J = ⎡x . .⎤      columns 0,1,2 touch disjoint rows,
//	        ⎢. x .⎥  ⇒   so one perturbation of all three at once
//	        ⎣. . x⎦      recovers the whole diagonal: 3 columns, 1 color.
//
// Dive into the subpackage docs for contracts, invariants and examples.
//
//	go get github.com/katalvlaran/simjac
package simjac
