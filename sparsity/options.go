// SPDX-License-Identifier: MIT

// Package sparsity: functional configuration for discovery sampling.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package sparsity

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTrials is the number of full uncolored Jacobian estimations
	// performed before the pattern is finalized (the n_full_jacobians knob).
	// Each trial redraws every column's perturbation magnitude, so unlucky
	// cancellations in one trial are caught by another.
	DefaultTrials = 3

	// DefaultTolerance is the magnitude below which a sampled sensitivity
	// is treated as structurally zero.
	DefaultTolerance = 1e-12

	// DefaultPerturbation is the base forward-difference step. Per-column
	// steps are this value scaled by a random factor in [0.5, 1.5).
	DefaultPerturbation = 1e-6

	// DefaultSeed seeds the magnitude sampler. A fixed default keeps
	// Discover idempotent; override only to probe sampling sensitivity.
	DefaultSeed = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTrialsInvalid       = "sparsity: WithTrials: trials must be > 0"
	panicToleranceInvalid    = "sparsity: WithTolerance: tol must be finite, non-negative"
	panicPerturbationInvalid = "sparsity: WithPerturbation: step must be finite, positive"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	trials int     // > 0; DefaultTrials
	tol    float64 // >= 0; DefaultTolerance
	step   float64 // > 0; DefaultPerturbation
	seed   int64   // DefaultSeed
}

// WithTrials sets the number of full-Jacobian discovery trials.
// More trials shrink the false-negative risk of an unlucky cancellation;
// each trial costs n evaluator calls. Panics if trials <= 0.
func WithTrials(trials int) Option {
	if trials <= 0 {
		panic(panicTrialsInvalid)
	}

	return func(o *Options) { o.trials = trials }
}

// WithTolerance sets the nonzero-classification threshold.
// Sensitivities with |s| <= tol are treated as structural zeros.
// Panics if tol is negative or non-finite.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithPerturbation sets the base forward-difference step.
// Panics if step is non-positive or non-finite.
func WithPerturbation(step float64) Option {
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		panic(panicPerturbationInvalid)
	}

	return func(o *Options) { o.step = step }
}

// WithSeed seeds the per-column magnitude sampler. Any value is valid;
// equal seeds (with equal options) reproduce identical patterns.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults. Last-writer-wins; stable for a given setter sequence.
func gatherOptions(user ...Option) Options {
	o := Options{
		trials: DefaultTrials,
		tol:    DefaultTolerance,
		step:   DefaultPerturbation,
		seed:   DefaultSeed,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
