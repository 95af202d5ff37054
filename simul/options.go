// SPDX-License-Identifier: MIT

// Package simul: functional configuration for evaluation and orchestration.
// Same canon as the sparsity options: documented Default* constants as the
// single source of truth, WithX constructors that panic only on nonsensical
// values, gatherOptions resolver with last-writer-wins semantics.

package simul

import (
	"math"

	"github.com/katalvlaran/simjac/jacobian"
	"github.com/katalvlaran/simjac/sparsity"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultStep is the perturbation magnitude applied to every column of
	// a group (finite-difference) or as the imaginary step (complex-step).
	DefaultStep = 1e-6

	// DefaultMinImprovement is the evaluation-reduction percentage below
	// which Run rejects a coloring and falls back to uncolored evaluation.
	// Zero accepts any coloring that saves at least nothing.
	DefaultMinImprovement = 0.0

	// DefaultMode is forward finite-difference; complex-step requires a
	// ComplexEvaluator and must be opted into.
	DefaultMode = jacobian.ForwardDifference

	// DefaultRejectPolicy drops a rejected coloring from the Result.
	DefaultRejectPolicy = DiscardRejected
)

// RejectPolicy decides the fate of a coloring whose improvement falls below
// MinImprovement. The fallback to uncolored evaluation happens either way;
// the policy only controls whether the rejected coloring is retained on the
// Result for inspection.
type RejectPolicy int

const (
	// DiscardRejected drops the rejected coloring; Result.Coloring is nil.
	DiscardRejected RejectPolicy = iota

	// KeepRejected retains the rejected coloring on the Result (it is still
	// NOT used for evaluation).
	KeepRejected
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicStepInvalid        = "simul: WithStep: step must be finite, positive"
	panicImprovementInvalid = "simul: WithMinImprovement: pct must be in [0, 100]"
	panicModeInvalid        = "simul: WithMode: unknown mode"
	panicPolicyInvalid      = "simul: WithRejectPolicy: unknown policy"
	panicCEvalNil           = "simul: WithComplexEvaluator: evaluator must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	mode      jacobian.Mode              // DefaultMode
	step      float64                    // > 0; DefaultStep
	minImp    float64                    // [0, 100]; DefaultMinImprovement
	policy    RejectPolicy               // DefaultRejectPolicy
	ceval     jacobian.ComplexEvaluator  // required only for ComplexStep
	discovery []sparsity.Option          // passed through to sparsity.Discover
}

// WithMode selects the perturbation mode. ComplexStep additionally requires
// WithComplexEvaluator. Panics on an unknown mode.
func WithMode(m jacobian.Mode) Option {
	if m != jacobian.ForwardDifference && m != jacobian.ComplexStep {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// WithStep sets the perturbation magnitude. Panics if step is non-positive
// or non-finite.
func WithStep(step float64) Option {
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = step }
}

// WithMinImprovement sets the rejection threshold in percent: a coloring
// must cut evaluations by at least pct or Run falls back to uncolored
// evaluation. Panics outside [0, 100].
func WithMinImprovement(pct float64) Option {
	if math.IsNaN(pct) || pct < 0 || pct > 100 {
		panic(panicImprovementInvalid)
	}

	return func(o *Options) { o.minImp = pct }
}

// WithRejectPolicy selects what happens to a rejected coloring on the
// Result. Panics on an unknown policy.
func WithRejectPolicy(p RejectPolicy) Option {
	if p != DiscardRejected && p != KeepRejected {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithComplexEvaluator supplies the complex-step callback. Panics on nil.
func WithComplexEvaluator(ce jacobian.ComplexEvaluator) Option {
	if ce == nil {
		panic(panicCEvalNil)
	}

	return func(o *Options) { o.ceval = ce }
}

// WithDiscovery forwards options (trials, tolerance, perturbation, seed) to
// the sparsity.Discover stage inside Run.
func WithDiscovery(opts ...sparsity.Option) Option {
	return func(o *Options) { o.discovery = append(o.discovery, opts...) }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults. Last-writer-wins; stable for a given setter sequence.
func gatherOptions(user ...Option) Options {
	o := Options{
		mode:   DefaultMode,
		step:   DefaultStep,
		minImp: DefaultMinImprovement,
		policy: DefaultRejectPolicy,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
