// Package jacobian defines callback types and perturbation modes.
package jacobian

// Evaluator is the caller-supplied forward callback.
//
// It receives a perturbation vector of length n (the input dimension) and
// returns the corresponding response vector of length m (the output
// dimension). The zero vector is the baseline and must be accepted; vectors
// with many simultaneously nonzero entries must be accepted too.
//
// Evaluator must be side-effect-free with respect to observable state
// between calls (identical input ⇒ identical output); mutating an internal
// call counter for diagnostics is permitted.
type Evaluator func(perturbation []float64) ([]float64, error)

// ComplexEvaluator is the complex-step variant of Evaluator.
//
// It receives x0 + i·h·e (a complex perturbation) and returns the complex
// response; the imaginary part divided by the step recovers the forward
// sensitivity without subtractive cancellation. Only required when Mode is
// ComplexStep.
type ComplexEvaluator func(x []complex128) ([]complex128, error)

// Mode selects how forward sensitivities are extracted from the evaluator.
//
//   - ForwardDifference — first-order finite difference against a baseline
//     response: (f(h·e) − f(0)) / h. One extra baseline evaluation per pass.
//   - ComplexStep — imag(f(i·h·e)) / h. No baseline subtraction, accurate
//     to machine precision, but requires a ComplexEvaluator.
//
// There is no reverse-mode analog: decoding a colored response assumes each
// column's contribution is linearly attributable, which only forward
// sensitivity provides.
type Mode int

const (
	// ForwardDifference mode: finite difference against a zero-vector baseline.
	ForwardDifference Mode = iota

	// ComplexStep mode: imaginary-part extraction via a ComplexEvaluator.
	ComplexStep
)

// String returns a stable human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ForwardDifference:
		return "forward-difference"
	case ComplexStep:
		return "complex-step"
	default:
		return "unknown"
	}
}
