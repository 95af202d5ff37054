// Package jacobian defines the evaluator contracts, perturbation modes and
// the sparse result buffer shared by sparsity discovery and colored
// evaluation.
//
// 🚀 What lives here?
//
//   - Evaluator / ComplexEvaluator — caller-supplied forward callbacks.
//     The engine never looks inside the evaluated function; it only relies
//     on the callback contract below.
//   - Mode — ForwardDifference (default) or ComplexStep.
//   - Buffer — a bounds-checked sparse (row, col) → value accumulator.
//     Owned by the engine while a Jacobian is being assembled, then frozen
//     and handed to the caller as an immutable result.
//
// ⚙️ Callback contract:
//
//	resp, err := eval(perturbation)   // len(perturbation) == n inputs
//	                                  // len(resp)         == m outputs
//
//   - Must tolerate the zero vector (baseline call).
//   - Must tolerate many simultaneously nonzero entries.
//   - Must be side-effect-free between calls (idempotent for equal input);
//     an internal call counter for diagnostics is fine.
//   - Errors propagate immediately; evaluation failures are not retried.
//
// See sparsity, coloring and simul for the stages that consume these types.
package jacobian
