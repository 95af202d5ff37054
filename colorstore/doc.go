// Package colorstore persists colorings so the discovery + coloring cost is
// paid once per function, not once per run.
//
// 🚀 What is stored?
//
//	One record per cache key: the column groups, the per-group decode
//	tables, and the sparsity pattern they were derived from, plus the
//	Jacobian dimensions. Marshal/Unmarshal are lossless and idempotent;
//	Unmarshal re-validates every coloring invariant, so a corrupt or
//	hand-edited artifact can never reach colored evaluation.
//
// ✨ Key properties:
//   - Key granularity is an explicit choice: ScopePerType shares one
//     coloring across all instances of the same function, ScopePerInstance
//     keys each call-site instance separately.
//   - Corrupt records are cache misses, never fatal: LoadOrCompute
//     recomputes and overwrites.
//   - A loaded record whose dimensions disagree with the current function
//     fails hard with ErrDimensionMismatch — never truncated or padded.
//   - Loaded colorings are otherwise trusted as-is: there is NO automatic
//     staleness detection. If the function's structure drifted, forcing
//     recomputation is the caller's responsibility.
//
// ⚙️ Usage:
//
//	store, _ := colorstore.NewFileStore(".simjac-cache")
//	key := colorstore.Key(colorstore.ScopePerInstance, "aero.Panel", "wing-3")
//	c, p, err := colorstore.LoadOrCompute(store, key, m, n, func() (*coloring.Coloring, *sparsity.Pattern, error) {
//	    pat, err := sparsity.Discover(eval, n)
//	    if err != nil {
//	        return nil, nil, err
//	    }
//	    col, err := coloring.Greedy(pat)
//	    return col, pat, err
//	}, false)
//
// Concurrency: single-writer-per-key discipline is the caller's to enforce;
// the stores do no cross-process locking.
package colorstore
