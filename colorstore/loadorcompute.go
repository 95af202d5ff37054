package colorstore

import (
	"fmt"

	"github.com/katalvlaran/simjac/coloring"
	"github.com/katalvlaran/simjac/sparsity"
)

// ComputeFunc produces a fresh coloring + pattern pair on a cache miss.
type ComputeFunc func() (*coloring.Coloring, *sparsity.Pattern, error)

// LoadOrCompute — cached coloring lookup
//
// Description:
//
//	The persistence entry point: return the coloring stored under key, or
//	compute, persist and return a fresh one.
//
// Rules (in order):
//  1. force=true skips the load entirely: recompute and overwrite.
//  2. A load failure or a corrupt/invalid record is a cache miss —
//     recompute and overwrite, never a fatal error.
//  3. A well-formed loaded record whose dimensions differ from
//     (wantRows, wantCols) fails hard with ErrDimensionMismatch; a stale
//     shape must never be silently truncated or padded.
//  4. An otherwise valid loaded record is trusted as-is: no automatic
//     staleness detection against the live function (documented non-goal;
//     callers who suspect structural drift pass force=true).
//
// A freshly computed pair is validated against (wantRows, wantCols) before
// it is persisted, so a miscomputing callback cannot poison the cache.
// Save failures propagate: the caller decides whether an unpersistable
// cache is tolerable.
//
// Errors: ErrNilStore, ErrNilCompute, ErrEmptyKey, ErrDimensionMismatch,
// compute/Marshal/Save errors.
func LoadOrCompute(store Store, key string, wantRows, wantCols int, compute ComputeFunc, force bool) (*coloring.Coloring, *sparsity.Pattern, error) {
	if store == nil {
		return nil, nil, ErrNilStore
	}
	if key == "" {
		return nil, nil, ErrEmptyKey
	}
	if compute == nil {
		return nil, nil, ErrNilCompute
	}

	if !force {
		if data, err := store.Load(key); err == nil {
			if c, p, uerr := Unmarshal(data); uerr == nil {
				if p.Rows() != wantRows || p.Cols() != wantCols {
					return nil, nil, fmt.Errorf("colorstore: key %q: loaded %dx%d, want %dx%d: %w",
						key, p.Rows(), p.Cols(), wantRows, wantCols, ErrDimensionMismatch)
				}

				return c, p, nil
			}
			// Corrupt record: fall through to recompute (rule 2).
		}
		// Load errors (miss or I/O) also fall through to recompute.
	}

	c, p, err := compute()
	if err != nil {
		return nil, nil, fmt.Errorf("colorstore: compute for key %q: %w", key, err)
	}
	if p == nil || c == nil {
		return nil, nil, ErrNilColoring
	}
	if p.Rows() != wantRows || p.Cols() != wantCols {
		return nil, nil, fmt.Errorf("colorstore: key %q: computed %dx%d, want %dx%d: %w",
			key, p.Rows(), p.Cols(), wantRows, wantCols, ErrDimensionMismatch)
	}

	data, err := Marshal(c, p)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Save(key, data); err != nil {
		return nil, nil, err
	}

	return c, p, nil
}
