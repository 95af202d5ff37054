// SPDX-License-Identifier: MIT

// Package colorstore - cache key construction.

package colorstore

// KeyScope selects the cache-key granularity: whether a coloring is shared
// by every instance of a function or owned by one call-site instance.
type KeyScope int

const (
	// ScopePerType shares one coloring across all instances of the same
	// function type; the instance identity is ignored.
	ScopePerType KeyScope = iota

	// ScopePerInstance keys each call-site instance separately.
	ScopePerInstance
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicScopeInvalid    = "colorstore: Key: unknown scope"
	panicTypeNameEmpty   = "colorstore: Key: typeName must be non-empty"
	panicInstanceIDEmpty = "colorstore: Key: instanceID must be non-empty for ScopePerInstance"
)

// Key builds the identity string a coloring record is stored under.
// Panics on nonsensical arguments (programmer error): unknown scope, empty
// typeName, or ScopePerInstance with an empty instanceID.
func Key(scope KeyScope, typeName, instanceID string) string {
	if typeName == "" {
		panic(panicTypeNameEmpty)
	}
	switch scope {
	case ScopePerType:
		return typeName
	case ScopePerInstance:
		if instanceID == "" {
			panic(panicInstanceIDEmpty)
		}

		return typeName + "/" + instanceID
	default:
		panic(panicScopeInvalid)
	}
}
