// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Sparse matrices.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options travel with the matrix: Clone, Transpose and Mul results inherit
//     the receiver's configuration.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOverwrite selects the Set policy.
	// false ⇒ insert-only: the first nonzero write to a coordinate wins and
	// later writes report false without touching storage.
	DefaultOverwrite = false

	// DefaultDegree is the B-tree degree used for each row.
	// Small degrees keep tiny rows cheap; 16 balances lookup depth and node size.
	DefaultDegree = 16

	// minDegree is the smallest degree accepted by the row B-tree.
	minDegree = 2
)

const (
	panicDegreeInvalid = "matrix: WithDegree: degree must be >= 2"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	overwrite bool // DefaultOverwrite
	degree    int  // DefaultDegree
}

// WithOverwrite switches Set to last-write-wins.
// Behavior highlights:
//   - Set(r, c, v) with v != 0 replaces an existing value and reports true
//     when the stored value actually changed.
//   - Setting zero is still a no-op; it never clears an entry.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithOverwrite() Option {
	return func(o *Options) { o.overwrite = true }
}

// WithInsertOnly restores the default insert-only Set policy.
func WithInsertOnly() Option {
	return func(o *Options) { o.overwrite = false }
}

// WithDegree sets the B-tree degree used for row storage.
// Implementation:
//   - Stage 1: validate degree >= 2.
//   - Stage 2: return a setter that writes degree into Options.
//
// Errors:
//   - Panics with a stable message when degree is invalid.
//
// AI-Hints:
//   - Degree only affects performance, never results.
func WithDegree(degree int) Option {
	if degree < minDegree {
		panic(panicDegreeInvalid)
	}

	return func(o *Options) { o.degree = degree }
}

// NewOptions resolves option setters against documented defaults.
// Last-writer-wins for conflicting setters.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Overwrite reports whether Set uses last-write-wins.
func (o Options) Overwrite() bool { return o.overwrite }

// Degree reports the row B-tree degree.
func (o Options) Degree() int { return o.degree }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		overwrite: DefaultOverwrite,
		degree:    DefaultDegree,
	}
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
