// Package coset: tunable options for the enumeration run.
package coset

import (
	"fmt"
	"math/rand"
)

// DefaultMaxCosets bounds coset allocation when no ceiling is configured.
// Generous for reflection groups (the largest regular 4-polytope group,
// H₄, has order 14400) yet finite, so a non-terminating presentation
// surfaces as ErrTooManyCosets instead of exhausting memory.
const DefaultMaxCosets = 1 << 20

// defaultScanSeed is the fixed “zero” seed used when callers pass seed==0
// to WithScanSeed. Arbitrary but stable, for reproducible defaults.
const defaultScanSeed int64 = 1

// Option configures a Solve run via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Solve is invoked.
type Option func(*Options)

// Options holds parameters customizing enumeration.
type Options struct {
	// MaxCosets caps the number of cosets allocated over the whole run
	// (allocation bounds memory; merged cosets are not reclaimed mid-run).
	// Exceeding it aborts with ErrTooManyCosets.
	MaxCosets int

	// rng, when non-nil, shuffles the order in which pending relation
	// rows are scanned within a pass. Nil keeps the default scan order
	// (reverse arena order). Scan order never changes the final coset
	// count; it exists to exercise exactly that property.
	rng *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the default ceiling and scan order.
func DefaultOptions() Options {
	return Options{MaxCosets: DefaultMaxCosets}
}

// WithMaxCosets caps total coset allocation at n (n ≥ 1).
// n < 1 is an option violation.
func WithMaxCosets(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxCosets must be at least 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxCosets = n
	}
}

// WithScanSeed scans pending rows in a deterministically shuffled order
// drawn from the given seed instead of reverse arena order.
// Policy: seed==0 ⇒ defaultScanSeed; same seed ⇒ identical run.
func WithScanSeed(seed int64) Option {
	return func(o *Options) {
		s := seed
		if s == 0 {
			s = defaultScanSeed
		}
		o.rng = rand.New(rand.NewSource(s))
	}
}
