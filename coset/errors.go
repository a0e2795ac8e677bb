// Package coset: sentinel errors.
//
// Error policy (library-wide convention):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context via fmt.Errorf("...: %w", ErrX).
//   - The enumerator never panics on user-triggered conditions.
package coset

import "errors"

var (
	// ErrNilPresentation is returned when Solve receives a nil presentation.
	ErrNilPresentation = errors.New("coset: presentation is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// (e.g. a coset ceiling below 1).
	ErrOptionViolation = errors.New("coset: invalid option value")

	// ErrTooManyCosets is returned when enumeration allocates more cosets
	// than the configured ceiling. Todd–Coxeter is a semi-decision
	// procedure: presentations of infinite or very large index never
	// saturate, and the ceiling is the only bound. Recoverable — retry
	// with WithMaxCosets(n) for a larger n if the index is merely large.
	ErrTooManyCosets = errors.New("coset: coset ceiling exceeded")
)
