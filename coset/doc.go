// Package coset enumerates the cosets of a finitely generated subgroup
// inside a finitely presented group (Todd–Coxeter coset enumeration),
// producing the coset table: the permutation action of every generator on
// the cosets of the subgroup.
//
// What
//
//   - Solve runs the enumeration for a presentation.Presentation and
//     returns a read-only *Table whose Len is the subgroup index [G:H].
//   - Table offers O(1) forward (Get) and reverse (RGet) lookups, the
//     spawning edge of every coset (Origin), per-coset representative words
//     (Words), a coincidence count, and a diagnostic String dump.
//   - Conflicting deductions (coincidences — two coset labels proven equal)
//     are merged through union-find redirects instead of silently
//     overwritten, with cascading folds until the table is consistent.
//   - WithMaxCosets caps allocation; WithScanSeed shuffles the per-pass row
//     scan order deterministically.
//
// Why
//
//	Counting cosets realizes reflection-group actions: the cosets of a
//	mirror stabilizer in a Coxeter group enumerate the cells of the
//	corresponding polytope or tiling, and the representative words replay
//	the generator sequence reaching each cell from the base one.
//
// Determinism
//
//	Fresh cosets are always defined at the first undefined entry in
//	row-major (coset, then generator) order, so for a given relator order
//	the sequence of spawning edges — and hence the numbering — is fully
//	reproducible. Scan order (reverse creation order, or a seeded shuffle
//	under WithScanSeed) affects only how fast entries are learned, never
//	the final count.
//
// Precondition
//
//	Generators are involutions (g² = 1); a single table column per
//	generator serves both directions, and the forward/reverse arrays
//	mirror each other: forward[c][g] == t ⇔ reverse[t][g] == c.
//
// Termination
//
//	Todd–Coxeter is a semi-decision procedure: it saturates if and only if
//	the subgroup has finite index. The configured ceiling converts the
//	non-terminating case into ErrTooManyCosets rather than unbounded
//	growth; memory grows monotonically with cosets allocated and is never
//	reclaimed mid-run.
//
// Complexity (k = cosets allocated, n = generators, r = relators)
//
//   - Memory: O(k·n) table entries plus O(k·r) relation rows.
//   - Time:   each pass is linear in pending rows; a row is consumed after
//     writing exactly one entry, and at most k·n entries exist.
//
// Usage
//
//	p, err := presentation.Schlafli([]string{"a", "b"}, []string{"a"}, []int{5})
//	if err != nil { ... }
//	tbl, err := coset.Solve(p, coset.WithMaxCosets(10_000))
//	if err != nil {
//	    // ErrNilPresentation, ErrOptionViolation, or ErrTooManyCosets
//	}
//	fmt.Println(tbl.Len()) // 5
//	fmt.Print(tbl)         // diagnostic dump
//
// Errors
//
//   - ErrNilPresentation — Solve received a nil presentation.
//   - ErrOptionViolation — invalid Option (e.g. ceiling below 1).
//   - ErrTooManyCosets   — allocation exceeded the configured ceiling.
package coset
