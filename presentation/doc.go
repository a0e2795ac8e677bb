// Package presentation builds group presentations — the (generators,
// subgroup generators, relators) triple consumed by the coset enumerator.
//
// What
//
//   - New: raw relator words over an ordered generator alphabet.
//   - Coxeter: Coxeter-diagram notation — explicit relator words for some
//     generator pairs; every unpaired generator pair receives a commuting
//     relator (gh)², and every generator without an order relator receives
//     the involution relator g².
//   - Schlafli: linear Coxeter–Dynkin (Schläfli symbol) notation — one
//     coefficient per consecutive generator pair; {p,q,...} expands to the
//     pair relators (g₀g₁)ᵖ, (g₁g₂)ᵠ, ... and then delegates to Coxeter.
//
// All three validate eagerly and fail fast with ErrInvalidPresentation:
// no partial state ever reaches the enumerator.
//
// Why
//
//	Reflection groups are almost always described by a diagram or a Schläfli
//	symbol, not by a raw relator list. These helpers expand the compact
//	notation into the canonical relator set, so the enumeration engine only
//	ever sees one input shape.
//
// Determinism
//
//	Coxeter appends missing pair relators in alphabet order (i < j), then
//	involution relators in alphabet order. The enumerator's coset numbering
//	depends on relator order, so the expansion order is part of the contract.
//
// Precondition
//
//	Generators are involutions (g² = 1). The coset table keeps a single
//	column per generator and uses it for both directions; presentations with
//	generators of higher order are outside the data model.
//
// Usage
//
//	// Dihedral group of the pentagon, subgroup generated by one mirror:
//	p, err := presentation.Schlafli([]string{"a", "b"}, []string{"a"}, []int{5})
//
//	// The same, spelled as a Coxeter diagram:
//	p, err := presentation.Coxeter(
//	    []string{"a", "b"}, []string{"a"},
//	    []presentation.Word{{"a", "b", "a", "b", "a", "b", "a", "b", "a", "b"}},
//	)
//
// Errors
//
//   - ErrInvalidPresentation — duplicate or unknown symbols, empty relator
//     words, or a Schläfli symbol whose length does not fit the alphabet.
package presentation
