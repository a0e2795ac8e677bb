package presentation

// Coxeter builds a Presentation from Coxeter-diagram notation: explicit
// relator words for the linked generator pairs, e.g. (ab)⁴ spelled as
// Word{"a","b","a","b","a","b","a","b"}.
//
// The diagram's implicit relators are appended automatically:
//   - a commuting relator (gh)² for every unordered generator pair without
//     an explicit relator (unlinked mirrors commute);
//   - an involution relator g² for every generator without an order relator.
//
// Implicit relators are appended in alphabet order (pairs first, i < j),
// which fixes the enumerator's coset numbering.
//
// Returns ErrInvalidPresentation on any symbol outside the alphabet.
func Coxeter(gens, subgens []string, relators []Word) (*Presentation, error) {
	index := make(map[string]int, len(gens))
	for i, g := range gens {
		index[g] = i
	}

	// Classify the given relators by their distinct-symbol support.
	// Unknown symbols are left for New to reject with full context.
	paired := make(map[[2]int]bool, len(relators))
	ordered := make(map[int]bool, len(gens))
	for _, rel := range relators {
		support, ok := relatorSupport(rel, index)
		if !ok {
			continue
		}
		switch len(support) {
		case 1:
			ordered[support[0]] = true
		case 2:
			paired[[2]int{support[0], support[1]}] = true
		}
	}

	full := append([]Word(nil), relators...)
	for i := 0; i < len(gens); i++ {
		for j := i + 1; j < len(gens); j++ {
			if !paired[[2]int{i, j}] {
				full = append(full, Word{gens[i], gens[j], gens[i], gens[j]})
			}
		}
	}
	for i, g := range gens {
		if !ordered[i] {
			full = append(full, Word{g, g})
		}
	}

	return New(gens, subgens, full)
}

// relatorSupport returns the sorted distinct alphabet indices spelled by rel,
// or ok=false if rel uses a symbol outside the alphabet.
func relatorSupport(rel Word, index map[string]int) ([]int, bool) {
	seen := make(map[int]bool, 2)
	support := make([]int, 0, 2)
	for _, g := range rel {
		i, ok := index[g]
		if !ok {
			return nil, false
		}
		if !seen[i] {
			seen[i] = true
			support = append(support, i)
		}
	}
	// insertion sort; supports are tiny
	for i := 1; i < len(support); i++ {
		for j := i; j > 0 && support[j] < support[j-1]; j-- {
			support[j], support[j-1] = support[j-1], support[j]
		}
	}

	return support, true
}
