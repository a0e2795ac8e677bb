// Package toddcox computes coset tables of finitely presented groups with
// involutive generators, using the Todd–Coxeter coset-enumeration procedure.
//
// 🚀 What is toddcox?
//
//	A small, deterministic library that answers: given a group G presented by
//	generators and relators, and a subgroup H spanned by a subset of those
//	generators, what is the index [G:H], and how does each generator permute
//	the cosets of H?
//		• presentation/ — build the (generators, subgroup, relators) triple
//		  from raw relator words, Coxeter-diagram pairs, or a Schläfli symbol
//		• coset/        — the enumeration engine: growable coset table with
//		  O(1) forward/reverse lookup, dual-ended relator scanning,
//		  coincidence merging, per-coset representative words
//
// ✨ Why choose toddcox?
//
//   - Deterministic – fixed definition order, reproducible coset numbering
//   - Safe – explicit coset ceiling instead of unbounded growth
//   - Correct – conflicting deductions are merged as coincidences, not
//     silently overwritten
//   - Pure Go – no cgo, no hidden deps
//
// Quick example — the pentagon's symmetry group {5} modulo one mirror:
//
//	p, _ := presentation.Schlafli([]string{"a", "b"}, []string{"a"}, []int{5})
//	tbl, _ := coset.Solve(p)
//	fmt.Println(tbl.Len()) // 5 — the five edges of the pentagon
//
// The classic consumers are reflection groups: the cosets of a mirror
// stabilizer enumerate the vertices, edges and faces of the corresponding
// polytope, and the per-coset words replay the reflections that reach them.
//
//	go get github.com/katalvlaran/toddcox
package toddcox
