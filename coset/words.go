package coset

// Words returns one representative word per coset: the generator-index
// sequence reaching the coset from the base coset 0, applied left to right
// through forward lookups. The base coset's word is empty (non-nil).
//
// Words are found by breadth-first traversal of the table graph from coset
// 0, expanding generators in alphabet order, so each word is a shortest
// representative and the result is fully deterministic. A coset the
// traversal cannot reach keeps a nil word; completed tables produced by
// Solve reach every coset.
//
// Complexity: O(k·n) lookups plus the total length of the words produced.
func (t *Table) Words() [][]int {
	words := make([][]int, len(t.fwd))
	words[0] = []int{}

	queue := make([]int, 0, len(t.fwd))
	queue = append(queue, 0)
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for g := 0; g < t.nGens; g++ {
			target, ok := t.Get(c, g)
			if !ok || words[target] != nil {
				continue
			}
			word := make([]int, len(words[c]), len(words[c])+1)
			copy(word, words[c])
			words[target] = append(word, g)
			queue = append(queue, target)
		}
	}

	return words
}
