// internal/solver/filter.go
//
// Dictionary filtering: intersects the matcher across a guess history.

package solver

// Filter returns the dictionary words consistent with every guess in history.
// A candidate survives iff Matches holds for each guess; the scan
// short-circuits on the first failing guess. An empty history returns the
// dictionary as-is. Output preserves dictionary order, which keeps results
// deterministic for a fixed word list; neither input is mutated.
func Filter(dict []Word, history []Guess) []Word {
	if len(history) == 0 {
		return dict
	}
	out := make([]Word, 0, len(dict))
	for _, cand := range dict {
		keep := true
		for _, g := range history {
			if !Matches(cand, g) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, cand)
		}
	}
	return out
}
