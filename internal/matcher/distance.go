package matcher

import "golang.org/x/text/cases"

// EditDistance returns the Levenshtein distance between a and b after
// Unicode case folding. Distances are counted in runes of the folded
// strings, so an accented letter is one character. Full folding can change
// length ("ß" folds to "ss", "Straße" matches "STRASSE"), and the bound
// max(len(a), len(b)) holds for the folded forms, not the raw input.
func EditDistance(a, b string) int {
	// A Caser carries state and must not be shared.
	ra := []rune(cases.Fold().String(a))
	rb := []rune(cases.Fold().String(b))

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Rolling two-row DP over the shorter string.
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
