package fuzzy

// Distance computes the Levenshtein edit distance between a and b: the
// minimum number of single-rune inserts, deletes, and substitutions needed
// to transform one into the other. The distance is symmetric and
// Distance(s, s) is 0.
func Distance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)

	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	// Single-row dynamic programming.
	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}

			deletion := prev[j] + 1
			insertion := curr[j-1] + 1
			substitution := prev[j-1] + cost

			d := deletion
			if insertion < d {
				d = insertion
			}
			if substitution < d {
				d = substitution
			}
			curr[j] = d
		}
		prev, curr = curr, prev
	}

	return prev[len(br)]
}
