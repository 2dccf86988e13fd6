package fuzzy

import "strings"

// Highlight marks for rendering matched characters in a popup row.
const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// Highlight wraps the characters of target matched by query in
// <mark>…</mark>, using the same alignment the scorer uses: contiguous
// matches are preferred, with a scattered subsequence as fallback.
// An empty query or a non-matching query returns target unchanged.
// Original character case is preserved inside the markers.
func Highlight(target, query string) string {
	return defaultMatcher.Highlight(target, query)
}

// Highlight renders target with the matcher's alignment for query.
func (m *Matcher) Highlight(target, query string) string {
	if query == "" {
		return target
	}

	result := m.Match(query, target)
	if result.Score == 0 || len(result.Matches) == 0 {
		return target
	}

	return markRunes(target, result.Matches)
}

// markRunes wraps the runes at the given indices, merging adjacent matches
// into a single marker pair.
func markRunes(target string, matches []int) string {
	matched := make(map[int]bool, len(matches))
	for _, idx := range matches {
		matched[idx] = true
	}

	var sb strings.Builder
	inMark := false
	for i, r := range []rune(target) {
		switch {
		case matched[i] && !inMark:
			sb.WriteString(markOpen)
			inMark = true
		case !matched[i] && inMark:
			sb.WriteString(markClose)
			inMark = false
		}
		sb.WriteRune(r)
	}
	if inMark {
		sb.WriteString(markClose)
	}

	return sb.String()
}
