package fuzzy

import "unicode"

// Tier offsets keep the match classes strictly ordered: any exact match
// outranks any prefix match, any prefix match outranks any substring match,
// and any substring match outranks any scattered subsequence match. The fine
// score produced by a Scorer stays well below the gap between tiers for
// realistic query lengths.
const (
	// ExactScore is returned for a case-folded exact match.
	ExactScore = 10000

	// PrefixTier is added to the fine score when the query matches the
	// start of the target.
	PrefixTier = 5000

	// SubstringTier is added to the fine score when the query appears
	// contiguously inside the target.
	SubstringTier = 2000

	// EmptyQueryScore is the fixed score for an empty query against any
	// target: no filter, but still rankable.
	EmptyQueryScore = 100
)

// Scorer calculates the fine score for an aligned match. The matcher applies
// tier offsets on top of the returned value.
type Scorer interface {
	// Score rates a single alignment.
	//
	//   - queryRunes: normalized query runes
	//   - originalRunes: target runes with original case (for boundary
	//     detection)
	//   - textRunes: normalized target runes
	//   - matches: rune indices of matched characters in the target
	Score(queryRunes, originalRunes, textRunes []rune, matches []int) int
}

// Weights is a Scorer with configurable bonus and penalty constants.
type Weights struct {
	// Base is the starting score for any match.
	Base int

	// Consecutive is added for each adjacent pair of matched characters.
	Consecutive int

	// WordBoundary is added for each match at a word boundary
	// (start of text, after punctuation, or a camelCase transition).
	WordBoundary int

	// Start is added when the first match is at position 0.
	Start int

	// GapPenalty is subtracted per unmatched character between the first
	// and last match.
	GapPenalty int

	// LeadingPenalty is subtracted per character before the first match.
	LeadingPenalty int

	// ShortTargetThreshold grants a bonus for targets shorter than this
	// many runes, favoring the more specific candidate.
	ShortTargetThreshold int
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Base:                 100,
		Consecutive:          20,
		WordBoundary:         15,
		Start:                25,
		GapPenalty:           2,
		LeadingPenalty:       1,
		ShortTargetThreshold: 20,
	}
}

// Score implements the Scorer interface.
func (w Weights) Score(queryRunes, originalRunes, textRunes []rune, matches []int) int {
	if len(matches) == 0 {
		return 0
	}

	score := w.Base

	// Consecutive run bonus: a contiguous alignment beats the same
	// characters scattered apart.
	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			score += w.Consecutive
		}
	}

	// Word boundary bonus covers camelCase abbreviation matches.
	for _, idx := range matches {
		if isWordBoundary(originalRunes, idx) {
			score += w.WordBoundary
		}
	}

	if matches[0] == 0 {
		score += w.Start
	}

	// Gap penalty
	if len(matches) > 1 {
		totalGap := matches[len(matches)-1] - matches[0] - len(matches) + 1
		if totalGap > 0 {
			score -= totalGap * w.GapPenalty
		}
	}

	// Leading penalty
	if matches[0] > 0 {
		score -= matches[0] * w.LeadingPenalty
	}

	if len(textRunes) < w.ShortTargetThreshold {
		score += w.ShortTargetThreshold - len(textRunes)
	}

	// Any alignment is still a match.
	if score < 1 {
		score = 1
	}

	return score
}

// isWordBoundary reports whether the rune at idx starts a word: position
// zero, after space or punctuation, or a lower-to-upper camelCase transition.
func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}

	prev := runes[idx-1]
	curr := runes[idx]

	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}

	if unicode.IsLower(prev) && unicode.IsUpper(curr) {
		return true
	}

	return false
}
