// Package fuzzy provides approximate string matching for completion ranking.
//
// The package scores a user-typed query against candidate strings using a
// tiered algorithm: exact matches outrank prefix matches, which outrank
// contiguous substring matches, which outrank scattered subsequence matches.
// Within a tier, a fine score rewards consecutive runs, word-boundary and
// camelCase alignment, and short targets.
//
// # Scoring Tiers
//
//   - Exact (case-insensitive by default): highest, always above any
//     non-exact match.
//   - Prefix: query matches the start of the target.
//   - Substring: query appears contiguously anywhere in the target.
//   - Subsequence: every query character appears in the target in order,
//     not necessarily adjacent. camelCase abbreviations ("cT" against
//     "complexType") land here with a word-boundary bonus.
//
// A score of 0 always means "no match"; no error is ever returned for an
// unmatched pair.
//
// # Usage
//
// Package-level helpers use a shared default matcher:
//
//	fuzzy.Score("elem", "element")      // prefix-tier score
//	fuzzy.Distance("kitten", "sitting") // Levenshtein distance: 3
//	fuzzy.Highlight("element", "elem")  // "<mark>elem</mark>ent"
//
// For custom options or a custom scorer, construct a Matcher:
//
//	m := fuzzy.NewMatcher(fuzzy.Options{CaseSensitive: true})
//	r := m.Match("cT", "complexType")
//	fmt.Println(r.Score, r.Matches)
//
// # Thread Safety
//
// Matcher is safe for concurrent use. The result cache is internally
// synchronized.
package fuzzy
