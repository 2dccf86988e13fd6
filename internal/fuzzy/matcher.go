package fuzzy

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// Result represents a scored alignment of a query against a target.
type Result struct {
	// Target is the candidate string that was scored.
	Target string

	// Score is the match score (higher is better, 0 means no match).
	Score int

	// Matches contains the rune indices of matched characters in Target.
	// Nil for empty queries and non-matches.
	Matches []int
}

// Options configures matcher behavior.
type Options struct {
	// CacheSize is the maximum number of cached (query, target) scores.
	// Set to 0 to disable caching.
	CacheSize int

	// CaseSensitive enables case-sensitive matching.
	// Default is false (case-insensitive).
	CaseSensitive bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		CacheSize:     1000,
		CaseSensitive: false,
	}
}

// Matcher performs tiered fuzzy string matching.
type Matcher struct {
	mu      sync.RWMutex
	cache   *Cache
	scorer  Scorer
	options Options
}

// NewMatcher creates a new matcher with the given options.
func NewMatcher(opts Options) *Matcher {
	var cache *Cache
	if opts.CacheSize > 0 {
		cache = NewCache(opts.CacheSize)
	}

	return &Matcher{
		cache:   cache,
		scorer:  DefaultWeights(),
		options: opts,
	}
}

// SetScorer sets a custom fine-scoring algorithm.
func (m *Matcher) SetScorer(scorer Scorer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scorer = scorer
}

// CaseSensitive reports whether the matcher compares case-sensitively.
func (m *Matcher) CaseSensitive() bool {
	return m.options.CaseSensitive
}

// Score rates how well query matches target. Zero means no match. An empty
// query scores EmptyQueryScore against every target.
func (m *Matcher) Score(query, target string) int {
	return m.Match(query, target).Score
}

// Match scores query against target and returns the alignment trace used by
// the highlighter.
func (m *Matcher) Match(query, target string) Result {
	if query == "" {
		return Result{Target: target, Score: EmptyQueryScore}
	}

	if m.cache != nil {
		if cached, ok := m.cache.Get(query, target); ok {
			return cached
		}
	}

	result := m.match(query, target)

	if m.cache != nil {
		m.cache.Set(query, target, result)
	}

	return result
}

// match computes the score without consulting the cache.
func (m *Matcher) match(query, target string) Result {
	normQuery := query
	normTarget := target
	if !m.options.CaseSensitive {
		normQuery = strings.ToLower(query)
		normTarget = strings.ToLower(target)
	}

	queryRunes := []rune(normQuery)
	textRunes := []rune(normTarget)
	originalRunes := []rune(target)

	// A query longer than the target cannot match.
	if len(queryRunes) > len(textRunes) {
		return Result{Target: target}
	}

	if normQuery == normTarget {
		matches := make([]int, len(textRunes))
		for i := range matches {
			matches[i] = i
		}
		return Result{Target: target, Score: ExactScore, Matches: matches}
	}

	m.mu.RLock()
	scorer := m.scorer
	m.mu.RUnlock()

	// Contiguous match: prefix or substring tier.
	if byteIdx := strings.Index(normTarget, normQuery); byteIdx >= 0 {
		start := utf8.RuneCountInString(normTarget[:byteIdx])
		matches := make([]int, len(queryRunes))
		for i := range matches {
			matches[i] = start + i
		}

		tier := SubstringTier
		if start == 0 {
			tier = PrefixTier
		}
		fine := scorer.Score(queryRunes, originalRunes, textRunes, matches)
		return Result{Target: target, Score: tier + fine, Matches: matches}
	}

	// Scattered subsequence: greedy left-to-right scan.
	matches := make([]int, 0, len(queryRunes))
	queryIdx := 0
	for i := 0; i < len(textRunes) && queryIdx < len(queryRunes); i++ {
		if textRunes[i] == queryRunes[queryIdx] {
			matches = append(matches, i)
			queryIdx++
		}
	}

	// Every query character must align.
	if queryIdx != len(queryRunes) {
		return Result{Target: target}
	}

	fine := scorer.Score(queryRunes, originalRunes, textRunes, matches)
	return Result{Target: target, Score: fine, Matches: matches}
}

// ClearCache clears the score cache.
func (m *Matcher) ClearCache() {
	if m.cache != nil {
		m.cache.Clear()
	}
}

// defaultMatcher backs the package-level helpers.
var defaultMatcher = NewMatcher(DefaultOptions())

// Score rates query against target using the default matcher.
func Score(query, target string) int {
	return defaultMatcher.Score(query, target)
}

// Match scores query against target using the default matcher and returns
// the alignment trace.
func Match(query, target string) Result {
	return defaultMatcher.Match(query, target)
}
