// Package search ranks completion candidates against a user-typed query.
//
// The searcher applies the fuzzy matcher to every candidate label, filters
// by minimum score, and orders results by score descending with
// deterministic tie-breaks (shorter label first, then original order).
// Advanced search additionally matches descriptions and data types and
// prefers schema-required and structurally primary candidates.
package search

import (
	"runtime"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dshills/xmlsense/internal/completion/item"
	"github.com/dshills/xmlsense/internal/fuzzy"
)

// parallelThreshold is the candidate count below which chunked scoring is
// not worth the goroutine overhead.
const parallelThreshold = 256

// Scored pairs a candidate with its match score.
type Scored struct {
	Item  item.Item
	Score int
}

// Searcher ranks candidate items. It is safe for concurrent use.
type Searcher struct {
	insensitive *fuzzy.Matcher
	sensitive   *fuzzy.Matcher
	workers     int
}

// NewSearcher creates a searcher with default matchers.
func NewSearcher() *Searcher {
	return &Searcher{
		insensitive: fuzzy.NewMatcher(fuzzy.DefaultOptions()),
		sensitive:   fuzzy.NewMatcher(fuzzy.Options{CacheSize: 1000, CaseSensitive: true}),
		workers:     runtime.NumCPU(),
	}
}

// SetScorer installs a custom fine scorer on both underlying matchers.
func (s *Searcher) SetScorer(scorer fuzzy.Scorer) {
	s.insensitive.SetScorer(scorer)
	s.sensitive.SetScorer(scorer)
	s.insensitive.ClearCache()
	s.sensitive.ClearCache()
}

// Search ranks items against query with default options. A blank query
// returns all items unfiltered in their original order.
func (s *Searcher) Search(query string, items []item.Item) []item.Item {
	return s.SearchWith(query, items, DefaultOptions())
}

// SearchWith ranks items against query, scoring labels only.
func (s *Searcher) SearchWith(query string, items []item.Item, opts *Options) []item.Item {
	return stripScores(s.rank(query, items, opts, false))
}

// AdvancedSearch ranks items, additionally scoring descriptions and data
// types when enabled, with required and kind-priority adjustments.
func (s *Searcher) AdvancedSearch(query string, items []item.Item, opts *Options) []item.Item {
	return stripScores(s.rank(query, items, opts, true))
}

// Rank is SearchWith keeping the scores, for callers that render them.
func (s *Searcher) Rank(query string, items []item.Item, opts *Options) []Scored {
	return s.rank(query, items, opts, false)
}

// RankAdvanced is AdvancedSearch keeping the scores.
func (s *Searcher) RankAdvanced(query string, items []item.Item, opts *Options) []Scored {
	return s.rank(query, items, opts, true)
}

// scoredIdx carries the original position for the final tie-break.
type scoredIdx struct {
	it    item.Item
	score int
	idx   int
}

func (s *Searcher) rank(query string, items []item.Item, opts *Options, advanced bool) []Scored {
	if opts == nil {
		opts = DefaultOptions()
	}

	// A blank query is "no filter": everything passes in original order.
	if strings.TrimSpace(query) == "" {
		out := make([]Scored, len(items))
		for i, it := range items {
			out[i] = Scored{Item: it, Score: fuzzy.EmptyQueryScore}
		}
		return out
	}

	matcher := s.insensitive
	if opts.CaseSensitive {
		matcher = s.sensitive
	}

	scores := make([]int, len(items))
	score := func(i int) {
		scores[i] = s.scoreItem(matcher, query, items[i], opts, advanced)
	}

	if opts.Parallel && len(items) >= parallelThreshold {
		s.scoreChunked(len(items), score)
	} else {
		for i := range items {
			score(i)
		}
	}

	kept := make([]scoredIdx, 0, len(items))
	for i, it := range items {
		// Zero always means "no match"; MinScore tightens the cut.
		if scores[i] == 0 || scores[i] < opts.MinScore {
			continue
		}
		kept = append(kept, scoredIdx{it: it, score: scores[i], idx: i})
	}

	// Score descending, shorter label first, original order last. The
	// stable sort plus the index tie-break makes the ordering identical
	// for serial and parallel runs.
	sort.SliceStable(kept, func(a, b int) bool {
		if kept[a].score != kept[b].score {
			return kept[a].score > kept[b].score
		}
		la := utf8.RuneCountInString(kept[a].it.Label)
		lb := utf8.RuneCountInString(kept[b].it.Label)
		if la != lb {
			return la < lb
		}
		return kept[a].idx < kept[b].idx
	})

	if opts.MaxResults > 0 && len(kept) > opts.MaxResults {
		kept = kept[:opts.MaxResults]
	}

	out := make([]Scored, len(kept))
	for i, k := range kept {
		out[i] = Scored{Item: k.it, Score: k.score}
	}
	return out
}

// scoreItem computes the combined score for one candidate.
func (s *Searcher) scoreItem(m *fuzzy.Matcher, query string, it item.Item, opts *Options, advanced bool) int {
	labelScore := m.Score(query, it.Label)
	if !advanced {
		return labelScore
	}

	combined := labelScore * opts.labelWeight()

	if opts.SearchInDescription && it.Description != "" {
		combined += m.Score(query, it.Description)
	}
	if opts.SearchInDataType && it.DataType != "" {
		combined += m.Score(query, it.DataType)
	}

	if combined == 0 {
		return 0
	}

	if it.Required {
		combined += RequiredBonus
	}
	if opts.TypePriorities != nil {
		combined += opts.TypePriorities[it.Kind]
	}

	return combined
}

// scoreChunked fans the scoring loop out over fixed index ranges. Each
// worker writes disjoint slice positions, so no ordering depends on
// scheduling.
func (s *Searcher) scoreChunked(n int, score func(int)) {
	workers := s.workers
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			for i := from; i < to; i++ {
				score(i)
			}
		}(start, end)
	}
	wg.Wait()
}

func stripScores(scored []Scored) []item.Item {
	items := make([]item.Item, len(scored))
	for i, s := range scored {
		items[i] = s.Item
	}
	return items
}
