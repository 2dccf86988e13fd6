package search

import "github.com/dshills/xmlsense/internal/completion/item"

// RequiredBonus is added in advanced search to candidates the schema marks
// as required.
const RequiredBonus = 50

// Options configures a search. The zero value is not useful; start from
// DefaultOptions and chain the With setters:
//
//	opts := search.DefaultOptions().WithMaxResults(10).WithMinScore(100)
type Options struct {
	// MaxResults limits the number of returned items. 0 means unbounded.
	MaxResults int

	// MinScore filters out items scoring below this value. Applied before
	// MaxResults truncation.
	MinScore int

	// SearchInDescription widens advanced search to item descriptions.
	SearchInDescription bool

	// SearchInDataType widens advanced search to item data types.
	SearchInDataType bool

	// CaseSensitive enables case-sensitive matching.
	CaseSensitive bool

	// Parallel allows the searcher to score items concurrently.
	// Ordering is deterministic either way.
	Parallel bool

	// LabelWeight is the label score's relative multiplier when advanced
	// search combines it with description and data-type scores.
	LabelWeight int

	// TypePriorities nudges near-equal scores toward primary kinds.
	// Missing kinds get no adjustment.
	TypePriorities map[item.Kind]int
}

// DefaultOptions returns the default search configuration.
func DefaultOptions() *Options {
	return &Options{
		Parallel:       true,
		LabelWeight:    1,
		TypePriorities: DefaultTypePriorities(),
	}
}

// DefaultTypePriorities returns the default kind-priority table: structural
// candidates ahead of plain text at near-equal scores.
func DefaultTypePriorities() map[item.Kind]int {
	return map[item.Kind]int{
		item.KindElement:   10,
		item.KindAttribute: 8,
		item.KindValue:     6,
		item.KindNamespace: 4,
		item.KindSnippet:   2,
		item.KindText:      0,
	}
}

// WithMaxResults sets the result limit.
func (o *Options) WithMaxResults(n int) *Options {
	o.MaxResults = n
	return o
}

// WithMinScore sets the minimum score filter.
func (o *Options) WithMinScore(n int) *Options {
	o.MinScore = n
	return o
}

// WithMinimumScore sets the minimum score filter.
//
// Deprecated: alias kept for callers of the old dual-name API. Use
// WithMinScore; both operate on the same field.
func (o *Options) WithMinimumScore(n int) *Options {
	return o.WithMinScore(n)
}

// MinimumScore returns the minimum score filter.
//
// Deprecated: use the MinScore field.
func (o *Options) MinimumScore() int {
	return o.MinScore
}

// WithDescriptionSearch widens advanced search to descriptions.
func (o *Options) WithDescriptionSearch(enabled bool) *Options {
	o.SearchInDescription = enabled
	return o
}

// WithDataTypeSearch widens advanced search to data types.
func (o *Options) WithDataTypeSearch(enabled bool) *Options {
	o.SearchInDataType = enabled
	return o
}

// WithCaseSensitive toggles case-sensitive matching.
func (o *Options) WithCaseSensitive(enabled bool) *Options {
	o.CaseSensitive = enabled
	return o
}

// WithParallel toggles concurrent scoring.
func (o *Options) WithParallel(enabled bool) *Options {
	o.Parallel = enabled
	return o
}

// WithUseParallelProcessing toggles concurrent scoring.
//
// Deprecated: alias kept for callers of the old dual-name API. Use
// WithParallel; both operate on the same field.
func (o *Options) WithUseParallelProcessing(enabled bool) *Options {
	return o.WithParallel(enabled)
}

// UseParallelProcessing returns whether concurrent scoring is allowed.
//
// Deprecated: use the Parallel field.
func (o *Options) UseParallelProcessing() bool {
	return o.Parallel
}

// WithLabelWeight sets the label score multiplier for advanced search.
func (o *Options) WithLabelWeight(w int) *Options {
	o.LabelWeight = w
	return o
}

// WithTypePriorities replaces the kind-priority table.
func (o *Options) WithTypePriorities(p map[item.Kind]int) *Options {
	o.TypePriorities = p
	return o
}

// labelWeight returns the effective label multiplier.
func (o *Options) labelWeight() int {
	if o.LabelWeight <= 0 {
		return 1
	}
	return o.LabelWeight
}
