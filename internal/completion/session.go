package completion

import (
	"context"
	"fmt"

	"github.com/dshills/xmlsense/internal/analyzer"
	"github.com/dshills/xmlsense/internal/completion/item"
	"github.com/dshills/xmlsense/internal/fuzzy"
	"github.com/dshills/xmlsense/internal/search"
)

// Provider supplies the completion candidates valid at an analyzed position.
// Implementations are typically backed by a schema or document service; the
// session places no constraints on how the list is produced.
type Provider interface {
	Candidates(ctx context.Context, c analyzer.Context) ([]item.Item, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, c analyzer.Context) ([]item.Item, error)

// Candidates implements Provider.
func (f ProviderFunc) Candidates(ctx context.Context, c analyzer.Context) ([]item.Item, error) {
	return f(ctx, c)
}

// Ranked is one scored result with its popup rendering.
type Ranked struct {
	Item        item.Item `json:"item"`
	Score       int       `json:"score"`
	Highlighted string    `json:"highlighted"`
}

// Result is the outcome of one completion request.
type Result struct {
	// Context is the analyzed caret position.
	Context analyzer.Context `json:"context"`

	// Query is the in-progress token the candidates were ranked against.
	Query string `json:"query"`

	// Items are the ranked candidates, best first.
	Items []Ranked `json:"items"`
}

// Session combines the analyzer, a candidate provider, and the searcher.
// It holds no per-request state and is safe for concurrent use.
type Session struct {
	provider Provider
	searcher *search.Searcher
	matcher  *fuzzy.Matcher
	opts     *search.Options
	advanced bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSearchOptions sets the search configuration used for every request.
func WithSearchOptions(opts *search.Options) SessionOption {
	return func(s *Session) {
		s.opts = opts
	}
}

// WithAdvancedSearch enables description/data-type matching and the
// required and kind-priority adjustments.
func WithAdvancedSearch(enabled bool) SessionOption {
	return func(s *Session) {
		s.advanced = enabled
	}
}

// WithSearcher replaces the default searcher, e.g. to install a custom
// scorer.
func WithSearcher(searcher *search.Searcher) SessionOption {
	return func(s *Session) {
		s.searcher = searcher
	}
}

// NewSession creates a completion session over the given provider.
func NewSession(provider Provider, opts ...SessionOption) *Session {
	s := &Session{
		provider: provider,
		searcher: search.NewSearcher(),
		opts:     search.DefaultOptions(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.matcher = fuzzy.NewMatcher(fuzzy.Options{
		CacheSize:     1000,
		CaseSensitive: s.opts.CaseSensitive,
	})

	return s
}

// Complete runs one completion request against the live buffer: analyze the
// caret, fetch candidates for the derived context, rank them against the
// in-progress token, and highlight the results.
func (s *Session) Complete(ctx context.Context, fullText string, caret int, selected string) (*Result, error) {
	ac := analyzer.Analyze(fullText, caret, selected)
	return s.CompleteContext(ctx, ac)
}

// CompleteContext runs a completion request for an already-analyzed (and
// possibly refined) context. XSLT-aware callers use this after applying the
// template overlay.
func (s *Session) CompleteContext(ctx context.Context, ac analyzer.Context) (*Result, error) {
	candidates, err := s.provider.Candidates(ctx, ac)
	if err != nil {
		return nil, fmt.Errorf("fetching candidates: %w", err)
	}

	query := ac.Prefix

	var scored []search.Scored
	if s.advanced {
		scored = s.searcher.RankAdvanced(query, candidates, s.opts)
	} else {
		scored = s.searcher.Rank(query, candidates, s.opts)
	}

	ranked := make([]Ranked, len(scored))
	for i, sc := range scored {
		ranked[i] = Ranked{
			Item:        sc.Item,
			Score:       sc.Score,
			Highlighted: s.matcher.Highlight(sc.Item.Label, query),
		}
	}

	return &Result{
		Context: ac,
		Query:   query,
		Items:   ranked,
	}, nil
}
