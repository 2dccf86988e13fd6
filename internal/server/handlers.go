package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/dshills/xmlsense/internal/analyzer"
	"github.com/dshills/xmlsense/internal/completion"
	"github.com/dshills/xmlsense/internal/completion/item"
	"github.com/dshills/xmlsense/internal/search"
)

// positionRequest locates a caret in a document.
type positionRequest struct {
	Text     string `json:"text"`
	Caret    int    `json:"caret"`
	Selected string `json:"selected,omitempty"`
}

// contextResponse is the wire form of an analyzed position.
type contextResponse struct {
	Type             string `json:"type"`
	CurrentElement   string `json:"currentElement,omitempty"`
	ParentElement    string `json:"parentElement,omitempty"`
	TagName          string `json:"tagName,omitempty"`
	AttributeName    string `json:"attributeName,omitempty"`
	Prefix           string `json:"prefix,omitempty"`
	CurrentNamespace string `json:"currentNamespace,omitempty"`
	DocumentType     string `json:"documentType,omitempty"`
	ClosingTag       bool   `json:"closingTag,omitempty"`
	InElement        bool   `json:"inElement,omitempty"`
	InAttribute      bool   `json:"inAttribute,omitempty"`
	InAttributeValue bool   `json:"inAttributeValue,omitempty"`
	HasXSDSchema     bool   `json:"hasXsdSchema,omitempty"`
}

func contextToWire(c analyzer.Context) contextResponse {
	return contextResponse{
		Type:             c.Type.String(),
		CurrentElement:   c.CurrentElement,
		ParentElement:    c.ParentElement,
		TagName:          c.TagName,
		AttributeName:    c.AttributeName,
		Prefix:           c.Prefix,
		CurrentNamespace: c.CurrentNamespace,
		DocumentType:     c.DocumentType,
		ClosingTag:       c.ClosingTag,
		InElement:        c.InElement,
		InAttribute:      c.InAttribute,
		InAttributeValue: c.InAttributeValue,
		HasXSDSchema:     c.HasXSDSchema,
	}
}

// rankedItem is the wire form of one completion candidate.
type rankedItem struct {
	Label       string `json:"label"`
	Kind        string `json:"kind"`
	Description string `json:"description,omitempty"`
	DataType    string `json:"dataType,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Score       int    `json:"score"`
	Highlighted string `json:"highlighted"`
}

func rankedToWire(ranked []completion.Ranked) []rankedItem {
	out := make([]rankedItem, len(ranked))
	for i, r := range ranked {
		out[i] = rankedItem{
			Label:       r.Item.Label,
			Kind:        r.Item.Kind.String(),
			Description: r.Item.Description,
			DataType:    r.Item.DataType,
			Required:    r.Item.Required,
			Score:       r.Score,
			Highlighted: r.Highlighted,
		}
	}
	return out
}

// rankedScored is the wire form of one search result.
type rankedScored struct {
	Label       string `json:"label"`
	Kind        string `json:"kind"`
	Description string `json:"description,omitempty"`
	DataType    string `json:"dataType,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Score       int    `json:"score"`
}

// completeResponse is the response for /api/v1/complete.
type completeResponse struct {
	Context contextResponse `json:"context"`
	Query   string          `json:"query"`
	Items   []rankedItem    `json:"items"`
}

// searchRequest ranks caller-supplied candidates against a query.
type searchRequest struct {
	Query    string      `json:"query"`
	Items    []item.Item `json:"items"`
	Advanced bool        `json:"advanced,omitempty"`

	// Optional per-request overrides of the configured defaults.
	MaxResults *int `json:"maxResults,omitempty"`
	MinScore   *int `json:"minScore,omitempty"`
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("complete request",
		zap.Int("caret", req.Caret),
		zap.Int("textLen", len(req.Text)))

	result, err := s.session.Complete(r.Context(), req.Text, req.Caret, req.Selected)
	if err != nil {
		s.logger.Error("completion failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, completeResponse{
		Context: contextToWire(result.Context),
		Query:   result.Query,
		Items:   rankedToWire(result.Items),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := analyzer.Analyze(req.Text, req.Caret, req.Selected)
	s.respondJSON(w, http.StatusOK, contextToWire(ctx))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("search request",
		zap.String("query", req.Query),
		zap.Int("items", len(req.Items)))

	opts := *s.opts
	if req.MaxResults != nil {
		opts.MaxResults = *req.MaxResults
	}
	if req.MinScore != nil {
		opts.MinScore = *req.MinScore
	}

	var ranked []rankedScored
	if req.Advanced {
		ranked = scoredToWire(s.searcher.RankAdvanced(req.Query, req.Items, &opts))
	} else {
		ranked = scoredToWire(s.searcher.Rank(req.Query, req.Items, &opts))
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"items": ranked})
}

func scoredToWire(scored []search.Scored) []rankedScored {
	out := make([]rankedScored, len(scored))
	for i, sc := range scored {
		out[i] = rankedScored{
			Label:       sc.Item.Label,
			Kind:        sc.Item.Kind.String(),
			Description: sc.Item.Description,
			DataType:    sc.Item.DataType,
			Required:    sc.Item.Required,
			Score:       sc.Score,
		}
	}
	return out
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
