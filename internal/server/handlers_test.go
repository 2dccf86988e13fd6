package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/dshills/xmlsense/internal/catalog"
	"github.com/dshills/xmlsense/internal/completion"
	"github.com/dshills/xmlsense/internal/config"
	"github.com/dshills/xmlsense/internal/search"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	session := completion.NewSession(catalog.Builtin())
	cfg := config.Default()
	return NewServer(session, search.NewSearcher(), cfg.SearchOptions(), &cfg.Server, zap.NewNop())
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(into); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("status body = %v", body)
	}
}

func TestHandleAnalyze(t *testing.T) {
	srv := newTestServer(t)
	doc := `<xs:schema><xs:el`
	rec := postJSON(t, srv.Router(), "/api/v1/analyze", positionRequest{
		Text:  doc,
		Caret: len(doc),
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var ctx contextResponse
	decodeBody(t, rec, &ctx)
	if ctx.Type != "element" {
		t.Errorf("type = %q, want element", ctx.Type)
	}
	if ctx.CurrentElement != "xs:schema" {
		t.Errorf("currentElement = %q, want xs:schema", ctx.CurrentElement)
	}
	if ctx.Prefix != "xs:el" {
		t.Errorf("prefix = %q, want xs:el", ctx.Prefix)
	}
}

func TestHandleComplete(t *testing.T) {
	srv := newTestServer(t)
	doc := `<xs:schema><xs:elem`
	rec := postJSON(t, srv.Router(), "/api/v1/complete", positionRequest{
		Text:  doc,
		Caret: len(doc),
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp completeResponse
	decodeBody(t, rec, &resp)
	if resp.Query != "xs:elem" {
		t.Errorf("query = %q, want xs:elem", resp.Query)
	}
	if len(resp.Items) == 0 {
		t.Fatal("no completion items")
	}
	top := resp.Items[0]
	if top.Label != "xs:element" {
		t.Errorf("top item = %q, want xs:element", top.Label)
	}
	if top.Kind != "element" {
		t.Errorf("top kind = %q, want element", top.Kind)
	}
	if top.Highlighted != "<mark>xs:elem</mark>ent" {
		t.Errorf("highlighted = %q", top.Highlighted)
	}
}

func TestHandleCompleteMalformedBody(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/complete", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] == "" {
		t.Error("error body is empty")
	}
}

func TestHandleSearch(t *testing.T) {
	srv := newTestServer(t)
	rec := postJSON(t, srv.Router(), "/api/v1/search", map[string]any{
		"query": "elem",
		"items": []map[string]any{
			{"label": "element", "kind": "element"},
			{"label": "simpleType", "kind": "element"},
			{"label": "elementary", "kind": "element"},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Items []rankedScored `json:"items"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Items) != 2 {
		t.Fatalf("items = %+v, want 2 matches", resp.Items)
	}
	if resp.Items[0].Label != "element" || resp.Items[1].Label != "elementary" {
		t.Errorf("order = [%s %s], want [element elementary]", resp.Items[0].Label, resp.Items[1].Label)
	}
	if resp.Items[0].Score <= resp.Items[1].Score {
		t.Errorf("scores = (%d, %d), want descending", resp.Items[0].Score, resp.Items[1].Score)
	}
}

func TestHandleSearchMaxResultsOverride(t *testing.T) {
	srv := newTestServer(t)
	rec := postJSON(t, srv.Router(), "/api/v1/search", map[string]any{
		"query":      "e",
		"maxResults": 1,
		"items": []map[string]any{
			{"label": "element", "kind": "element"},
			{"label": "sequence", "kind": "element"},
			{"label": "extension", "kind": "element"},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Items []rankedScored `json:"items"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Items) != 1 {
		t.Errorf("items = %+v, want exactly 1", resp.Items)
	}
}

func TestHandleSearchUnknownKind(t *testing.T) {
	srv := newTestServer(t)
	rec := postJSON(t, srv.Router(), "/api/v1/search", map[string]any{
		"query": "e",
		"items": []map[string]any{
			{"label": "element", "kind": "mystery"},
		},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
