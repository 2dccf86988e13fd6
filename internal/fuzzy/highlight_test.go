package fuzzy

import "testing"

func TestHighlightEmptyQuery(t *testing.T) {
	if got := Highlight("element", ""); got != "element" {
		t.Errorf("Highlight(element, \"\") = %q, want unchanged target", got)
	}
	if got := Highlight("", ""); got != "" {
		t.Errorf("Highlight(\"\", \"\") = %q, want \"\"", got)
	}
}

func TestHighlightNoMatch(t *testing.T) {
	if got := Highlight("element", "xyz"); got != "element" {
		t.Errorf("Highlight(element, xyz) = %q, want unchanged target", got)
	}
}

func TestHighlightPrefix(t *testing.T) {
	got := Highlight("element", "elem")
	want := "<mark>elem</mark>ent"
	if got != want {
		t.Errorf("Highlight(element, elem) = %q, want %q", got, want)
	}
}

func TestHighlightSubstring(t *testing.T) {
	got := Highlight("complexType", "plex")
	want := "com<mark>plex</mark>Type"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlightScattered(t *testing.T) {
	// cT aligns to the c and T boundaries; the runs are not adjacent.
	got := Highlight("complexType", "cT")
	want := "<mark>c</mark>omplex<mark>T</mark>ype"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlightPreservesCase(t *testing.T) {
	// The query is lowercase but the marked characters keep their
	// original case.
	got := Highlight("ComplexType", "complex")
	want := "<mark>Complex</mark>Type"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlightExact(t *testing.T) {
	got := Highlight("element", "element")
	want := "<mark>element</mark>"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlightUTF8(t *testing.T) {
	got := Highlight("日本語ファイル", "日本")
	want := "<mark>日本</mark>語ファイル"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}
