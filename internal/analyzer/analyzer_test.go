package analyzer

import (
	"strings"
	"testing"
)

// caretAt splits a document marked with | into text and caret offset.
func caretAt(t *testing.T, marked string) (string, int) {
	t.Helper()
	idx := strings.IndexByte(marked, '|')
	if idx < 0 {
		t.Fatalf("test document has no caret marker: %q", marked)
	}
	return marked[:idx] + marked[idx+1:], idx
}

func TestAnalyzeElementZone(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		element string
		parent  string
		closing bool
	}{
		{"open bracket", `<root><|`, "root", "", false},
		{"partial name", `<root><ch|`, "root", "", false},
		{"nested", `<a><b><|`, "b", "a", false},
		{"closing tag", `<root><item></|`, "item", "root", true},
		{"after sibling", `<a><b/><|`, "a", "", false},
		{"after closed child", `<a><b></b><|`, "a", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, caret := caretAt(t, tt.doc)
			ctx := Analyze(text, caret, "")

			if ctx.Type != ElementCompletion {
				t.Errorf("Type = %v, want element", ctx.Type)
			}
			if !ctx.InElement {
				t.Error("InElement should be set")
			}
			if ctx.InAttribute || ctx.InAttributeValue {
				t.Error("attribute flags should not be set in element zone")
			}
			if ctx.CurrentElement != tt.element {
				t.Errorf("CurrentElement = %q, want %q", ctx.CurrentElement, tt.element)
			}
			if ctx.ParentElement != tt.parent {
				t.Errorf("ParentElement = %q, want %q", ctx.ParentElement, tt.parent)
			}
			if ctx.ClosingTag != tt.closing {
				t.Errorf("ClosingTag = %v, want %v", ctx.ClosingTag, tt.closing)
			}
		})
	}
}

func TestAnalyzeAttributeZone(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		tag  string
		attr string
	}{
		{"after name", `<element |`, "element", ""},
		{"partial attribute", `<element min|`, "element", "min"},
		{"second attribute", `<element name="n" ty|`, "element", "ty"},
		{"prefixed tag", `<xs:element |`, "xs:element", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, caret := caretAt(t, tt.doc)
			ctx := Analyze(text, caret, "")

			if ctx.Type != AttributeCompletion {
				t.Errorf("Type = %v, want attribute", ctx.Type)
			}
			if !ctx.InAttribute {
				t.Error("InAttribute should be set")
			}
			if ctx.InElement || ctx.InAttributeValue {
				t.Error("other zone flags should not be set")
			}
			if ctx.TagName != tt.tag {
				t.Errorf("TagName = %q, want %q", ctx.TagName, tt.tag)
			}
			if ctx.AttributeName != tt.attr {
				t.Errorf("AttributeName = %q, want %q", ctx.AttributeName, tt.attr)
			}
		})
	}
}

func TestAnalyzeAttributeValueZone(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		attr string
	}{
		{"double quote", `<element name="|`, "name"},
		{"single quote", `<element name='|`, "name"},
		{"partial value", `<element type="xs:st|`, "type"},
		{"second attribute value", `<element name="n" use="req|`, "use"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, caret := caretAt(t, tt.doc)
			ctx := Analyze(text, caret, "")

			if ctx.Type != AttributeValueCompletion {
				t.Errorf("Type = %v, want attribute-value", ctx.Type)
			}
			if !ctx.InAttributeValue {
				t.Error("InAttributeValue should be set")
			}
			if ctx.AttributeName != tt.attr {
				t.Errorf("AttributeName = %q, want %q", ctx.AttributeName, tt.attr)
			}
		})
	}
}

func TestAnalyzeTextContentZone(t *testing.T) {
	tests := []string{
		`<root>|`,
		`<root>some te|xt`,
		`<a><b>inner</b> |`,
	}

	for _, doc := range tests {
		t.Run(doc, func(t *testing.T) {
			text, caret := caretAt(t, doc)
			ctx := Analyze(text, caret, "")

			if ctx.Type != TextContentCompletion {
				t.Errorf("Type = %v, want text-content", ctx.Type)
			}
			if ctx.InElement || ctx.InAttribute || ctx.InAttributeValue {
				t.Error("no zone flags should be set between tags")
			}
		})
	}
}

func TestAnalyzeNamespaceZone(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"typing declaration", `<schema xmlns|`},
		{"typing prefixed declaration", `<schema xmlns:xs|`},
		{"declaration value", `<schema xmlns:xs="|`},
		{"bare declaration value", `<schema xmlns="|`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, caret := caretAt(t, tt.doc)
			ctx := Analyze(text, caret, "")

			if ctx.Type != NamespaceCompletion {
				t.Errorf("Type = %v, want namespace", ctx.Type)
			}
		})
	}
}

func TestAnalyzePrefix(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{`<root><ch|`, "ch"},
		{`<root></it|`, "it"},
		{`<element min|`, "min"},
		{`<element type="xs:st|`, "xs:st"},
		{`<root>some hel|`, "hel"},
		{`<root><|`, ""},
		{`<element |`, ""},
		// Å's second byte reads as NEL when decoded bytewise; the token
		// must not split mid-rune.
		{"<root>nÅme|", "nÅme"},
		{"<element nÅ|", "nÅ"},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			text, caret := caretAt(t, tt.doc)
			ctx := Analyze(text, caret, "")
			if ctx.Prefix != tt.want {
				t.Errorf("Prefix = %q, want %q", ctx.Prefix, tt.want)
			}
		})
	}
}

func TestAnalyzeFallback(t *testing.T) {
	// No markup before the caret: element completion with no flags.
	for _, doc := range []string{"", "plain text", "   "} {
		ctx := Analyze(doc, 0, "")
		if ctx.Type != ElementCompletion {
			t.Errorf("Analyze(%q, 0) Type = %v, want element fallback", doc, ctx.Type)
		}
		if ctx.InElement || ctx.InAttribute || ctx.InAttributeValue {
			t.Errorf("Analyze(%q, 0) should set no flags", doc)
		}
	}
}

func TestAnalyzeNeverPanics(t *testing.T) {
	docs := []string{
		"",
		"<",
		">",
		"<<<<",
		">>>>",
		`<a b="`,
		`<a b='unterminated`,
		`</`,
		`<!-- unterminated comment`,
		`<![CDATA[ unterminated`,
		`<?xml version="1.0"`,
		`<a><b></c></a>`,
		strings.Repeat("<a>", 1000),
	}

	for _, doc := range docs {
		for _, caret := range []int{-5, -1, 0, 1, len(doc) / 2, len(doc), len(doc) + 1, len(doc) + 100} {
			ctx := Analyze(doc, caret, "")
			if ctx.CaretPosition < 0 || ctx.CaretPosition > len(doc) {
				t.Errorf("Analyze(%q, %d): caret %d not clamped", doc, caret, ctx.CaretPosition)
			}
		}
	}
}

func TestAnalyzeCaretClamping(t *testing.T) {
	ctx := Analyze("<root>", 100, "")
	if ctx.CaretPosition != 6 {
		t.Errorf("CaretPosition = %d, want clamped to 6", ctx.CaretPosition)
	}

	ctx = Analyze("<root>", -3, "")
	if ctx.CaretPosition != 0 {
		t.Errorf("CaretPosition = %d, want clamped to 0", ctx.CaretPosition)
	}
}

func TestAnalyzeCurrentNamespace(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{`<xs:schema><xs:element |`, "xs"},
		{`<xs:schema><|`, "xs"}, // inherited from the enclosing element
		{`<plain |`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			text, caret := caretAt(t, tt.doc)
			ctx := Analyze(text, caret, "")
			if ctx.CurrentNamespace != tt.want {
				t.Errorf("CurrentNamespace = %q, want %q", ctx.CurrentNamespace, tt.want)
			}
		})
	}
}

func TestAnalyzeDocumentType(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"xsd", `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:element |`, "xsd"},
		{"xslt", `<xsl:stylesheet xmlns:xsl="http://www.w3.org/1999/XSL/Transform"><|`, "xslt"},
		{"plain xml", `<catalog><book |`, "xml"},
		{"empty", `|`, ""},
		{"comment only", `<!-- note --> |`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, caret := caretAt(t, tt.doc)
			ctx := Analyze(text, caret, "")
			if ctx.DocumentType != tt.want {
				t.Errorf("DocumentType = %q, want %q", ctx.DocumentType, tt.want)
			}
		})
	}
}

func TestAnalyzeHasXSDSchema(t *testing.T) {
	text, caret := caretAt(t, `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><|`)
	ctx := Analyze(text, caret, "")
	if !ctx.HasXSDSchema {
		t.Error("HasXSDSchema should be set for an XSD document")
	}

	// The -instance namespace is not the schema namespace.
	text, caret = caretAt(t, `<doc xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><|`)
	ctx = Analyze(text, caret, "")
	if ctx.HasXSDSchema {
		t.Error("HasXSDSchema should not be set by the instance namespace")
	}
}

func TestAnalyzeMalformedMarkup(t *testing.T) {
	// Quoted values earlier in the document must not bleed into the
	// caret's zone.
	text, caret := caretAt(t, `<a><b attr="v"><c |`)
	ctx := Analyze(text, caret, "")
	if ctx.Type != AttributeCompletion {
		t.Errorf("Type = %v, want attribute", ctx.Type)
	}
	if ctx.CurrentElement != "b" {
		t.Errorf("CurrentElement = %q, want b", ctx.CurrentElement)
	}

	// An unterminated quote swallows the following markup: the caret is
	// still inside the quoted value.
	text, caret = caretAt(t, `<a><b attr="broken><c |`)
	ctx = Analyze(text, caret, "")
	if ctx.Type != AttributeValueCompletion {
		t.Errorf("Type = %v, want attribute-value inside open quote", ctx.Type)
	}
	if ctx.AttributeName != "attr" {
		t.Errorf("AttributeName = %q, want attr", ctx.AttributeName)
	}
	if ctx.CurrentElement != "a" {
		t.Errorf("CurrentElement = %q, want a", ctx.CurrentElement)
	}

	// Angle brackets inside a quoted value are data, not tag boundaries.
	// Typical mid-edit XPath in XSLT match patterns.
	tests := []struct {
		name   string
		doc    string
		want   CompletionType
		attr   string
		prefix string
	}{
		{
			name:   "gt inside unterminated value",
			doc:    `<xsl:template match="a > b`,
			want:   AttributeValueCompletion,
			attr:   "match",
			prefix: "a > b",
		},
		{
			name:   "gt directly before caret",
			doc:    `<xsl:template match="a>`,
			want:   AttributeValueCompletion,
			attr:   "match",
			prefix: "a>",
		},
		{
			name:   "lt inside unterminated value",
			doc:    `<a b="x<`,
			want:   AttributeValueCompletion,
			attr:   "b",
			prefix: "x<",
		},
		{
			name:   "quoted gt in completed attribute",
			doc:    `<a b="x>y" c`,
			want:   AttributeCompletion,
			attr:   "c",
			prefix: "c",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Analyze(tt.doc, len(tt.doc), "")
			if ctx.Type != tt.want {
				t.Errorf("Type = %v, want %v", ctx.Type, tt.want)
			}
			if ctx.AttributeName != tt.attr {
				t.Errorf("AttributeName = %q, want %q", ctx.AttributeName, tt.attr)
			}
			if ctx.Prefix != tt.prefix {
				t.Errorf("Prefix = %q, want %q", ctx.Prefix, tt.prefix)
			}
		})
	}

	// Mismatched close tags: best-effort stack.
	text, caret = caretAt(t, `<a><b><c></b><|`)
	ctx = Analyze(text, caret, "")
	if ctx.CurrentElement != "a" {
		t.Errorf("CurrentElement = %q, want a after auto-close", ctx.CurrentElement)
	}
}

func TestAnalyzeCommentAndCDATA(t *testing.T) {
	// Tags inside comments and CDATA sections do not open elements.
	text, caret := caretAt(t, `<a><!-- <b> --><![CDATA[<c>]]><|`)
	ctx := Analyze(text, caret, "")
	if ctx.CurrentElement != "a" {
		t.Errorf("CurrentElement = %q, want a", ctx.CurrentElement)
	}

	// Caret inside a comment degrades to text content.
	text, caret = caretAt(t, `<a><!-- some no|te`)
	ctx = Analyze(text, caret, "")
	if ctx.Type != TextContentCompletion {
		t.Errorf("Type = %v, want text-content inside comment", ctx.Type)
	}
}

func TestAnalyzeSelectedTextNormalized(t *testing.T) {
	ctx := Analyze("<a>", 3, "")
	if ctx.SelectedText != "" {
		t.Errorf("SelectedText = %q, want empty", ctx.SelectedText)
	}

	ctx = Analyze("<a>", 3, "abc")
	if ctx.SelectedText != "abc" {
		t.Errorf("SelectedText = %q, want abc", ctx.SelectedText)
	}
}

func TestContextRefinement(t *testing.T) {
	text, caret := caretAt(t, `<xsl:stylesheet xmlns:xsl="http://www.w3.org/1999/XSL/Transform"><|`)
	ctx := Analyze(text, caret, "")

	// The scan never derives the template overlay.
	if ctx.Type == TemplateCompletion {
		t.Fatal("template type must not be derived by the scan")
	}

	ctx.MarkTemplate()
	if ctx.Type != TemplateCompletion {
		t.Error("MarkTemplate should set the template type")
	}

	// Refinement fills, never overwrites, the namespace.
	c := Context{}
	c.SetNamespace("xs")
	if c.CurrentNamespace != "xs" {
		t.Error("SetNamespace should fill an empty prefix")
	}
	c.SetNamespace("xsl")
	if c.CurrentNamespace != "xs" {
		t.Error("SetNamespace must not contradict an already-set prefix")
	}
}
