package analyzer

// CompletionType identifies the completion zone at the caret.
type CompletionType int

const (
	// ElementCompletion: the caret is typing an element name, or nothing
	// more specific could be derived (the safe default).
	ElementCompletion CompletionType = iota
	// AttributeCompletion: inside a tag after the element name.
	AttributeCompletion
	// AttributeValueCompletion: inside an unterminated quoted value.
	AttributeValueCompletion
	// TextContentCompletion: between tags.
	TextContentCompletion
	// NamespaceCompletion: inside an xmlns declaration.
	NamespaceCompletion
	// TemplateCompletion: caller-set overlay for XSLT template snippets.
	// Never derived by the scan itself.
	TemplateCompletion
)

// String returns the display name of the completion type.
func (t CompletionType) String() string {
	switch t {
	case ElementCompletion:
		return "element"
	case AttributeCompletion:
		return "attribute"
	case AttributeValueCompletion:
		return "attribute-value"
	case TextContentCompletion:
		return "text-content"
	case NamespaceCompletion:
		return "namespace"
	case TemplateCompletion:
		return "template"
	default:
		return "unknown"
	}
}

// Context is a per-request snapshot of the caret's syntactic position.
// The analyzer constructs it; downstream stages may refine but never
// contradict already-set fields.
type Context struct {
	// FullText is the entire document content at request time.
	FullText string

	// SelectedText is the editor selection. Never empty-by-accident: a
	// missing selection is normalized to "".
	SelectedText string

	// CaretPosition is the clamped offset into FullText.
	CaretPosition int

	// Type is the completion zone. Defaults to ElementCompletion.
	Type CompletionType

	// CurrentElement is the nearest unclosed start tag enclosing the
	// caret, excluding the tag the caret is typing in.
	CurrentElement string

	// ParentElement is the next enclosing element out, if any.
	ParentElement string

	// TagName is the name of the tag the caret sits inside, when the
	// caret is in a tag zone. Empty between tags.
	TagName string

	// AttributeName is the attribute being typed or valued, when known.
	AttributeName string

	// Prefix is the in-progress token at the caret: the partial element
	// name, attribute name, attribute value, or word being typed. It is
	// the query the search layer ranks candidates against.
	Prefix string

	// CurrentNamespace is the prefix in use at the caret ("xs" inside
	// <xs:element>), empty when none.
	CurrentNamespace string

	// DocumentType is "xsd", "xslt", or "xml"; empty when the document
	// has no recognizable root yet.
	DocumentType string

	// ClosingTag marks an element zone entered through "</": upstream
	// candidate generation must restrict to valid closers.
	ClosingTag bool

	// Zone flags, set consistently with Type by the analyzer.
	InElement        bool
	InAttribute      bool
	InAttributeValue bool

	// HasXSDSchema reports whether the document declares the XML Schema
	// namespace.
	HasXSDSchema bool
}

// MarkTemplate refines the context for XSLT template-snippet completion.
// Intended for the XSLT-aware caller after it receives a base context.
func (c *Context) MarkTemplate() {
	c.Type = TemplateCompletion
}

// SetNamespace refines the namespace prefix when a schema lookup resolves
// one the scan could not see. An already-set prefix is kept.
func (c *Context) SetNamespace(prefix string) {
	if c.CurrentNamespace == "" {
		c.CurrentNamespace = prefix
	}
}
