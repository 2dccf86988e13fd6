package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Well-known namespaces used for document-type detection.
const (
	xsdNamespace  = "http://www.w3.org/2001/XMLSchema"
	xsltNamespace = "http://www.w3.org/1999/XSL/Transform"
)

// Analyze classifies the caret position in fullText and returns a completion
// context. It never panics: a nil-equivalent selection is normalized to "",
// an out-of-range caret is clamped, and malformed markup degrades to the
// closest zone the backward scan can justify.
func Analyze(fullText string, caret int, selected string) Context {
	ctx := Context{
		FullText:     fullText,
		SelectedText: selected,
		Type:         ElementCompletion,
	}

	if caret < 0 {
		caret = 0
	}
	if caret > len(fullText) {
		caret = len(fullText)
	}
	ctx.CaretPosition = caret

	before := fullText[:caret]
	lastLt, lastGt := lastTagBoundaries(before)

	// The enclosing-element scan stops at the caret's own tag, so a
	// partially typed tag never counts as its own parent.
	scanEnd := caret

	switch {
	case lastLt > lastGt:
		// An unmatched '<' before the caret: inside a tag.
		scanEnd = lastLt
		classifyTag(&ctx, before[lastLt+1:])
	case lastGt >= 0:
		// An unmatched '>' before the caret: between tags.
		ctx.Type = TextContentCompletion
		ctx.Prefix = currentToken(before[lastGt+1:])
	default:
		// No markup before the caret at all. Fall back to the element
		// zone with no flags set.
	}

	stack := openElements(fullText[:scanEnd])
	if len(stack) > 0 {
		ctx.CurrentElement = stack[len(stack)-1]
	}
	if len(stack) > 1 {
		ctx.ParentElement = stack[len(stack)-2]
	}

	if ctx.CurrentNamespace == "" {
		name := ctx.TagName
		if name == "" {
			name = ctx.CurrentElement
		}
		if i := strings.IndexByte(name, ':'); i > 0 {
			ctx.CurrentNamespace = name[:i]
		}
	}

	ctx.HasXSDSchema = declaresNamespace(fullText, xsdNamespace)
	ctx.DocumentType = documentType(fullText)

	return ctx
}

// lastTagBoundaries returns the position of the last tag-opening '<' and the
// last tag-closing '>' in text. Angle brackets inside quoted attribute
// values, comments, and CDATA sections are data, not boundaries, so an
// unterminated value like match="a > b keeps the caret inside its tag.
func lastTagBoundaries(text string) (lastLt, lastGt int) {
	lastLt, lastGt = -1, -1

	for i := 0; i < len(text); {
		switch {
		case text[i] == '>':
			lastGt = i
			i++
		case text[i] != '<':
			i++
		case strings.HasPrefix(text[i:], "<!--"):
			end := strings.Index(text[i+4:], "-->")
			if end < 0 {
				return i, lastGt
			}
			lastGt = i + 4 + end + 2
			i = lastGt + 1
		case strings.HasPrefix(text[i:], "<![CDATA["):
			end := strings.Index(text[i+9:], "]]>")
			if end < 0 {
				return i, lastGt
			}
			lastGt = i + 9 + end + 2
			i = lastGt + 1
		default:
			lastLt = i
			gt := tagEnd(text, i+1)
			if gt < 0 {
				return lastLt, lastGt
			}
			lastGt = gt
			i = gt + 1
		}
	}

	return lastLt, lastGt
}

// classifyTag derives the zone from the tag content between '<' and the
// caret.
func classifyTag(ctx *Context, tag string) {
	if strings.HasPrefix(tag, "!") || strings.HasPrefix(tag, "?") {
		// Comment, doctype, or processing instruction body: no markup
		// completion applies, treat as text content.
		ctx.Type = TextContentCompletion
		return
	}

	rest := tag
	closing := strings.HasPrefix(rest, "/")
	if closing {
		rest = rest[1:]
	}

	nameEnd := strings.IndexFunc(rest, unicode.IsSpace)
	if nameEnd < 0 {
		// Still typing the element name itself.
		ctx.Type = ElementCompletion
		ctx.InElement = true
		ctx.ClosingTag = closing
		ctx.TagName = rest
		ctx.Prefix = rest
		return
	}

	ctx.TagName = rest[:nameEnd]

	// Track unmatched quotes in the attribute region.
	var quote rune
	quoteStart := -1
	for i, r := range rest[nameEnd:] {
		switch {
		case quote == 0 && (r == '"' || r == '\''):
			quote = r
			quoteStart = nameEnd + i
		case r == quote:
			quote = 0
		}
	}

	if quote != 0 {
		// Inside an unterminated quoted value.
		ctx.Type = AttributeValueCompletion
		ctx.InAttributeValue = true
		ctx.AttributeName = attributeBefore(rest[:quoteStart])
		ctx.Prefix = rest[quoteStart+1:]
		if isNamespaceDecl(ctx.AttributeName) {
			ctx.Type = NamespaceCompletion
		}
		return
	}

	// Past the element name, outside quotes: typing an attribute name.
	ctx.Type = AttributeCompletion
	ctx.InAttribute = true
	ctx.AttributeName = strings.TrimSuffix(currentToken(rest), "=")
	ctx.Prefix = ctx.AttributeName
	if isNamespaceDecl(ctx.AttributeName) {
		ctx.Type = NamespaceCompletion
	}
}

// attributeBefore extracts the attribute name that owns the quote opened at
// the end of s, i.e. the name token before a trailing '='.
func attributeBefore(s string) string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	s = strings.TrimSuffix(s, "=")
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	return currentToken(s)
}

// currentToken returns the trailing token of s, cut at whitespace or a
// quote character. Decodes runes from the end so multi-byte characters are
// never split.
func currentToken(s string) string {
	for i := len(s); i > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if unicode.IsSpace(r) || r == '"' || r == '\'' {
			return s[i:]
		}
		i -= size
	}
	return s
}

// isNamespaceDecl reports whether name is an xmlns declaration, with or
// without a prefix part.
func isNamespaceDecl(name string) bool {
	return name == "xmlns" || strings.HasPrefix(name, "xmlns:")
}

// openElements returns the stack of unclosed start tags in text, outermost
// first. Comments, CDATA sections, declarations, and self-closing tags are
// skipped; an unterminated trailing tag is ignored. Close tags pop
// best-effort, auto-closing anything left open above the matching name.
func openElements(text string) []string {
	var stack []string

	for i := 0; i < len(text); {
		lt := strings.IndexByte(text[i:], '<')
		if lt < 0 {
			break
		}
		lt += i

		if strings.HasPrefix(text[lt:], "<!--") {
			end := strings.Index(text[lt+4:], "-->")
			if end < 0 {
				break
			}
			i = lt + 4 + end + 3
			continue
		}
		if strings.HasPrefix(text[lt:], "<![CDATA[") {
			end := strings.Index(text[lt+9:], "]]>")
			if end < 0 {
				break
			}
			i = lt + 9 + end + 3
			continue
		}

		gt := tagEnd(text, lt+1)
		if gt < 0 {
			break
		}

		raw := text[lt+1 : gt]
		i = gt + 1

		if raw == "" || raw[0] == '!' || raw[0] == '?' {
			continue
		}

		if raw[0] == '/' {
			name := tagNameOf(raw[1:])
			for n := len(stack) - 1; n >= 0; n-- {
				if stack[n] == name {
					stack = stack[:n]
					break
				}
			}
			continue
		}

		if strings.HasSuffix(strings.TrimRightFunc(raw, unicode.IsSpace), "/") {
			continue
		}

		stack = append(stack, tagNameOf(raw))
	}

	return stack
}

// tagEnd finds the '>' closing the tag opened before from, skipping '>'
// characters inside quoted attribute values.
func tagEnd(text string, from int) int {
	var quote byte
	for i := from; i < len(text); i++ {
		c := text[i]
		switch {
		case quote == 0 && (c == '"' || c == '\''):
			quote = c
		case quote != 0 && c == quote:
			quote = 0
		case quote == 0 && c == '>':
			return i
		}
	}
	return -1
}

// tagNameOf extracts the element name from raw tag content.
func tagNameOf(raw string) string {
	raw = strings.TrimSpace(raw)
	end := strings.IndexFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == '/' || r == '>'
	})
	if end < 0 {
		return raw
	}
	return raw[:end]
}

// declaresNamespace reports whether text contains ns as a complete quoted
// attribute value, so the -instance namespace does not count as the schema
// namespace.
func declaresNamespace(text, ns string) bool {
	for i := 0; ; {
		j := strings.Index(text[i:], ns)
		if j < 0 {
			return false
		}
		j += i
		end := j + len(ns)
		if j > 0 && (text[j-1] == '"' || text[j-1] == '\'') &&
			end < len(text) && text[end] == text[j-1] {
			return true
		}
		i = end
	}
}

// documentType classifies text as "xsd", "xslt", or generic "xml" from its
// root element and namespace declarations. Empty when no root exists yet.
func documentType(text string) string {
	root := rootElement(text)

	local := root
	if i := strings.IndexByte(local, ':'); i >= 0 {
		local = local[i+1:]
	}

	switch {
	case declaresNamespace(text, xsltNamespace), local == "stylesheet", local == "transform":
		if root == "" {
			return ""
		}
		return "xslt"
	case declaresNamespace(text, xsdNamespace) && local == "schema":
		return "xsd"
	case root != "":
		return "xml"
	default:
		return ""
	}
}

// rootElement returns the name of the first real element tag in text.
func rootElement(text string) string {
	for i := 0; i < len(text); {
		lt := strings.IndexByte(text[i:], '<')
		if lt < 0 {
			return ""
		}
		lt += i

		if strings.HasPrefix(text[lt:], "<!--") {
			end := strings.Index(text[lt+4:], "-->")
			if end < 0 {
				return ""
			}
			i = lt + 4 + end + 3
			continue
		}

		gt := tagEnd(text, lt+1)
		if gt < 0 {
			// The root tag may still be unterminated while typing.
			gt = len(text)
		}

		raw := text[lt+1 : gt]
		i = gt + 1

		if raw == "" || raw[0] == '!' || raw[0] == '?' || raw[0] == '/' {
			continue
		}
		return tagNameOf(raw)
	}
	return ""
}
