// Package analyzer classifies the caret's syntactic position inside
// partially typed XML markup.
//
// Analyze inspects the full document text and a caret offset and derives a
// Context describing which completion zone the caret occupies: an element
// name, an attribute name, an attribute value, a namespace declaration, or
// text content between tags. The classification is a backward scan over the
// text before the caret, so it tolerates unterminated tags and quotes; a
// hopeless position degrades to the element zone rather than failing.
//
// Analyze never panics, for any combination of text and caret offset. Out of
// range offsets are clamped.
//
// The analyzer owns Context construction. Later pipeline stages may refine a
// context (for example mark it as a template position after an XSLT-aware
// lookup) but must never contradict fields the analyzer already set.
package analyzer
