// Package catalog implements a candidate provider backed by a JSON catalog
// of schema completion candidates.
//
// The catalog is a static lookup keyed by completion zone and element name:
// child elements, attributes per element, enumerated attribute values,
// well-known namespaces, and template snippets. It ships with a built-in
// XSD/XSLT catalog and can load a user-supplied file in the same format.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/xmlsense/internal/analyzer"
	"github.com/dshills/xmlsense/internal/completion/item"
)

// ErrInvalidCatalog indicates the catalog file is not valid JSON.
var ErrInvalidCatalog = errors.New("invalid catalog JSON")

// Catalog resolves completion candidates from a JSON document.
// It is immutable after construction and safe for concurrent use.
type Catalog struct {
	json string
}

// Builtin returns the built-in XSD/XSLT catalog.
func Builtin() *Catalog {
	return &Catalog{json: builtinCatalog}
}

// Load reads a catalog from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse builds a catalog from raw JSON.
func Parse(raw string) (*Catalog, error) {
	if !gjson.Valid(raw) {
		return nil, ErrInvalidCatalog
	}
	return &Catalog{json: raw}, nil
}

// Candidates implements the completion provider contract: return the items
// valid at the analyzed position. An unknown position yields an empty list,
// never an error.
func (c *Catalog) Candidates(_ context.Context, ac analyzer.Context) ([]item.Item, error) {
	switch ac.Type {
	case analyzer.ElementCompletion:
		if ac.ClosingTag {
			return c.closers(ac), nil
		}
		return c.childElements(ac.CurrentElement), nil
	case analyzer.AttributeCompletion:
		return c.attributes(ac.TagName), nil
	case analyzer.AttributeValueCompletion:
		return c.attributeValues(ac.TagName, ac.AttributeName), nil
	case analyzer.NamespaceCompletion:
		return c.entries("namespaces", item.KindNamespace), nil
	case analyzer.TemplateCompletion:
		return c.entries("snippets", item.KindSnippet), nil
	case analyzer.TextContentCompletion:
		return c.textSuggestions(ac.CurrentElement), nil
	default:
		return nil, nil
	}
}

// closers suggests the only valid close tag for the enclosing element.
func (c *Catalog) closers(ac analyzer.Context) []item.Item {
	if ac.CurrentElement == "" {
		return nil
	}
	return []item.Item{{
		Label:       ac.CurrentElement,
		Kind:        item.KindElement,
		Description: "close " + ac.CurrentElement,
	}}
}

func (c *Catalog) childElements(element string) []item.Item {
	key := element
	if key == "" {
		return c.entries("roots", item.KindElement)
	}
	return c.items(gjson.Get(c.json, "elements."+pathKey(key)+".children"), item.KindElement)
}

func (c *Catalog) attributes(element string) []item.Item {
	return c.items(gjson.Get(c.json, "attributes."+pathKey(element)), item.KindAttribute)
}

func (c *Catalog) attributeValues(element, attribute string) []item.Item {
	res := gjson.Get(c.json, "values."+pathKey(element)+"."+pathKey(attribute))
	return c.items(res, item.KindValue)
}

func (c *Catalog) textSuggestions(element string) []item.Item {
	return c.items(gjson.Get(c.json, "text."+pathKey(element)), item.KindText)
}

func (c *Catalog) entries(key string, kind item.Kind) []item.Item {
	return c.items(gjson.Get(c.json, key), kind)
}

// items converts a catalog array into completion items. Entries are either
// bare strings or objects with label/description/dataType/required fields.
func (c *Catalog) items(res gjson.Result, kind item.Kind) []item.Item {
	if !res.Exists() || !res.IsArray() {
		return nil
	}

	var out []item.Item
	res.ForEach(func(_, entry gjson.Result) bool {
		switch {
		case entry.Type == gjson.String:
			out = append(out, item.New(entry.String(), kind))
		case entry.IsObject():
			label := entry.Get("label").String()
			if label == "" {
				return true
			}
			out = append(out, item.Item{
				Label:       label,
				Kind:        kind,
				Description: entry.Get("description").String(),
				DataType:    entry.Get("dataType").String(),
				Required:    entry.Get("required").Bool(),
			})
		}
		return true
	})
	return out
}

// pathKey escapes an element or attribute name for use as a gjson path
// component.
func pathKey(name string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return r.Replace(name)
}
