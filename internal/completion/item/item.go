// Package item defines the completion candidate type shared by the search
// orchestrator, candidate providers, and the completion session.
package item

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a completion candidate.
type Kind int

const (
	// KindElement is an XML element name.
	KindElement Kind = iota
	// KindAttribute is an attribute name.
	KindAttribute
	// KindValue is an attribute value, typically a schema enumeration.
	KindValue
	// KindText is plain text content.
	KindText
	// KindNamespace is a namespace URI or prefix declaration.
	KindNamespace
	// KindSnippet is a multi-line template, e.g. an XSLT template skeleton.
	KindSnippet
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindAttribute:
		return "attribute"
	case KindValue:
		return "value"
	case KindText:
		return "text"
	case KindNamespace:
		return "namespace"
	case KindSnippet:
		return "snippet"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind as its display name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind from its display name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, ok := kindNames[s]
	if !ok {
		return fmt.Errorf("unknown item kind %q", s)
	}
	*k = kind
	return nil
}

var kindNames = map[string]Kind{
	"element":   KindElement,
	"attribute": KindAttribute,
	"value":     KindValue,
	"text":      KindText,
	"namespace": KindNamespace,
	"snippet":   KindSnippet,
}

// Item is a single completion candidate. Items are produced by a candidate
// provider and are opaque to the matching engine except for these fields.
type Item struct {
	// Label is the primary text shown and matched.
	Label string `json:"label"`

	// Kind classifies the candidate.
	Kind Kind `json:"kind"`

	// Description is optional documentation, searchable in advanced mode.
	Description string `json:"description,omitempty"`

	// Required marks schema-required candidates, which rank higher.
	Required bool `json:"required,omitempty"`

	// DataType is the schema type of the candidate (e.g. "xs:string"),
	// searchable in advanced mode.
	DataType string `json:"dataType,omitempty"`
}

// New creates an item with the given label and kind.
func New(label string, kind Kind) Item {
	return Item{Label: label, Kind: kind}
}
