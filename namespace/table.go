// Package namespace holds the prefix table used to recognise and declare
// prefixed names in the generated ontology.
package namespace

import (
	stderrors "errors"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Validation errors.
var (
	ErrEmptyPrefix     = stderrors.New("empty prefix")
	ErrInvalidPrefix   = stderrors.New("invalid prefix")
	ErrDuplicatePrefix = stderrors.New("duplicate prefix")
	ErrEmptyIRI        = stderrors.New("empty namespace IRI")
)

// reserved holds ":" and every character the term encoder rewrites.
const reserved = ":()（）/％\"',#[]<>"

// Entry binds a short prefix token to a namespace IRI.
type Entry struct {
	Prefix string
	IRI    string
}

// Table is an ordered prefix table. Entry order is the order of the
// generated "@prefix" preamble. A Table is not modified after construction.
type Table struct {
	entries []Entry
}

// NewTable builds a table from entries in the given order and validates it.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{entries: append([]Entry(nil), entries...)}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustTable is NewTable for static tables and tests.
func MustTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of prefixes.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Lookup returns the IRI bound to prefix.
func (t *Table) Lookup(prefix string) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, e := range t.entries {
		if e.Prefix == prefix {
			return e.IRI, true
		}
	}
	return "", false
}

// Match reports the first prefix p for which term starts with "p:".
func (t *Table) Match(term string) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, e := range t.entries {
		if strings.HasPrefix(term, e.Prefix+":") {
			return e.Prefix, true
		}
	}
	return "", false
}

// Validate checks that prefixes are non-empty, unique and free of ":",
// whitespace and encoder-rewritten characters, and that every IRI is set.
// Under these rules no "p:" can be a prefix of another "q:", so Match never
// depends on entry order.
func (t *Table) Validate() error {
	if t == nil {
		return nil
	}
	seen := make(map[string]bool, len(t.entries))
	for _, e := range t.entries {
		if e.Prefix == "" {
			return ErrEmptyPrefix
		}
		if strings.ContainsAny(e.Prefix, reserved) || strings.ContainsFunc(e.Prefix, unicode.IsSpace) {
			return fmt.Errorf("%w: %q", ErrInvalidPrefix, e.Prefix)
		}
		if seen[e.Prefix] {
			return fmt.Errorf("%w: %q", ErrDuplicatePrefix, e.Prefix)
		}
		if e.IRI == "" {
			return fmt.Errorf("%w for prefix %q", ErrEmptyIRI, e.Prefix)
		}
		seen[e.Prefix] = true
	}
	return nil
}

// UnmarshalYAML decodes a YAML mapping of prefix to IRI, keeping key order.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: prefixes must be a mapping of prefix to IRI", node.Line)
	}
	entries := make([]Entry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: prefix entries must be scalars", key.Line)
		}
		entries = append(entries, Entry{Prefix: key.Value, IRI: value.Value})
	}
	t.entries = entries
	return nil
}

// MarshalYAML encodes the table as an ordered YAML mapping.
func (t Table) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range t.entries {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Prefix},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.IRI},
		)
	}
	return node, nil
}
