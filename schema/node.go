package schema

import (
	"github.com/erraggy/schemacodec/jsonpointer"
)

// Node is one step from a parent schema to a child schema.
type Node struct {
	// Schema is the child schema value (usually a map[string]any).
	Schema any
	// Kind explains how the child relates to its parent.
	Kind NodeKind
	// Keyword is the parent keyword the child was found under, e.g.
	// "properties", "prefixItems" or "additionalItems". Empty for Root.
	Keyword string
	// Key is the property name, pattern, tuple index or definition name.
	// It is only meaningful when Kind.Keyed() is true.
	Key string
}

// HasKey reports whether the node carries a key.
func (n Node) HasKey() bool {
	return n.Kind.Keyed()
}

// RootNode wraps s as the root of a walk.
func RootNode(s any) Node {
	return Node{Schema: s, Kind: Root}
}

// Pointer returns the JSON pointer tokens that lead from the parent to the child.
func (n Node) Pointer() []string {
	switch {
	case n.Kind == Root:
		return nil
	case n.HasKey():
		return []string{n.Keyword, n.Key}
	default:
		return []string{n.Keyword}
	}
}

// JSONPath appends the node's tokens to a parent JSON pointer such as "#".
func (n Node) JSONPath(parent string) string {
	return jsonpointer.Join(parent, n.Pointer()...)
}
