package schema

import "fmt"

// NodeKind identifies how a subschema relates to its parent.
type NodeKind int

const (
	// Root is the top-level schema of a walk.
	Root NodeKind = iota

	// ObjectProperty is a named entry of "properties".
	ObjectProperty

	// ObjectPatternProperties is an entry of "patternProperties", keyed by pattern.
	ObjectPatternProperties

	// ObjectAdditionalProperties is the "additionalProperties" schema.
	ObjectAdditionalProperties

	// TupleItem is a positional schema from "prefixItems" or an array-valued "items".
	TupleItem

	// ArrayItems is the schema for the remaining (or all) array elements.
	ArrayItems

	// DefProperty is a named entry of "$defs" or "definitions".
	DefProperty
)

var kindNames = [...]string{
	Root:                       "Root",
	ObjectProperty:             "ObjectProperty",
	ObjectPatternProperties:    "ObjectPatternProperties",
	ObjectAdditionalProperties: "ObjectAdditionalProperties",
	TupleItem:                  "TupleItem",
	ArrayItems:                 "ArrayItems",
	DefProperty:                "DefProperty",
}

// IsValid returns true if the kind is one of the defined constants.
func (k NodeKind) IsValid() bool {
	return k >= Root && k <= DefProperty
}

// String returns the constant name of the kind.
func (k NodeKind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
	return kindNames[k]
}

// Keyed reports whether nodes of this kind carry a key.
// ObjectAdditionalProperties, ArrayItems and Root never do.
func (k NodeKind) Keyed() bool {
	switch k {
	case ObjectProperty, ObjectPatternProperties, TupleItem, DefProperty:
		return true
	default:
		return false
	}
}

// ParseNodeKind returns the kind whose String() equals name.
func ParseNodeKind(name string) (NodeKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return NodeKind(k), true
		}
	}
	return 0, false
}
