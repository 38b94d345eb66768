package codec

import "fmt"

// Kind is how Transform treats a schema node.
type Kind int

const (
	// KindLeaf nodes are transformed by registered functions.
	KindLeaf Kind = iota
	// KindRef nodes carry a $ref string.
	KindRef
	// KindArray nodes describe arrays and tuples.
	KindArray
	// KindObject nodes describe objects and records.
	KindObject
)

var kindNames = [...]string{
	KindLeaf:   "Leaf",
	KindRef:    "Ref",
	KindArray:  "Array",
	KindObject: "Object",
}

// String returns the kind's name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindOf classifies a schema node. A string $ref wins over everything else.
// Otherwise "type" decides, and without a usable "type" the structural
// keywords do: items or prefixItems make an array, properties,
// patternProperties or additionalProperties make an object.
func KindOf(s any) Kind {
	obj, ok := s.(map[string]any)
	if !ok {
		return KindLeaf
	}
	if _, ok := obj["$ref"].(string); ok {
		return KindRef
	}
	if typ, ok := obj["type"].(string); ok {
		switch typ {
		case "array":
			return KindArray
		case "object":
			return KindObject
		default:
			return KindLeaf
		}
	}
	if has(obj, "items", "prefixItems") {
		return KindArray
	}
	if has(obj, "properties", "patternProperties", "additionalProperties") {
		return KindObject
	}
	return KindLeaf
}

func has(obj map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := obj[k]; ok {
			return true
		}
	}
	return false
}
