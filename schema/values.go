package schema

import (
	"sort"
)

// childKeywords are the keywords whose presence means a schema has children.
var childKeywords = [...]string{
	"properties",
	"patternProperties",
	"additionalProperties",
	"items",
	"prefixItems",
	"additionalItems",
}

// IsObject reports whether v is a JSON object.
func IsObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// IsArray reports whether v is a JSON array.
func IsArray(v any) bool {
	_, ok := v.([]any)
	return ok
}

// Ref returns the $ref string of a schema object.
func Ref(s any) (string, bool) {
	obj, ok := s.(map[string]any)
	if !ok {
		return "", false
	}
	ref, ok := obj["$ref"].(string)
	return ref, ok
}

// ID returns the $id string of a schema object.
func ID(s any) (string, bool) {
	obj, ok := s.(map[string]any)
	if !ok {
		return "", false
	}
	id, ok := obj["$id"].(string)
	return id, ok
}

// HasRef reports whether a schema object is a reference. A $ref that is
// null, false, 0 or the empty string does not count.
func HasRef(obj map[string]any) bool {
	ref, present := obj["$ref"]
	if !present {
		return false
	}
	switch r := ref.(type) {
	case nil:
		return false
	case string:
		return r != ""
	case bool:
		return r
	case float64:
		return r != 0
	case int:
		return r != 0
	default:
		return true
	}
}

// HasChildren reports whether a schema carries any of properties,
// patternProperties, additionalProperties, items, prefixItems or
// additionalItems as an object or array value.
func HasChildren(s any) bool {
	obj, ok := s.(map[string]any)
	if !ok {
		return false
	}
	for _, kw := range childKeywords {
		switch obj[kw].(type) {
		case map[string]any, []any:
			return true
		}
	}
	return false
}

// SortedKeys returns the keys of m in sorted order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
