package schema

import (
	"strconv"

	"github.com/erraggy/schemacodec/jsonpointer"
)

// Lookuper finds child schemas of a given kind.
//
// Lookup returns the child stored under key, and LookupAll returns every
// child of the kind. Kinds that carry no key (ObjectAdditionalProperties and
// ArrayItems) are only served by LookupAll; a keyed Lookup for them returns
// nothing.
//
// Custom dialects can embed [Draft] and override one method.
type Lookuper interface {
	Lookup(s any, kind NodeKind, key string) []Node
	LookupAll(s any, kind NodeKind) []Node
}

// Draft is the default Lookuper. It understands draft 4 through 2020-12
// keywords: array-valued items with additionalItems, and prefixItems with
// items as the rest schema.
type Draft struct{}

var _ Lookuper = Draft{}

// Default is the Lookuper used when none is configured.
var Default Lookuper = Draft{}

// Lookup returns the child of s of the given kind stored under key.
func Lookup(s any, kind NodeKind, key string) []Node {
	return Draft{}.Lookup(s, kind, key)
}

// LookupAll returns every child of s of the given kind.
func LookupAll(s any, kind NodeKind) []Node {
	return Draft{}.LookupAll(s, kind)
}

// Lookup implements Lookuper.
func (Draft) Lookup(s any, kind NodeKind, key string) []Node {
	obj, ok := s.(map[string]any)
	if !ok || HasRef(obj) {
		return nil
	}

	switch kind {
	case ObjectProperty:
		return keyed(obj, kind, "properties", key)
	case ObjectPatternProperties:
		return keyed(obj, kind, "patternProperties", key)
	case DefProperty:
		if found := keyed(obj, kind, "$defs", key); found != nil {
			return found
		}
		return keyed(obj, kind, "definitions", key)
	case TupleItem:
		if _, isTuple := obj["prefixItems"].([]any); isTuple {
			return keyed(obj, kind, "prefixItems", key)
		}
		if _, isTuple := obj["items"].([]any); isTuple {
			return keyed(obj, kind, "items", key)
		}
	}
	return nil
}

// LookupAll implements Lookuper.
func (d Draft) LookupAll(s any, kind NodeKind) []Node {
	obj, ok := s.(map[string]any)
	if !ok || HasRef(obj) {
		return nil
	}

	switch kind {
	case ObjectProperty:
		return d.eachKey(obj, kind, obj["properties"])
	case ObjectPatternProperties:
		return d.eachKey(obj, kind, obj["patternProperties"])
	case DefProperty:
		defs, present := obj["$defs"]
		if !present {
			defs = obj["definitions"]
		}
		return d.eachKey(obj, kind, defs)
	case ObjectAdditionalProperties:
		if sub, present := obj["additionalProperties"]; present {
			return []Node{{Schema: sub, Kind: kind, Keyword: "additionalProperties"}}
		}
	case TupleItem:
		tuple, isTuple := obj["prefixItems"].([]any)
		if !isTuple {
			tuple, isTuple = obj["items"].([]any)
		}
		if !isTuple {
			return nil
		}
		var ret []Node
		for i := range tuple {
			ret = append(ret, d.Lookup(obj, kind, strconv.Itoa(i))...)
		}
		return ret
	case ArrayItems:
		return restItems(obj)
	}
	return nil
}

func (d Draft) eachKey(obj map[string]any, kind NodeKind, container any) []Node {
	members, ok := container.(map[string]any)
	if !ok {
		return nil
	}
	var ret []Node
	for _, key := range SortedKeys(members) {
		ret = append(ret, d.Lookup(obj, kind, key)...)
	}
	return ret
}

func keyed(obj map[string]any, kind NodeKind, keyword, key string) []Node {
	container, present := obj[keyword]
	if !present {
		return nil
	}
	sub, ok := jsonpointer.Member(container, key)
	if !ok {
		return nil
	}
	return []Node{{Schema: sub, Kind: kind, Keyword: keyword, Key: key}}
}

// restItems resolves the schema applied to array elements past the tuple
// prefix. prefixItems pairs with items, an array-valued items pairs with
// additionalItems, and otherwise items applies to every element. A false
// rest schema means no further elements and yields nothing.
func restItems(obj map[string]any) []Node {
	keyword := "items"
	if _, isTuple := obj["prefixItems"].([]any); !isTuple {
		if _, isTuple := obj["items"].([]any); isTuple {
			keyword = "additionalItems"
		}
	}
	sub, present := obj[keyword]
	if !present {
		return nil
	}
	if b, isBool := sub.(bool); isBool && !b {
		return nil
	}
	return []Node{{Schema: sub, Kind: ArrayItems, Keyword: keyword}}
}
