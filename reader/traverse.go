package reader

import (
	"regexp"
	"strconv"

	"github.com/erraggy/schemacodec/schema"
)

// TraverseFunc receives a leaf value, the schema that applies to it and the
// node path that led there. The schema is nil when no schema applies. path
// is only valid during the call; copy it to retain it.
type TraverseFunc func(s any, value any, path []schema.Node)

// Traverse walks value alongside the root schema and calls fn for every
// non-container value reached.
//
// For each object member, the matching "properties" schema and every
// "patternProperties" schema whose pattern matches the key apply, and fn
// fires once per applicable schema. "additionalProperties" applies only when
// nothing else matched. Array elements use their tuple schema, falling back
// to the rest schema. A schema carrying $ref is dereferenced first. Members
// with no applicable schema are skipped. Patterns that fail to compile are
// ignored.
//
// Members of an object are visited in sorted key order.
func (r *Reader) Traverse(value any, fn TraverseFunc) {
	r.traverse(r.current(), value, fn)
}

func (r *Reader) traverse(s any, value any, fn TraverseFunc) {
	if ref, ok := schema.Ref(s); ok {
		resolved, found := r.store.Dereference(ref)
		if !found {
			r.logger.Debug("reader: unresolved ref during traverse", "ref", ref)
		}
		s = resolved
	}

	switch v := value.(type) {
	case map[string]any:
		for _, key := range schema.SortedKeys(v) {
			child := v[key]
			descend := func(n schema.Node) { r.traverse(n.Schema, child, fn) }

			matched := r.tryAt(s, schema.ObjectProperty, key, descend)
			r.eachAt(s, schema.ObjectPatternProperties, func(n schema.Node) {
				re := r.pattern(n.Key)
				if re == nil || !re.MatchString(key) {
					return
				}
				matched++
				r.traverse(n.Schema, child, fn)
			})
			if matched == 0 {
				r.tryAt(s, schema.ObjectAdditionalProperties, "", descend)
			}
		}
	case []any:
		for i, child := range v {
			descend := func(n schema.Node) { r.traverse(n.Schema, child, fn) }
			if r.tryAt(s, schema.TupleItem, strconv.Itoa(i), descend) == 0 {
				r.tryAt(s, schema.ArrayItems, "", descend)
			}
		}
	default:
		fn(s, value, r.path)
	}
}

// pattern compiles and caches a patternProperties key. Invalid patterns are
// cached as nil.
func (r *Reader) pattern(p string) *regexp.Regexp {
	if re, ok := r.patterns[p]; ok {
		return re
	}
	re, err := regexp.Compile(p)
	if err != nil {
		r.logger.Debug("reader: skipping invalid pattern", "pattern", p, "error", err)
		re = nil
	}
	r.patterns[p] = re
	return re
}
