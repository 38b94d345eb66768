package codec

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/erraggy/schemacodec/internal/pathutil"
	"github.com/erraggy/schemacodec/schema"
	"github.com/erraggy/schemacodec/schemaerrors"
)

// Transform walks value alongside the schema node s and applies the
// functions registered for t. scope lists schemas whose $id a $ref may
// name in addition to the ones met while walking; it is usually empty.
//
// The result is a new value: objects and arrays are copied, never
// modified in place. The walk stops at the first error.
func (c *Codec) Transform(t *Transformer, s any, value any, scope ...any) (any, error) {
	if !c.Supports(t) {
		return nil, &schemaerrors.TransformerError{Codec: c.name, Transformer: t.Name()}
	}

	ptr := pathutil.Get("")
	defer pathutil.Put(ptr)

	w := walk{codec: c, transformer: t, ptr: ptr}
	return w.transform(s, value, scope)
}

type walk struct {
	codec       *Codec
	transformer *Transformer
	ptr         *pathutil.PointerBuilder
}

func (w *walk) transform(s, value any, scope []any) (any, error) {
	inner := scope
	if _, ok := schema.ID(s); ok {
		inner = append([]any{s}, scope...)
	}

	switch KindOf(s) {
	case KindRef:
		ref, _ := schema.Ref(s)
		target, ok := findID(scope, ref)
		if !ok {
			return nil, &schemaerrors.ReferenceError{
				Ref:     ref,
				Path:    w.ptr.String(),
				Message: fmt.Sprintf("schema with $id %q not found", ref),
			}
		}
		return w.transform(target, value, inner)

	case KindArray:
		return w.array(s, value, inner)

	case KindObject:
		return w.object(s, value, inner)

	default:
		return w.leaf(s, value)
	}
}

func (w *walk) array(s, value any, scope []any) (any, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, w.mismatch("array", value)
	}

	var rest any
	hasRest := false
	if nodes := schema.LookupAll(s, schema.ArrayItems); len(nodes) > 0 {
		rest, hasRest = nodes[0].Schema, true
	}

	out := make([]any, len(items))
	for i, item := range items {
		itemSchema, found := rest, hasRest
		if w.codec.tupleItems {
			if nodes := schema.Lookup(s, schema.TupleItem, strconv.Itoa(i)); len(nodes) > 0 {
				itemSchema, found = nodes[0].Schema, true
			}
		}
		if !found {
			out[i] = item
			continue
		}

		w.ptr.PushIndex(i)
		v, err := w.transform(itemSchema, item, scope)
		w.ptr.Pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (w *walk) object(s, value any, scope []any) (any, error) {
	members, ok := value.(map[string]any)
	if !ok {
		return nil, w.mismatch("object", value)
	}

	properties, _ := s.(map[string]any)["properties"].(map[string]any)
	out := make(map[string]any, len(members))
	for _, key := range schema.SortedKeys(members) {
		propSchema, known := properties[key]
		if !known {
			if w.codec.unknownKeys == PassThrough {
				out[key] = members[key]
			}
			continue
		}

		w.ptr.Push(key)
		v, err := w.transform(propSchema, members[key], scope)
		w.ptr.Pop()
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func (w *walk) leaf(s, value any) (any, error) {
	fn, owner, err := w.codec.lookup(w.transformer, s)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return value, nil
	}
	v, err := fn(value)
	if err != nil {
		return nil, &schemaerrors.TransformError{
			Codec:       owner.name,
			Transformer: w.transformer.Name(),
			Path:        w.ptr.String(),
			Cause:       err,
		}
	}
	return v, nil
}

func (w *walk) mismatch(expected string, value any) error {
	return &schemaerrors.StructuralError{
		Path:     w.ptr.String(),
		Expected: expected,
		Got:      typeName(value),
	}
}

// findID returns the first schema in scope whose $id is id.
func findID(scope []any, id string) (any, bool) {
	for _, s := range scope {
		if sid, ok := schema.ID(s); ok && sid == id {
			return s, true
		}
	}
	return nil, false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
