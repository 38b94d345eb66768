package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemacodec/internal/testutil"
	"github.com/erraggy/schemacodec/refstore"
	"github.com/erraggy/schemacodec/schema"
	"github.com/erraggy/schemacodec/schemaerrors"
)

type obj = map[string]any

func mustNew(t *testing.T, root any, opts ...Option) *Visitor {
	t.Helper()
	v, err := New(root, opts...)
	require.NoError(t, err)
	return v
}

func TestNew(t *testing.T) {
	for _, root := range []any{nil, 1, "foo", []any{}} {
		_, err := New(root)
		require.Error(t, err, "root %#v", root)
		assert.ErrorIs(t, err, schemaerrors.ErrConstruction)
	}

	t.Run("custom path construction", func(t *testing.T) {
		root, _ := testutil.KitchenSink()
		v := mustNew(t, root, WithPathBuilder(func(schema.NodeKind, string, string) string { return "ok" }))

		count := 0
		v.VisitSchema(func(info *Info) Action {
			assert.Equal(t, "ok", info.DataPath)
			count++
			return Continue
		})
		assert.Equal(t, 25, count)
	})

	t.Run("shared store", func(t *testing.T) {
		store, err := refstore.New(obj{"properties": obj{"a": obj{}}})
		require.NoError(t, err)
		v := mustNew(t, nil, WithStore(store))
		assert.Same(t, store, v.Store())
	})
}

func TestVisitSchemaKitchenSink(t *testing.T) {
	root, expectations := testutil.KitchenSink()
	v := mustNew(t, root)

	unresolved := make(map[string]testutil.Expectation, len(expectations))
	for k, e := range expectations {
		unresolved[k] = e
	}

	v.VisitSchema(func(info *Info) Action {
		exp, ok := unresolved[info.DataPath]
		if !assert.True(t, ok, "visit encountered an unexpected path: %s", info.DataPath) {
			return Continue
		}
		assert.Equal(t, exp.JSONPath, info.JSONPath, info.DataPath)
		assert.True(t, schema.Same(exp.Schema, info.Schema), "schema for %s", info.DataPath)
		assert.Equal(t, exp.Kind, info.Kind, info.DataPath)
		assert.Equal(t, exp.Ref, info.Ref, info.DataPath)
		assert.Equal(t, exp.HasChildren, info.HasChildren, info.DataPath)

		delete(unresolved, info.DataPath)
		return Continue
	})

	assert.Empty(t, unresolved)
}

func TestVisitSchemaIsDeterministic(t *testing.T) {
	root, _ := testutil.KitchenSink()
	v := mustNew(t, root)

	walk := func() []string {
		var paths []string
		v.VisitSchema(func(info *Info) Action {
			paths = append(paths, info.DataPath)
			return Continue
		})
		return paths
	}

	first := walk()
	assert.Equal(t, first, walk())
	assert.Equal(t, []string{".child", ".child.num", ".child.str", ".foo/bar~baz", ".newTuple"}, first[:5])
}

func TestVisitDefs(t *testing.T) {
	for _, key := range []string{"$defs", "definitions"} {
		t.Run(key, func(t *testing.T) {
			baz := obj{"type": "string"}
			foo := obj{"type": "string"}
			bar := obj{"type": "object", "properties": obj{"baz": baz}}
			v := mustNew(t, obj{key: obj{"foo": foo, "bar": bar}})

			unresolved := map[string]testutil.Expectation{
				".foo":     {Schema: foo, Kind: schema.ObjectProperty, JSONPath: "#/" + key + "/foo"},
				".bar":     {Schema: bar, Kind: schema.ObjectProperty, JSONPath: "#/" + key + "/bar", HasChildren: true},
				".bar.baz": {Schema: baz, Kind: schema.ObjectProperty, JSONPath: "#/" + key + "/bar/properties/baz"},
			}

			v.VisitDefs(func(info *Info) Action {
				exp, ok := unresolved[info.DataPath]
				require.True(t, ok, "unexpected path %s", info.DataPath)
				assert.Equal(t, exp.JSONPath, info.JSONPath)
				assert.True(t, schema.Same(exp.Schema, info.Schema))
				assert.Equal(t, exp.Kind, info.Kind)
				assert.Empty(t, info.Ref)
				assert.Equal(t, exp.HasChildren, info.HasChildren)
				delete(unresolved, info.DataPath)
				return Continue
			})
			assert.Empty(t, unresolved)
		})
	}

	t.Run("$defs before definitions", func(t *testing.T) {
		v := mustNew(t, obj{
			"definitions": obj{"b": obj{}},
			"$defs":       obj{"a": obj{}},
		})
		var got []string
		v.VisitDefs(func(info *Info) Action {
			got = append(got, info.JSONPath)
			return Continue
		})
		assert.Equal(t, []string{"#/$defs/a", "#/definitions/b"}, got)
	})

	t.Run("escapes definition names in json paths", func(t *testing.T) {
		v := mustNew(t, obj{"$defs": obj{"a/b": obj{}}})
		var got []string
		v.VisitDefs(func(info *Info) Action {
			got = append(got, info.JSONPath)
			return Continue
		})
		assert.Equal(t, []string{"#/$defs/a~1b"}, got)
	})
}

func TestRefSources(t *testing.T) {
	t.Run("before visit", func(t *testing.T) {
		v := mustNew(t, obj{})
		_, err := v.RefSources("foo")
		require.Error(t, err)
		assert.ErrorIs(t, err, schemaerrors.ErrNotVisited)
		assert.Contains(t, err.Error(), "can't be called before")

		_, err = v.RefSourcesOf("#")
		assert.ErrorIs(t, err, schemaerrors.ErrNotVisited)
	})

	root, _ := testutil.KitchenSink()
	defs := root["$defs"].(map[string]any)

	tests := []struct {
		name   string
		target any
		want   []string
	}{
		{"foo", defs["foo"], []string{".refStr"}},
		{"bar", defs["bar"], []string{".refObj"}},
		{"unrelated", obj{}, []string{}},
	}

	v := mustNew(t, root)
	v.VisitSchema(func(*Info) Action { return Continue })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.RefSources(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("by ref string", func(t *testing.T) {
		got, err := v.RefSourcesOf("#/$defs/bar")
		require.NoError(t, err)
		assert.Equal(t, []string{".refObj"}, got)

		got, err = v.RefSourcesOf("#/$defs/missing")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		got, err := v.RefSources(defs["foo"])
		require.NoError(t, err)
		got[0] = "mutated"

		again, err := v.RefSources(defs["foo"])
		require.NoError(t, err)
		assert.Equal(t, []string{".refStr"}, again)
	})

	t.Run("multiple sources", func(t *testing.T) {
		target := obj{"type": "string"}
		v := mustNew(t, obj{
			"properties": obj{
				"a": obj{"$ref": "#/$defs/t"},
				"b": obj{"items": obj{"$ref": "#/$defs/t"}},
			},
			"$defs": obj{"t": target},
		})
		v.VisitSchema(func(*Info) Action { return Continue })

		got, err := v.RefSources(target)
		require.NoError(t, err)
		assert.Equal(t, []string{".a", ".b[*]"}, got)
	})
}

func TestActions(t *testing.T) {
	root, _ := testutil.KitchenSink()

	t.Run("skip children", func(t *testing.T) {
		v := mustNew(t, root)
		var paths []string
		v.VisitSchema(func(info *Info) Action {
			paths = append(paths, info.DataPath)
			if info.DataPath == ".child" {
				return SkipChildren
			}
			return Continue
		})
		assert.Contains(t, paths, ".child")
		assert.NotContains(t, paths, ".child.str")
		assert.Contains(t, paths, ".num")
	})

	t.Run("stop", func(t *testing.T) {
		v := mustNew(t, root)
		count := 0
		v.VisitSchema(func(*Info) Action {
			count++
			if count == 3 {
				return Stop
			}
			return Continue
		})
		assert.Equal(t, 3, count)

		_, err := v.RefSources(obj{})
		assert.ErrorIs(t, err, schemaerrors.ErrNotVisited, "a stopped walk is not complete")
	})

	t.Run("stop in defs", func(t *testing.T) {
		v := mustNew(t, obj{"$defs": obj{"a": obj{}, "b": obj{}}, "definitions": obj{"c": obj{}}})
		count := 0
		v.VisitDefs(func(*Info) Action {
			count++
			return Stop
		})
		assert.Equal(t, 1, count)
	})
}

func TestAction(t *testing.T) {
	assert.Equal(t, "Continue", Continue.String())
	assert.Equal(t, "SkipChildren", SkipChildren.String())
	assert.Equal(t, "Stop", Stop.String())
	assert.Equal(t, "Action(9)", Action(9).String())
	assert.True(t, Stop.IsValid())
	assert.False(t, Action(-1).IsValid())
}

func TestRecursiveRefsTerminate(t *testing.T) {
	v := mustNew(t, obj{
		"properties": obj{
			"self":     obj{"$ref": "#"},
			"children": obj{"items": obj{"$ref": "#"}},
		},
	})

	var paths []string
	v.VisitSchema(func(info *Info) Action {
		paths = append(paths, info.DataPath)
		return Continue
	})
	assert.Equal(t, []string{".children", ".children[*]", ".self"}, paths)

	got, err := v.RefSources(v.Store().Root())
	require.NoError(t, err)
	assert.Equal(t, []string{".children[*]", ".self"}, got)
}

func TestSelfContainingMapIsNotReentered(t *testing.T) {
	loop := obj{}
	loop["properties"] = obj{"again": loop}
	v := mustNew(t, obj{"properties": obj{"loop": loop}})

	var paths []string
	v.VisitSchema(func(info *Info) Action {
		paths = append(paths, info.DataPath)
		return Continue
	})
	assert.Equal(t, []string{".loop"}, paths)
}

func TestCrossDocumentRefs(t *testing.T) {
	other := obj{"$defs": obj{"name": obj{"type": "string"}}}
	v := mustNew(t, obj{"properties": obj{"n": obj{"$ref": "other.json#/$defs/name"}}},
		WithRetrievalURI("https://example.com/root.json"))
	_, err := v.Store().AddDocument(other, "https://example.com/other.json")
	require.NoError(t, err)

	v.VisitSchema(func(*Info) Action { return Continue })

	got, err := v.RefSources(other["$defs"].(map[string]any)["name"])
	require.NoError(t, err)
	assert.Equal(t, []string{".n"}, got)
}

func TestJSONPathAddressesVisitedNode(t *testing.T) {
	t.Run("kitchen sink", func(t *testing.T) {
		root, _ := testutil.KitchenSink()
		store, err := refstore.New(root)
		require.NoError(t, err)

		mustNew(t, root).VisitSchema(func(info *Info) Action {
			got, ok := store.Dereference(info.JSONPath)
			require.True(t, ok, info.JSONPath)
			assert.True(t, schema.Same(info.Schema, got), info.JSONPath)
			return Continue
		})
	})

	t.Run("keys that look escaped", func(t *testing.T) {
		tilde := obj{"type": "string"}
		slash := obj{"type": "number"}
		root := obj{"properties": obj{"~1": tilde, "/": slash}}

		got := make(map[string]string)
		mustNew(t, root).VisitSchema(func(info *Info) Action {
			switch {
			case schema.Same(info.Schema, tilde):
				got["~1"] = info.JSONPath
			case schema.Same(info.Schema, slash):
				got["/"] = info.JSONPath
			}
			return Continue
		})
		assert.Equal(t, map[string]string{"~1": "#/properties/~01", "/": "#/properties/~1"}, got)
	})
}
