package reader

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemacodec"
	"github.com/erraggy/schemacodec/refstore"
	"github.com/erraggy/schemacodec/schema"
	"github.com/erraggy/schemacodec/schemaerrors"
)

type obj = map[string]any
type arr = []any

func mustNew(t *testing.T, root any, opts ...Option) *Reader {
	t.Helper()
	r, err := New(root, opts...)
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	t.Run("requires an object", func(t *testing.T) {
		_, err := New(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, schemaerrors.ErrConstruction)
	})

	t.Run("base URI from retrieval URI", func(t *testing.T) {
		r := mustNew(t, obj{}, WithRetrievalURI("https://example.com/"))
		assert.Equal(t, "https://example.com/#", r.BaseURI())
	})

	t.Run("shares a store", func(t *testing.T) {
		root := obj{"hi": "there"}
		store, err := refstore.New(root)
		require.NoError(t, err)

		r := mustNew(t, nil, WithStore(store))
		assert.Same(t, store, r.Store())
		v, ok := r.Dereference("#/hi")
		require.True(t, ok)
		assert.Equal(t, "there", v)
	})

	t.Run("alternate lookup", func(t *testing.T) {
		mock := fixedLookup{node: schema.Node{Schema: "mocked", Kind: schema.ObjectAdditionalProperties}}
		r := mustNew(t, obj{}, WithLookup(mock))

		var got schema.Node
		depth := r.Try(schema.ObjectAdditionalProperties, "", func(n schema.Node) { got = n })
		assert.Equal(t, 1, depth)
		assert.Equal(t, "mocked", got.Schema)
	})

	t.Run("nil lookup keeps default", func(t *testing.T) {
		r := mustNew(t, obj{"items": "x"}, WithLookup(nil))
		assert.Equal(t, 1, r.Try(schema.ArrayItems, "", func(schema.Node) {}))
	})
}

type fixedLookup struct {
	schema.Draft
	node schema.Node
}

func (f fixedLookup) LookupAll(any, schema.NodeKind) []schema.Node {
	return []schema.Node{f.node}
}

func TestAddDocumentAndDereference(t *testing.T) {
	r := mustNew(t, obj{"hi": "there"})

	_, ok := r.Dereference("foo#/hi")
	assert.False(t, ok)

	_, err := r.AddDocument(obj{"hi": "other"}, "foo")
	require.NoError(t, err)

	v, ok := r.Dereference("foo#/hi")
	require.True(t, ok)
	assert.Equal(t, "other", v)

	v, ok = r.Dereference("")
	require.True(t, ok)
	assert.Equal(t, r.Root(), v)
}

func TestTryNested(t *testing.T) {
	tests := []struct {
		name   string
		schema obj
		kind1  schema.NodeKind
		key1   string
		kind2  schema.NodeKind
		want   any
		called bool
	}{
		{"property then items", obj{"properties": obj{"hi": obj{"items": arr{"foo"}}}}, schema.ObjectProperty, "hi", schema.ArrayItems, nil, false},
		{"property then rest items", obj{"properties": obj{"hi": obj{"items": "foo"}}}, schema.ObjectProperty, "hi", schema.ArrayItems, "foo", true},
		{"pattern then additional items", obj{"patternProperties": obj{"hi": obj{"items": arr{}, "additionalItems": "foo"}}}, schema.ObjectPatternProperties, "hi", schema.ArrayItems, "foo", true},
		{"def then additional properties", obj{"$defs": obj{"hi": obj{"additionalProperties": "foo"}}}, schema.DefProperty, "hi", schema.ObjectAdditionalProperties, "foo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustNew(t, tt.schema)
			called := false
			outer := r.Try(tt.kind1, tt.key1, func(schema.Node) {
				r.Try(tt.kind2, "", func(n schema.Node) {
					called = true
					assert.Equal(t, tt.want, n.Schema)
				})
			})
			assert.Equal(t, 1, outer)
			assert.Equal(t, tt.called, called)
		})
	}

	t.Run("missing returns zero", func(t *testing.T) {
		r := mustNew(t, obj{})
		called := false
		assert.Equal(t, 0, r.Try(schema.DefProperty, "hi", func(schema.Node) { called = true }))
		assert.False(t, called)
	})

	t.Run("root kind never matches", func(t *testing.T) {
		r := mustNew(t, obj{})
		assert.Equal(t, 0, r.Try(schema.Root, "", func(schema.Node) {}))
	})
}

func TestEach(t *testing.T) {
	tests := []struct {
		name   string
		schema obj
		kind   schema.NodeKind
		want   []schema.Node
	}{
		{
			name:   "properties",
			schema: obj{"properties": obj{"hi": "one", "there": "two"}},
			kind:   schema.ObjectProperty,
			want: []schema.Node{
				{Schema: "one", Kind: schema.ObjectProperty, Keyword: "properties", Key: "hi"},
				{Schema: "two", Kind: schema.ObjectProperty, Keyword: "properties", Key: "there"},
			},
		},
		{
			name:   "tuple",
			schema: obj{"items": arr{"one", "two"}},
			kind:   schema.TupleItem,
			want: []schema.Node{
				{Schema: "one", Kind: schema.TupleItem, Keyword: "items", Key: "0"},
				{Schema: "two", Kind: schema.TupleItem, Keyword: "items", Key: "1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustNew(t, tt.schema)
			var got []schema.Node
			r.Each(tt.kind, func(n schema.Node) {
				got = append(got, n)
				assert.Equal(t, 1, r.Depth())
			})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 0, r.Depth())
		})
	}
}

func TestDepth(t *testing.T) {
	r := mustNew(t, obj{"properties": obj{"hi": obj{"items": "there"}}})
	assert.Equal(t, 0, r.Depth())

	r.Try(schema.ObjectProperty, "hi", func(schema.Node) {
		assert.Equal(t, 1, r.Depth())
		r.Try(schema.ArrayItems, "", func(schema.Node) {
			assert.Equal(t, 2, r.Depth())
			path := r.Path()
			require.Len(t, path, 3)
			assert.Equal(t, schema.Root, path[0].Kind)
			assert.Equal(t, ".hi[*]", schema.PathOf(path, nil))
		})
	})
	assert.Equal(t, 0, r.Depth())
}

func TestDepthRestoredAfterPanic(t *testing.T) {
	r := mustNew(t, obj{"properties": obj{"hi": "there"}})
	assert.Panics(t, func() {
		r.Try(schema.ObjectProperty, "hi", func(schema.Node) { panic("boom") })
	})
	assert.Equal(t, 0, r.Depth())
}

func TestReaderLogsWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := schemacodec.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	r := mustNew(t, obj{"properties": obj{"a": obj{"$ref": "#/missing"}}}, WithLogger(logger))
	r.Traverse(obj{"a": 1.0}, func(any, any, []schema.Node) {})

	assert.Contains(t, buf.String(), "unresolved ref")
}
