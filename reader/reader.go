// Package reader provides a cursor over a schema tree.
//
// A Reader keeps a stack of [schema.Node] values describing where it is in
// the schema. [Reader.Try] and [Reader.Each] push a child for the duration of
// a callback, so nested calls walk deeper and [Reader.Depth] reports how far
// the cursor is from the root.
//
// [Reader.Traverse] walks a value alongside its schema and reports every
// leaf value together with the schema that applies to it.
//
// A Reader is not safe for concurrent use.
package reader

import (
	"regexp"

	"github.com/erraggy/schemacodec"
	"github.com/erraggy/schemacodec/refstore"
	"github.com/erraggy/schemacodec/schema"
)

// Reader is a schema cursor backed by a refstore.Store.
type Reader struct {
	store    *refstore.Store
	lookup   schema.Lookuper
	logger   schemacodec.Logger
	path     []schema.Node
	patterns map[string]*regexp.Regexp

	retrievalURI string
}

// Option configures a Reader.
type Option func(*Reader)

// WithRetrievalURI sets the URI the root document was retrieved from.
func WithRetrievalURI(uri string) Option {
	return func(r *Reader) { r.retrievalURI = uri }
}

// WithLookup replaces the default lookup dialect.
func WithLookup(l schema.Lookuper) Option {
	return func(r *Reader) {
		if l != nil {
			r.lookup = l
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l schemacodec.Logger) Option {
	return func(r *Reader) { r.logger = schemacodec.OrNop(l) }
}

// WithStore shares an existing store instead of creating one. The root
// passed to New is ignored in favor of the store's root.
func WithStore(s *refstore.Store) Option {
	return func(r *Reader) { r.store = s }
}

// New creates a Reader for root, which must be a JSON object.
func New(root any, opts ...Option) (*Reader, error) {
	r := &Reader{
		lookup:   schema.Default,
		logger:   schemacodec.NopLogger{},
		patterns: make(map[string]*regexp.Regexp),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.store == nil {
		store, err := refstore.New(root,
			refstore.WithRetrievalURI(r.retrievalURI),
			refstore.WithLogger(r.logger),
		)
		if err != nil {
			return nil, err
		}
		r.store = store
	}
	r.path = []schema.Node{schema.RootNode(r.store.Root())}
	return r, nil
}

// Root returns the root document.
func (r *Reader) Root() map[string]any {
	return r.store.Root()
}

// BaseURI returns the normalized base URI of the root document.
func (r *Reader) BaseURI() string {
	return r.store.BaseURI()
}

// Store returns the underlying document store.
func (r *Reader) Store() *refstore.Store {
	return r.store
}

// AddDocument registers another document for cross-document references.
func (r *Reader) AddDocument(doc any, retrievalURI string) (string, error) {
	return r.store.AddDocument(doc, retrievalURI)
}

// Dereference resolves ref against the root's base URI.
func (r *Reader) Dereference(ref string) (any, bool) {
	return r.store.Dereference(ref)
}

// Depth returns the number of nodes pushed below the root. It is 0 outside
// of any Try or Each callback.
func (r *Reader) Depth() int {
	return len(r.path) - 1
}

// Path returns a copy of the current node path, root first.
func (r *Reader) Path() []schema.Node {
	return append([]schema.Node(nil), r.path...)
}

func (r *Reader) current() any {
	return r.path[len(r.path)-1].Schema
}

// Try looks up the child of the current schema of the given kind and key.
// If found, the child is pushed for the duration of fn and Try returns the
// depth it was visited at. Otherwise fn is not called and Try returns 0.
// key is ignored for kinds that carry no key.
func (r *Reader) Try(kind schema.NodeKind, key string, fn func(schema.Node)) int {
	return r.tryAt(r.current(), kind, key, fn)
}

// Each calls fn for every child of the current schema of the given kind,
// pushing each one for the duration of its callback.
func (r *Reader) Each(kind schema.NodeKind, fn func(schema.Node)) {
	r.eachAt(r.current(), kind, fn)
}

func (r *Reader) tryAt(s any, kind schema.NodeKind, key string, fn func(schema.Node)) int {
	var nodes []schema.Node
	switch kind {
	case schema.ObjectAdditionalProperties, schema.ArrayItems:
		nodes = r.lookup.LookupAll(s, kind)
	case schema.ObjectProperty, schema.ObjectPatternProperties, schema.TupleItem, schema.DefProperty:
		nodes = r.lookup.Lookup(s, kind, key)
	}
	if len(nodes) == 0 {
		return 0
	}
	return r.visit(nodes[0], fn)
}

func (r *Reader) eachAt(s any, kind schema.NodeKind, fn func(schema.Node)) {
	for _, n := range r.lookup.LookupAll(s, kind) {
		r.visit(n, fn)
	}
}

func (r *Reader) visit(n schema.Node, fn func(schema.Node)) int {
	r.path = append(r.path, n)
	depth := len(r.path) - 1
	defer func() { r.path = r.path[:len(r.path)-1] }()
	fn(n)
	return depth
}
