package visitor

import (
	"strconv"

	"github.com/erraggy/schemacodec"
	"github.com/erraggy/schemacodec/internal/pathutil"
	"github.com/erraggy/schemacodec/jsonpointer"
	"github.com/erraggy/schemacodec/refstore"
	"github.com/erraggy/schemacodec/schema"
	"github.com/erraggy/schemacodec/schemaerrors"
)

// Info describes one visited subschema.
type Info struct {
	// Schema is the subschema as written; $ref nodes are not replaced by their target.
	Schema any
	// Kind is how the subschema relates to its parent.
	Kind schema.NodeKind
	// DataPath is the path of the data the subschema applies to.
	DataPath string
	// JSONPath is the JSON pointer (as a URI fragment) of the subschema.
	JSONPath string
	// Ref is the subschema's $ref string, or empty.
	Ref string
	// HasChildren reports whether the subschema has object or array children.
	HasChildren bool
}

// VisitFunc is called for every subschema.
type VisitFunc func(info *Info) Action

// Visitor walks a schema document. It is not safe for concurrent use.
type Visitor struct {
	store   *refstore.Store
	paths   schema.PathBuilder
	logger  schemacodec.Logger
	seenAs  map[schema.NodeID][]string
	visited bool

	retrievalURI string
}

// Option configures a Visitor.
type Option func(*Visitor)

// WithPathBuilder replaces schema.DataPath for data path construction.
func WithPathBuilder(b schema.PathBuilder) Option {
	return func(v *Visitor) {
		if b != nil {
			v.paths = b
		}
	}
}

// WithRetrievalURI sets the URI the root document was retrieved from.
func WithRetrievalURI(uri string) Option {
	return func(v *Visitor) { v.retrievalURI = uri }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l schemacodec.Logger) Option {
	return func(v *Visitor) { v.logger = schemacodec.OrNop(l) }
}

// WithStore shares an existing store instead of creating one. The root
// passed to New is ignored in favor of the store's root.
func WithStore(s *refstore.Store) Option {
	return func(v *Visitor) { v.store = s }
}

// New creates a Visitor for root, which must be a JSON object.
func New(root any, opts ...Option) (*Visitor, error) {
	v := &Visitor{
		paths:  schema.DataPath,
		logger: schemacodec.NopLogger{},
		seenAs: make(map[schema.NodeID][]string),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.store == nil {
		store, err := refstore.New(root,
			refstore.WithRetrievalURI(v.retrievalURI),
			refstore.WithLogger(v.logger),
		)
		if err != nil {
			return nil, err
		}
		v.store = store
	}
	return v, nil
}

// Store returns the underlying document store.
func (v *Visitor) Store() *refstore.Store {
	return v.store
}

// walkState carries per-walk state through the recursion.
type walkState struct {
	fn      VisitFunc
	ptr     *pathutil.PointerBuilder
	active  map[schema.NodeID]struct{}
	stopped bool
}

func (v *Visitor) newState(fn VisitFunc) *walkState {
	return &walkState{
		fn:     fn,
		ptr:    pathutil.Get("#"),
		active: make(map[schema.NodeID]struct{}),
	}
}

func (st *walkState) release() {
	pathutil.Put(st.ptr)
	st.ptr = nil
}

// VisitSchema walks the whole root schema and calls fn for every subschema
// except the root itself. It resets the reverse reference index; the index
// is complete once a walk finishes without fn returning Stop.
func (v *Visitor) VisitSchema(fn VisitFunc) {
	v.seenAs = make(map[schema.NodeID][]string)
	v.visited = false

	st := v.newState(fn)
	defer st.release()

	v.visit(st, v.store.Root(), schema.Root, v.paths(schema.Root, "", ""))
	v.visited = !st.stopped
	if st.stopped {
		v.logger.Debug("visitor: walk stopped early")
	}
}

// VisitDefs walks each entry of the root's "$defs" and then "definitions".
// Every definition is reported as an ObjectProperty whose data path is
// built from the definition name, e.g. ".foo" with JSON path "#/$defs/foo".
// References found here are added to the reverse index without resetting it.
func (v *Visitor) VisitDefs(fn VisitFunc) {
	st := v.newState(fn)
	defer st.release()

	root := v.store.Root()
	for _, defKey := range [...]string{"$defs", "definitions"} {
		defs, ok := root[defKey].(map[string]any)
		if !ok {
			continue
		}
		defPath := v.paths(schema.Root, "", defKey)

		st.ptr.Reset("#")
		st.ptr.Push(defKey)
		for _, key := range schema.SortedKeys(defs) {
			st.ptr.Push(key)
			v.visit(st, defs[key], schema.ObjectProperty, v.paths(schema.ObjectProperty, defPath, key))
			st.ptr.Pop()
			if st.stopped {
				return
			}
		}
	}
}

// RefSources returns the data paths whose $ref resolved to target during the
// last complete VisitSchema. target is matched by identity, so it must be
// the node from the document (e.g. obtained through Store().Dereference),
// not an equal copy. It fails with schemaerrors.ErrNotVisited before a
// complete walk.
func (v *Visitor) RefSources(target any) ([]string, error) {
	if !v.visited {
		return nil, schemaerrors.ErrNotVisited
	}
	return append([]string{}, v.seenAs[schema.IdentityOf(target)]...), nil
}

// RefSourcesOf dereferences ref and returns RefSources for its target.
func (v *Visitor) RefSourcesOf(ref string) ([]string, error) {
	if !v.visited {
		return nil, schemaerrors.ErrNotVisited
	}
	target, ok := v.store.Dereference(ref)
	if !ok {
		return []string{}, nil
	}
	return v.RefSources(target)
}

func (v *Visitor) visit(st *walkState, s any, kind schema.NodeKind, dataPath string) {
	if st.stopped {
		return
	}

	obj, isObj := s.(map[string]any)
	if isObj {
		id := schema.IdentityOf(obj)
		if _, cyclic := st.active[id]; cyclic {
			v.logger.Debug("visitor: schema contains itself", "dataPath", dataPath)
			return
		}
		st.active[id] = struct{}{}
		defer delete(st.active, id)
	}

	ref, _ := schema.Ref(s)
	if ref != "" {
		if target, ok := v.store.Dereference(ref); ok && target != nil {
			id := schema.IdentityOf(target)
			v.seenAs[id] = append(v.seenAs[id], dataPath)
		}
	}

	if kind != schema.Root {
		action := st.fn(&Info{
			Schema:      s,
			Kind:        kind,
			DataPath:    dataPath,
			JSONPath:    st.ptr.String(),
			Ref:         ref,
			HasChildren: schema.HasChildren(s),
		})
		switch action {
		case Stop:
			st.stopped = true
			return
		case SkipChildren:
			return
		}
	}

	if !isObj {
		return
	}

	v.visitEntries(st, obj, schema.ObjectProperty, "properties", dataPath)
	v.visitEntries(st, obj, schema.ObjectPatternProperties, "patternProperties", dataPath)

	if additional, ok := obj["additionalProperties"].(map[string]any); ok {
		v.visitChild(st, additional, schema.ObjectAdditionalProperties, dataPath, "additionalProperties")
	}

	if prefix, ok := obj["prefixItems"].([]any); ok {
		v.visitTuple(st, prefix, "prefixItems", dataPath)
	} else if items, ok := obj["items"].([]any); ok {
		v.visitTuple(st, items, "items", dataPath)
	}

	if items, ok := obj["items"].(map[string]any); ok {
		v.visitChild(st, items, schema.ArrayItems, dataPath, "items")
	} else if additional, ok := obj["additionalItems"].(map[string]any); ok {
		v.visitChild(st, additional, schema.ArrayItems, dataPath, "additionalItems")
	}
}

func (v *Visitor) visitEntries(st *walkState, obj map[string]any, kind schema.NodeKind, keyword, dataPath string) {
	entries, ok := obj[keyword].(map[string]any)
	if !ok {
		return
	}
	st.ptr.Push(keyword)
	defer st.ptr.Pop()

	for _, raw := range schema.SortedKeys(entries) {
		st.ptr.Push(raw)
		v.visit(st, entries[raw], kind, v.paths(kind, dataPath, jsonpointer.Unescape(raw)))
		st.ptr.Pop()
		if st.stopped {
			return
		}
	}
}

func (v *Visitor) visitTuple(st *walkState, tuple []any, keyword, dataPath string) {
	st.ptr.Push(keyword)
	defer st.ptr.Pop()

	for i, item := range tuple {
		st.ptr.PushIndex(i)
		v.visit(st, item, schema.TupleItem, v.paths(schema.TupleItem, dataPath, strconv.Itoa(i)))
		st.ptr.Pop()
		if st.stopped {
			return
		}
	}
}

func (v *Visitor) visitChild(st *walkState, child any, kind schema.NodeKind, dataPath, keyword string) {
	st.ptr.Push(keyword)
	v.visit(st, child, kind, v.paths(kind, dataPath, ""))
	st.ptr.Pop()
}
