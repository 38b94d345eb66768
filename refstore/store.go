package refstore

import (
	"net/url"

	"github.com/erraggy/schemacodec"
	"github.com/erraggy/schemacodec/jsonpointer"
	"github.com/erraggy/schemacodec/schema"
	"github.com/erraggy/schemacodec/schemaerrors"
)

type cacheEntry struct {
	value any
	found bool
}

// Store is a registry of schema documents with memoized dereferencing.
type Store struct {
	root    map[string]any
	baseURI string
	docs    map[string]map[string]any
	cache   map[string]cacheEntry
	logger  schemacodec.Logger

	retrievalURI string
}

// Option configures a Store.
type Option func(*Store)

// WithRetrievalURI sets the URI the root document was retrieved from.
// It is used as the base URI when the root has no $id.
func WithRetrievalURI(uri string) Option {
	return func(s *Store) { s.retrievalURI = uri }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l schemacodec.Logger) Option {
	return func(s *Store) { s.logger = schemacodec.OrNop(l) }
}

// New creates a Store rooted at root, which must be a JSON object.
func New(root any, opts ...Option) (*Store, error) {
	s := &Store{
		docs:   make(map[string]map[string]any),
		cache:  make(map[string]cacheEntry),
		logger: schemacodec.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}

	baseURI, err := s.AddDocument(root, s.retrievalURI)
	if err != nil {
		return nil, err
	}
	s.root = root.(map[string]any)
	s.baseURI = baseURI
	return s, nil
}

// Root returns the root document.
func (s *Store) Root() map[string]any {
	return s.root
}

// BaseURI returns the normalized base URI of the root document, always
// ending in "#". A root with no $id and no retrieval URI has base URI "#".
func (s *Store) BaseURI() string {
	return s.baseURI
}

// AddDocument registers doc under its $id, or retrievalURI when it has no
// string $id, and returns the normalized URI it was stored under.
//
// Registering the same document twice is allowed. Registering a different
// document under a URI already in use is an error, as is a base URI with a
// fragment or a document that is not a JSON object.
func (s *Store) AddDocument(doc any, retrievalURI string) (string, error) {
	obj, ok := doc.(map[string]any)
	if !ok || obj == nil {
		return "", &schemaerrors.ConstructionError{
			Op:      "add document",
			Message: "base schema must be a JSON object",
		}
	}

	base := retrievalURI
	if id, ok := schema.ID(obj); ok {
		base = id
	}

	normalized, hasFragment, err := normalizeBase(base)
	if err != nil {
		return "", &schemaerrors.ConstructionError{Op: "add document", URI: base, Message: "invalid base URI", Cause: err}
	}
	if hasFragment {
		return "", &schemaerrors.ConstructionError{
			Op:      "add document",
			URI:     base,
			Message: "JSON Schema cannot have a base URI with a fragment",
		}
	}

	if existing, ok := s.docs[normalized]; ok && !schema.Same(existing, obj) {
		return "", &schemaerrors.ConstructionError{
			Op:      "add document",
			URI:     normalized + "#",
			Message: "refusing to replace " + normalized + "# with other schema",
		}
	}

	s.docs[normalized] = obj
	s.logger.Debug("refstore: added document", "uri", normalized+"#")
	return normalized + "#", nil
}

// Dereference resolves ref against the base URI and returns the value it
// points to. The empty ref and "#" both return the root document. A ref into
// an unregistered document, a pointer that leaves the document, and a
// plain-name fragment all report false.
func (s *Store) Dereference(ref string) (any, bool) {
	base := s.baseURI[:len(s.baseURI)-1]
	docURI, fragment, err := resolve(base, ref)
	if err != nil {
		s.logger.Debug("refstore: unparseable ref", "ref", ref, "error", err)
		return nil, false
	}
	key := docURI + "#" + fragment

	if hit, ok := s.cache[key]; ok {
		return hit.value, hit.found
	}

	doc, ok := s.docs[docURI]
	if !ok {
		s.logger.Debug("refstore: unknown document", "ref", ref, "document", docURI+"#")
		return nil, false
	}

	if decoded, err := url.PathUnescape(fragment); err == nil {
		fragment = decoded
	}
	var value any
	found := false
	if tokens, ok := jsonpointer.Split(fragment); ok {
		value, found = jsonpointer.Get(doc, tokens...)
	}

	s.cache[key] = cacheEntry{value: value, found: found}
	s.logger.Debug("refstore: dereferenced", "ref", ref, "key", key, "found", found)
	return value, found
}
