// Package refstore registers schema documents by base URI and resolves $ref
// strings against them.
//
// A Store is created from a root document. The root's base URI is its $id,
// or the retrieval URI given with [WithRetrievalURI], or empty. Further
// documents can be registered with [Store.AddDocument] so that cross-document
// references such as "other.json#/$defs/foo" resolve.
//
// References are resolved against the store's base URI (RFC 3986),
// normalized, and then followed as a JSON pointer within the target
// document. Results are memoized per normalized reference, including misses.
// The cache is never invalidated: a document mutated after a reference was
// resolved keeps returning the value that was current at first resolution.
//
// A Store is not safe for concurrent use.
package refstore
