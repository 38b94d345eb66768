// Package schema provides the keyword lookup primitives shared by every
// walker in schemacodec.
//
// Schemas are plain decoded JSON values. A schema object is a
// map[string]any, a tuple of schemas is a []any, and boolean schemas are
// bools. The lookups in this package report only what is present: a schema
// may carry both array and object keywords, and a missing "type" never
// causes a lookup to guess.
//
// # Node kinds
//
// Each child schema is reported as a [Node] tagged with the [NodeKind] that
// explains how it relates to its parent:
//
//   - ObjectProperty: properties/<key>
//   - ObjectPatternProperties: patternProperties/<pattern>
//   - ObjectAdditionalProperties: additionalProperties
//   - TupleItem: prefixItems/<i>, or items/<i> when items is an array
//   - ArrayItems: the schema for array elements past any tuple prefix
//   - DefProperty: $defs/<key>, falling back to definitions/<key>
//
// A schema object that carries its own $ref is a reference, not a schema,
// and every lookup on it returns nothing.
//
// # Ordering
//
// Unkeyed lookups over object keywords report children in sorted key order,
// so repeated walks over the same document are deterministic.
package schema
