// Package visitor walks every subschema of a JSON Schema document.
//
// Unlike reader.Traverse, which follows a value, the visitor reports the
// schema itself: each subschema reached through properties,
// patternProperties, additionalProperties, tuple items or rest items is
// passed to the callback with its data path, its JSON pointer, its $ref (if
// any) and whether it has children of its own.
//
// # Data paths
//
// Data paths describe where in a value a subschema applies. The default
// builder, schema.DataPath, renders them like this:
//
//	.name            properties/name
//	./^x-/           patternProperties/^x-
//	.*               additionalProperties
//	[0]              prefixItems/0 (or items/0 for old-style tuples)
//	[*]              items (or additionalItems after an old-style tuple)
//
// Property and pattern keys are read as JSON pointer escaped, so a property
// named "a~1b" appears in data paths as ".a/b". Use [WithPathBuilder] to
// render paths differently.
//
// # Reverse references
//
// While walking, the visitor records the data path of every node whose $ref
// resolves. After [Visitor.VisitSchema] completes, [Visitor.RefSources]
// returns the data paths that reference a given schema node.
//
// # Flow control
//
// Callbacks return an [Action]. SkipChildren stops descent below the current
// node and Stop ends the walk.
//
// $ref targets are never followed, so recursive schemas terminate. A schema
// object that contains itself through Go pointers (impossible for decoded
// JSON) is detected and not re-entered.
package visitor
