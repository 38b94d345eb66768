/*
Package codec transforms values by walking them alongside their schema.

A [Transformer] names one direction of transformation, such as encoding or
decoding. A [Codec] holds transform functions keyed by a Transformer and a
schema node. Nodes are matched by identity, so a function registered for one
schema map never applies to an equal-looking copy.

# Basic Usage

	encode := codec.NewTransformer("Encode")
	c := codec.MustNew("timestamps", codec.WithTransformers(encode))

	s := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ts": codec.Apply(map[string]any{"type": "string"},
				codec.Bind(c, encode, func(v any) (any, error) {
					return v.(time.Time).Format(time.RFC3339), nil
				})),
		},
	}

	out, err := c.Transform(encode, s, map[string]any{"ts": time.Now()})

# Walking

Transform classifies every schema node as one of four kinds (see [KindOf]):

  - Ref: the node's $ref is resolved against the $id of schemas seen so far
    on the current call and the walk continues at the target.
  - Array: every element is transformed against its tuple item schema, or
    the rest schema when there is no tuple item for its index. Elements
    with no schema are kept as is.
  - Object: every member named in "properties" is transformed against that
    property's schema. Other members are kept (or dropped, see
    [WithUnknownKeys]).
  - Leaf: the function registered for the node is applied. Without one the
    parent codec is asked, and without a parent the value is returned
    unchanged.

# Inheritance

A codec created [WithParent] supports all of the parent's transformers and
falls back to the parent's functions for leaves it has no function for. A
function registered on the child shadows the parent's only for calls made
through the child.

# Errors

Errors wrap sentinels from the schemaerrors package:

  - [schemaerrors.ErrTransformerNotRegistered] for a transformer the codec
    does not support
  - [schemaerrors.ErrReference] for a $ref without a matching $id in scope
  - [schemaerrors.ErrStructuralMismatch] for a value whose shape does not
    fit an object or array schema
  - [schemaerrors.ErrTransform] for an error returned by a transform function
*/
package codec
