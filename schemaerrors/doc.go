// Package schemaerrors provides structured error types for schemacodec.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), so callers can tell a malformed document apart from a missing
// $ref target or a value whose shape disagrees with its schema.
//
// # Error Categories
//
//   - ConstructionError: invalid documents or base URIs handed to a reader,
//     and conflicting document registrations
//   - TransformerError: a transformer used with a codec it was not declared on
//   - ReferenceError: a $ref whose target cannot be found
//   - StructuralError: a value that is not an object or array where the schema
//     requires one
//   - TransformError: a failure returned by a registered transformation function
//   - ParseError: JSON/YAML decoding failures
//   - ResourceLimitError: inputs exceeding configured limits
//   - ConfigError: invalid options or missing inputs
//
// # Usage with errors.Is
//
//	out, err := c.Transform(encode, root, value)
//	if errors.Is(err, schemaerrors.ErrStructuralMismatch) {
//	    var se *schemaerrors.StructuralError
//	    errors.As(err, &se)
//	    log.Printf("bad value at %s", se.Path)
//	}
package schemaerrors
