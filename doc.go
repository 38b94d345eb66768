// Package schemacodec provides tools for walking JSON Schema documents and
// transforming values according to the schemas that describe them.
//
// # Overview
//
// The library is split into small packages that build on each other:
//
//   - jsonpointer: RFC 6901 escaping, unescaping and fragment splitting
//   - schema: keyword lookup primitives (properties, pattern properties,
//     additional properties, tuple items, array items and definitions)
//   - refstore: document registry and memoized $ref dereferencing
//   - reader: a cursor over a schema tree and a value-aware traversal
//   - visitor: a full schema walk reporting every subschema with its data
//     path, JSON path, $ref and whether it has children, plus a reverse
//     index from referenced schemas back to the paths that reference them
//   - codec: named transformers and codecs that rewrite values node by node
//     according to a schema
//   - loader: decoding schema documents from JSON or YAML
//
// Schemas are ordinary decoded JSON: map[string]any, []any and scalars. Any
// document produced by encoding/json, github.com/goccy/go-json or
// go.yaml.in/yaml/v4 can be walked without conversion.
//
// # Quick Start
//
// Walk a schema and print every data path:
//
//	v, err := visitor.New(root)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v.VisitSchema(func(info *visitor.Info) visitor.Action {
//	    fmt.Println(info.DataPath, info.JSONPath)
//	    return visitor.Continue
//	})
//
// Transform values with a codec:
//
//	encode := codec.NewTransformer("Encode")
//	c := codec.MustNew("Dates", codec.WithTransformers(encode))
//	c.AddTransformation(encode, dateSchema, formatDate)
//	out, err := c.Transform(encode, root, value)
//
// # Command line and MCP
//
// The schemacodec command walks schemas from the terminal and can run as a
// Model Context Protocol server over stdio. See cmd/schemacodec.
package schemacodec
