// Package loader reads schema documents from JSON or YAML.
//
// The core packages work on plain decoded values (map[string]any, []any,
// strings, numbers, booleans and nil) and never touch the file system.
// loader produces those values from files, byte slices or readers:
//
//	doc, err := loader.Load("schema.yaml")
//	if err != nil {
//		return err
//	}
//	v, err := visitor.New(doc.Root, visitor.WithRetrievalURI(doc.URI()))
//
// The format is taken from the file extension, or detected from the content
// when there is none: input starting with '{' or '[' is JSON, anything else
// YAML. YAML mappings with non-string keys are converted so every object in
// the result is a map[string]any.
//
// Input larger than [DefaultMaxSize] is rejected with a
// [schemaerrors.ResourceLimitError]; see [WithMaxSize].
package loader
