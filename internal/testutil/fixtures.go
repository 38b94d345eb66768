// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/schemacodec/schema"
)

// Expectation is what a full schema walk should report for one data path.
type Expectation struct {
	Schema      any
	Kind        schema.NodeKind
	JSONPath    string
	Ref         string
	HasChildren bool
}

// KitchenSink builds a schema exercising every child keyword: properties,
// pattern properties (one whose name looks pointer-escaped), additional
// properties, old and new style tuples with and without rest schemas, refs
// into $defs and a property name containing pointer escape sequences.
//
// Leaf schemas are shared between positions the way a hand-written schema
// would reuse a variable, so identity-based lookups see one node. The
// returned expectations are keyed by data path and reference the same
// nodes as the schema.
func KitchenSink() (map[string]any, map[string]Expectation) {
	str := map[string]any{"type": "string"}
	num := map[string]any{"type": "number"}
	boolean := map[string]any{"type": "boolean"}
	object := func(properties map[string]any) map[string]any {
		return map[string]any{"properties": properties}
	}

	child := object(map[string]any{"str": str, "num": num})
	notTuple := map[string]any{"items": str}
	oldTuple := map[string]any{"items": []any{str, num}, "additionalItems": boolean}
	newTuple := map[string]any{"prefixItems": []any{str, num}, "items": boolean}
	oldTupleNoExtra := map[string]any{"items": []any{str}, "additionalItems": false}
	newTupleNoExtra := map[string]any{"prefixItems": []any{str}, "items": false}
	refStr := map[string]any{"$ref": "#/$defs/foo"}
	refObj := map[string]any{"$ref": "#/$defs/bar"}
	defFoo := str
	defBar := object(map[string]any{"str": str, "num": num})

	root := map[string]any{
		"properties": map[string]any{
			"str":             str,
			"num":             num,
			"child":           child,
			"notTuple":        notTuple,
			"oldTuple":        oldTuple,
			"newTuple":        newTuple,
			"oldTupleNoExtra": oldTupleNoExtra,
			"newTupleNoExtra": newTupleNoExtra,
			"refStr":          refStr,
			"refObj":          refObj,
			"foo~1bar~0baz":   str,
		},
		"patternProperties": map[string]any{
			"^_pat.*":  str,
			"foo~1bar": str,
		},
		"additionalProperties": num,
		"$defs": map[string]any{
			"foo": defFoo,
			"bar": defBar,
		},
	}

	prop := schema.ObjectProperty
	expectations := map[string]Expectation{
		".str":                {str, prop, "#/properties/str", "", false},
		".num":                {num, prop, "#/properties/num", "", false},
		"./^_pat.*/":          {str, schema.ObjectPatternProperties, "#/patternProperties/^_pat.*", "", false},
		"./foo/bar/":          {str, schema.ObjectPatternProperties, "#/patternProperties/foo~01bar", "", false},
		".*":                  {num, schema.ObjectAdditionalProperties, "#/additionalProperties", "", false},
		".refStr":             {refStr, prop, "#/properties/refStr", "#/$defs/foo", false},
		".refObj":             {refObj, prop, "#/properties/refObj", "#/$defs/bar", false},
		".foo/bar~baz":        {str, prop, "#/properties/foo~01bar~00baz", "", false},
		".child":              {child, prop, "#/properties/child", "", true},
		".child.str":          {str, prop, "#/properties/child/properties/str", "", false},
		".child.num":          {num, prop, "#/properties/child/properties/num", "", false},
		".notTuple":           {notTuple, prop, "#/properties/notTuple", "", true},
		".notTuple[*]":        {str, schema.ArrayItems, "#/properties/notTuple/items", "", false},
		".oldTuple":           {oldTuple, prop, "#/properties/oldTuple", "", true},
		".oldTuple[0]":        {str, schema.TupleItem, "#/properties/oldTuple/items/0", "", false},
		".oldTuple[1]":        {num, schema.TupleItem, "#/properties/oldTuple/items/1", "", false},
		".oldTuple[*]":        {boolean, schema.ArrayItems, "#/properties/oldTuple/additionalItems", "", false},
		".oldTupleNoExtra":    {oldTupleNoExtra, prop, "#/properties/oldTupleNoExtra", "", true},
		".oldTupleNoExtra[0]": {str, schema.TupleItem, "#/properties/oldTupleNoExtra/items/0", "", false},
		".newTuple":           {newTuple, prop, "#/properties/newTuple", "", true},
		".newTuple[0]":        {str, schema.TupleItem, "#/properties/newTuple/prefixItems/0", "", false},
		".newTuple[1]":        {num, schema.TupleItem, "#/properties/newTuple/prefixItems/1", "", false},
		".newTuple[*]":        {boolean, schema.ArrayItems, "#/properties/newTuple/items", "", false},
		".newTupleNoExtra":    {newTupleNoExtra, prop, "#/properties/newTupleNoExtra", "", true},
		".newTupleNoExtra[0]": {str, schema.TupleItem, "#/properties/newTupleNoExtra/prefixItems/0", "", false},
	}
	return root, expectations
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(tmpFile, data, 0o600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "schema.json")
	if err := os.WriteFile(tmpFile, data, 0o600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
