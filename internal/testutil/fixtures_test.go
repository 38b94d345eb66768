package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/schemacodec/schema"
)

func TestKitchenSink(t *testing.T) {
	root, exps := KitchenSink()

	t.Run("expectations reference schema nodes", func(t *testing.T) {
		props := root["properties"].(map[string]any)
		assert.True(t, schema.Same(props["child"], exps[".child"].Schema))
		assert.True(t, schema.Same(props["str"], exps[".child.str"].Schema))
		assert.True(t, schema.Same(root["$defs"].(map[string]any)["foo"], props["str"]))
	})

	t.Run("fresh on every call", func(t *testing.T) {
		again, _ := KitchenSink()
		assert.Equal(t, root, again)
		assert.False(t, schema.Same(root, again))
	})

	t.Run("covers every walked kind", func(t *testing.T) {
		kinds := make(map[schema.NodeKind]bool)
		for _, e := range exps {
			kinds[e.Kind] = true
		}
		for _, k := range []schema.NodeKind{
			schema.ObjectProperty, schema.ObjectPatternProperties,
			schema.ObjectAdditionalProperties, schema.TupleItem, schema.ArrayItems,
		} {
			assert.True(t, kinds[k], "missing %s", k)
		}
	})

	t.Run("json paths resolve", func(t *testing.T) {
		for path, e := range exps {
			assert.True(t, strings.HasPrefix(e.JSONPath, "#/"), path)
		}
	})
}

func TestWriteTempFiles(t *testing.T) {
	root, _ := KitchenSink()

	t.Run("json", func(t *testing.T) {
		path := WriteTempJSON(t, root)
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Contains(t, decoded, "properties")
		assert.Contains(t, decoded, "$defs")
	})

	t.Run("yaml", func(t *testing.T) {
		path := WriteTempYAML(t, root)
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Contains(t, decoded, "patternProperties")
	})
}
