package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWalkSchema(t *testing.T, input walkSchemaInput) (*mcp.CallToolResult, walkSchemaOutput) {
	t.Helper()
	result, out, err := handleWalkSchema(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	if out == nil {
		return result, walkSchemaOutput{}
	}
	wo, ok := out.(walkSchemaOutput)
	require.True(t, ok, "expected walkSchemaOutput, got %T", out)
	return result, wo
}

func dataPaths(nodes []nodeSummary) []string {
	paths := make([]string, 0, len(nodes))
	for _, n := range nodes {
		paths = append(paths, n.DataPath)
	}
	return paths
}

func TestWalkSchema_All(t *testing.T) {
	result, output := callWalkSchema(t, walkSchemaInput{Schema: schemaInput{Content: personSchema}})
	require.Nil(t, result)

	assert.Equal(t, 11, output.Total)
	assert.Equal(t, 11, output.Matched)
	assert.Equal(t, []string{
		".age", ".first", ".last", ".missing",
		".pair", ".pair[0]", ".pair[1]",
		".tags", ".tags[*]",
		"./^x-/", ".*",
	}, dataPaths(output.Nodes))

	first := output.Nodes[1]
	assert.Equal(t, "#/properties/first", first.JSONPath)
	assert.Equal(t, "ObjectProperty", first.Kind)
	assert.Equal(t, "#/$defs/name", first.Ref)
	assert.Nil(t, first.Schema, "schemas are only returned in detail mode")

	assert.True(t, output.Nodes[4].HasChildren)
	assert.Equal(t, "#/properties/pair/prefixItems/1", output.Nodes[6].JSONPath)
}

func TestWalkSchema_Filters(t *testing.T) {
	tests := []struct {
		name  string
		input walkSchemaInput
		want  []string
	}{
		{"kind", walkSchemaInput{Kind: "TupleItem"}, []string{".pair[0]", ".pair[1]"}},
		{"path glob", walkSchemaInput{Path: ".tags*"}, []string{".tags", ".tags[*]"}},
		{"ref only", walkSchemaInput{RefOnly: true}, []string{".first", ".last", ".missing"}},
		{"defs", walkSchemaInput{Defs: true}, []string{".name"}},
		{"pagination", walkSchemaInput{Offset: 2, Limit: 2}, []string{".last", ".missing"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.Schema = schemaInput{Content: personSchema}
			result, output := callWalkSchema(t, tt.input)
			require.Nil(t, result)
			assert.Equal(t, tt.want, dataPaths(output.Nodes))
		})
	}
}

func TestWalkSchema_Detail(t *testing.T) {
	_, output := callWalkSchema(t, walkSchemaInput{
		Schema: schemaInput{Content: personSchema},
		Path:   ".age",
		Detail: true,
	})
	require.Len(t, output.Nodes, 1)
	assert.Equal(t, map[string]any{"type": "integer"}, output.Nodes[0].Schema)
}

func TestWalkSchema_GroupByKind(t *testing.T) {
	_, output := callWalkSchema(t, walkSchemaInput{
		Schema:  schemaInput{Content: personSchema},
		GroupBy: "kind",
	})
	assert.Empty(t, output.Nodes)
	assert.Equal(t, []groupCount{
		{"ObjectProperty", 6},
		{"TupleItem", 2},
		{"ArrayItems", 1},
		{"ObjectAdditionalProperties", 1},
		{"ObjectPatternProperties", 1},
	}, output.Groups)
}

func TestWalkSchema_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input walkSchemaInput
		want  string
	}{
		{"bad kind", walkSchemaInput{Schema: schemaInput{Content: personSchema}, Kind: "Nope"}, "invalid kind"},
		{"bad glob", walkSchemaInput{Schema: schemaInput{Content: personSchema}, Path: "[x"}, "invalid glob"},
		{"group and detail", walkSchemaInput{Schema: schemaInput{Content: personSchema}, GroupBy: "kind", Detail: true}, "cannot use both"},
		{"no schema", walkSchemaInput{}, "exactly one of"},
		{"invalid schema", walkSchemaInput{Schema: schemaInput{Content: "{"}}, "parse error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := callWalkSchema(t, tt.input)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, tt.want)
		})
	}
}
