package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWalkRefs(t *testing.T, input walkRefsInput) (*mcp.CallToolResult, walkRefsOutput) {
	t.Helper()
	result, out, err := handleWalkRefs(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	if out == nil {
		return result, walkRefsOutput{}
	}
	wo, ok := out.(walkRefsOutput)
	require.True(t, ok, "expected walkRefsOutput, got %T", out)
	return result, wo
}

func TestWalkRefs_SummaryMode(t *testing.T) {
	_, output := callWalkRefs(t, walkRefsInput{Schema: schemaInput{Content: personSchema}})

	assert.Equal(t, 2, output.Total)
	assert.Equal(t, 2, output.Matched)
	assert.Equal(t, []refSummary{
		{Ref: "#/$defs/name", Count: 2, Resolved: true},
		{Ref: "#/$defs/nope", Count: 1, Resolved: false},
	}, output.Summaries)
}

func TestWalkRefs_FilterByTarget(t *testing.T) {
	_, output := callWalkRefs(t, walkRefsInput{
		Schema: schemaInput{Content: personSchema},
		Target: "*name",
	})
	require.Len(t, output.Summaries, 1)
	assert.Equal(t, "#/$defs/name", output.Summaries[0].Ref)
}

func TestWalkRefs_DetailMode(t *testing.T) {
	_, output := callWalkRefs(t, walkRefsInput{
		Schema: schemaInput{Content: personSchema},
		Detail: true,
	})
	assert.Equal(t, 3, output.Total)
	assert.Equal(t, []refDetail{
		{Ref: "#/$defs/name", DataPath: ".first", JSONPath: "#/properties/first"},
		{Ref: "#/$defs/name", DataPath: ".last", JSONPath: "#/properties/last"},
		{Ref: "#/$defs/nope", DataPath: ".missing", JSONPath: "#/properties/missing"},
	}, output.Details)
}

func TestWalkRefs_Pagination(t *testing.T) {
	_, output := callWalkRefs(t, walkRefsInput{
		Schema: schemaInput{Content: personSchema},
		Offset: 1,
		Limit:  1,
	})
	assert.Equal(t, 1, output.Returned)
	assert.Equal(t, "#/$defs/nope", output.Summaries[0].Ref)
}

func TestWalkRefs_InvalidInput(t *testing.T) {
	result, _ := callWalkRefs(t, walkRefsInput{Schema: schemaInput{Content: personSchema}, Target: "[x"})
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	result, _ = callWalkRefs(t, walkRefsInput{Schema: schemaInput{Content: "- not an object"}})
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
