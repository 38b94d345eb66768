package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemacodec/loader"
	"github.com/erraggy/schemacodec/reader"
	"github.com/erraggy/schemacodec/schema"
)

type traverseInput struct {
	Schema schemaInput `json:"schema"           jsonschema:"The JSON Schema document describing the data"`
	Data   string      `json:"data"             jsonschema:"The data value as inline JSON or YAML"`
	Detail bool        `json:"detail,omitempty" jsonschema:"Include the applicable subschema for each leaf"`
	Limit  int         `json:"limit,omitempty"  jsonschema:"Maximum number of results to return (default 100; 25 in detail mode)"`
	Offset int         `json:"offset,omitempty" jsonschema:"Skip the first N results (for pagination)"`
}

type leafMatch struct {
	SchemaPath    string `json:"schema_path"`
	SchemaPointer string `json:"schema_pointer"`
	Value         any    `json:"value"`
	Schema        any    `json:"schema,omitempty"`
}

type traverseOutput struct {
	Total    int         `json:"total"`
	Returned int         `json:"returned"`
	Leaves   []leafMatch `json:"leaves,omitempty"`
}

func handleTraverse(_ context.Context, _ *mcp.CallToolRequest, input traverseInput) (*mcp.CallToolResult, any, error) {
	if input.Data == "" {
		return errResult(fmt.Errorf("data is required")), nil, nil
	}
	if int64(len(input.Data)) > cfg.MaxInlineSize {
		return errResult(fmt.Errorf("data size %d bytes exceeds maximum %d bytes", len(input.Data), cfg.MaxInlineSize)), nil, nil
	}

	doc, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}
	value, err := loader.DecodeValue([]byte(input.Data), loader.WithMaxSize(cfg.MaxInlineSize))
	if err != nil {
		return errResult(err), nil, nil
	}
	r, err := reader.New(doc.Root, reader.WithRetrievalURI(doc.URI()))
	if err != nil {
		return errResult(err), nil, nil
	}

	var leaves []leafMatch
	r.Traverse(value, func(s any, v any, path []schema.Node) {
		pointer := "#"
		for _, n := range path {
			pointer = n.JSONPath(pointer)
		}
		leaf := leafMatch{
			SchemaPath:    schema.PathOf(path, nil),
			SchemaPointer: pointer,
			Value:         v,
		}
		if input.Detail {
			leaf.Schema = s
		}
		leaves = append(leaves, leaf)
	})

	limit := input.Limit
	if input.Detail {
		limit = detailLimit(limit)
	}
	paged := paginate(leaves, input.Offset, limit)
	return nil, traverseOutput{
		Total:    len(leaves),
		Returned: len(paged),
		Leaves:   paged,
	}, nil
}
