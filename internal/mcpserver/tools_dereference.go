package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemacodec/visitor"
)

type dereferenceInput struct {
	Schema schemaInput `json:"schema" jsonschema:"The JSON Schema document to resolve against"`
	Ref    string      `json:"ref"    jsonschema:"The reference to resolve, e.g. #/$defs/Address"`
}

type dereferenceOutput struct {
	Ref          string   `json:"ref"`
	BaseURI      string   `json:"base_uri"`
	Schema       any      `json:"schema"`
	ReferencedBy []string `json:"referenced_by"`
}

func handleDereference(_ context.Context, _ *mcp.CallToolRequest, input dereferenceInput) (*mcp.CallToolResult, any, error) {
	if input.Ref == "" {
		return errResult(fmt.Errorf("ref is required")), nil, nil
	}

	doc, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}
	v, err := visitor.New(doc.Root, visitor.WithRetrievalURI(doc.URI()))
	if err != nil {
		return errResult(err), nil, nil
	}

	target, ok := v.Store().Dereference(input.Ref)
	if !ok {
		return errResult(fmt.Errorf("reference %q does not resolve", input.Ref)), nil, nil
	}

	v.VisitSchema(func(*visitor.Info) visitor.Action { return visitor.Continue })
	sources, err := v.RefSources(target)
	if err != nil {
		return errResult(err), nil, nil
	}

	return nil, dereferenceOutput{
		Ref:          input.Ref,
		BaseURI:      v.Store().BaseURI(),
		Schema:       target,
		ReferencedBy: sources,
	}, nil
}
