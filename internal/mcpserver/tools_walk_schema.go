package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemacodec/loader"
	"github.com/erraggy/schemacodec/schema"
	"github.com/erraggy/schemacodec/visitor"
)

type walkSchemaInput struct {
	Schema  schemaInput `json:"schema"             jsonschema:"The JSON Schema document to walk"`
	Defs    bool        `json:"defs,omitempty"     jsonschema:"Walk $defs and definitions instead of the root schema"`
	Kind    string      `json:"kind,omitempty"     jsonschema:"Filter by node kind: ObjectProperty, ObjectPatternProperties, ObjectAdditionalProperties, TupleItem, ArrayItems"`
	Path    string      `json:"path,omitempty"     jsonschema:"Filter by data path (supports * and ? glob, e.g. *.name or .items[*]*)"`
	RefOnly bool        `json:"ref_only,omitempty" jsonschema:"Only return nodes carrying a $ref"`
	Detail  bool        `json:"detail,omitempty"   jsonschema:"Include each subschema in the results"`
	GroupBy string      `json:"group_by,omitempty" jsonschema:"Group results and return counts instead of individual items. Values: kind"`
	Limit   int         `json:"limit,omitempty"    jsonschema:"Maximum number of results to return (default 100; 25 in detail mode)"`
	Offset  int         `json:"offset,omitempty"   jsonschema:"Skip the first N results (for pagination)"`
}

type nodeSummary struct {
	DataPath    string `json:"data_path"`
	JSONPath    string `json:"json_path"`
	Kind        string `json:"kind"`
	Ref         string `json:"ref,omitempty"`
	HasChildren bool   `json:"has_children,omitempty"`
	Schema      any    `json:"schema,omitempty"`
}

type walkSchemaOutput struct {
	Total    int           `json:"total"`
	Matched  int           `json:"matched"`
	Returned int           `json:"returned"`
	Nodes    []nodeSummary `json:"nodes,omitempty"`
	Groups   []groupCount  `json:"groups,omitempty"`
}

func handleWalkSchema(_ context.Context, _ *mcp.CallToolRequest, input walkSchemaInput) (*mcp.CallToolResult, any, error) {
	var kind schema.NodeKind
	if input.Kind != "" {
		k, ok := schema.ParseNodeKind(input.Kind)
		if !ok {
			return errResult(fmt.Errorf("invalid kind %q", input.Kind)), nil, nil
		}
		kind = k
	}
	if err := validateGlobPattern(input.Path); err != nil {
		return errResult(err), nil, nil
	}
	if err := validateGroupBy(input.GroupBy, input.Detail, []string{"kind"}); err != nil {
		return errResult(err), nil, nil
	}

	doc, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}
	nodes, err := collectNodes(doc, input.Defs)
	if err != nil {
		return errResult(err), nil, nil
	}

	var filtered []visitor.Info
	for _, n := range nodes {
		if input.Kind != "" && n.Kind != kind {
			continue
		}
		if input.Path != "" && !matchGlob(n.DataPath, input.Path) {
			continue
		}
		if input.RefOnly && n.Ref == "" {
			continue
		}
		filtered = append(filtered, n)
	}

	if input.GroupBy != "" {
		groups := groupAndSort(filtered, func(n visitor.Info) string { return n.Kind.String() })
		paged := paginate(groups, input.Offset, input.Limit)
		return nil, walkSchemaOutput{
			Total:    len(nodes),
			Matched:  len(filtered),
			Returned: len(paged),
			Groups:   paged,
		}, nil
	}

	limit := input.Limit
	if input.Detail {
		limit = detailLimit(limit)
	}
	paged := paginate(filtered, input.Offset, limit)
	output := walkSchemaOutput{
		Total:    len(nodes),
		Matched:  len(filtered),
		Returned: len(paged),
		Nodes:    makeSlice[nodeSummary](len(paged)),
	}
	for _, n := range paged {
		summary := nodeSummary{
			DataPath:    n.DataPath,
			JSONPath:    n.JSONPath,
			Kind:        n.Kind.String(),
			Ref:         n.Ref,
			HasChildren: n.HasChildren,
		}
		if input.Detail {
			summary.Schema = n.Schema
		}
		output.Nodes = append(output.Nodes, summary)
	}
	return nil, output, nil
}

// collectNodes walks the document's root schema, or its definitions when
// defs is set, and returns every reported node in walk order.
func collectNodes(doc *loader.Document, defs bool) ([]visitor.Info, error) {
	v, err := visitor.New(doc.Root, visitor.WithRetrievalURI(doc.URI()))
	if err != nil {
		return nil, err
	}
	var nodes []visitor.Info
	collect := func(info *visitor.Info) visitor.Action {
		nodes = append(nodes, *info)
		return visitor.Continue
	}
	if defs {
		v.VisitDefs(collect)
	} else {
		v.VisitSchema(collect)
	}
	return nodes, nil
}
