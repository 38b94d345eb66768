package mcpserver

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemacodec/visitor"
)

type walkRefsInput struct {
	Schema schemaInput `json:"schema"           jsonschema:"The JSON Schema document to walk"`
	Target string      `json:"target,omitempty" jsonschema:"Filter by ref string (supports * and ? glob, e.g. #/$defs/*)"`
	Detail bool        `json:"detail,omitempty" jsonschema:"Return individual source locations instead of aggregated counts"`
	Limit  int         `json:"limit,omitempty"  jsonschema:"Maximum number of results to return (default 100; 25 in detail mode)"`
	Offset int         `json:"offset,omitempty" jsonschema:"Skip the first N results (for pagination)"`
}

type refSummary struct {
	Ref      string `json:"ref"`
	Count    int    `json:"count"`
	Resolved bool   `json:"resolved"`
}

type refDetail struct {
	Ref      string `json:"ref"`
	DataPath string `json:"data_path"`
	JSONPath string `json:"json_path"`
}

// walkRefsOutput holds results from walk_refs. In summary mode, Total and
// Matched count unique ref strings. In detail mode, they count individual
// ref occurrences.
type walkRefsOutput struct {
	Total     int          `json:"total"`
	Matched   int          `json:"matched"`
	Returned  int          `json:"returned"`
	Summaries []refSummary `json:"refs,omitempty"`
	Details   []refDetail  `json:"details,omitempty"`
}

func handleWalkRefs(_ context.Context, _ *mcp.CallToolRequest, input walkRefsInput) (*mcp.CallToolResult, any, error) {
	if err := validateGlobPattern(input.Target); err != nil {
		return errResult(err), nil, nil
	}

	doc, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}
	v, err := visitor.New(doc.Root, visitor.WithRetrievalURI(doc.URI()))
	if err != nil {
		return errResult(err), nil, nil
	}

	var all []visitor.Info
	v.VisitSchema(func(info *visitor.Info) visitor.Action {
		if info.Ref != "" {
			all = append(all, *info)
		}
		return visitor.Continue
	})

	var filtered []visitor.Info
	for _, ref := range all {
		if input.Target != "" && !matchGlob(ref.Ref, input.Target) {
			continue
		}
		filtered = append(filtered, ref)
	}

	if input.Detail {
		paged := paginate(filtered, input.Offset, detailLimit(input.Limit))
		output := walkRefsOutput{
			Total:    len(all),
			Matched:  len(filtered),
			Returned: len(paged),
			Details:  makeSlice[refDetail](len(paged)),
		}
		for _, ref := range paged {
			output.Details = append(output.Details, refDetail{
				Ref:      ref.Ref,
				DataPath: ref.DataPath,
				JSONPath: ref.JSONPath,
			})
		}
		return nil, output, nil
	}

	counts := make(map[string]int)
	for _, ref := range filtered {
		counts[ref.Ref]++
	}
	summaries := make([]refSummary, 0, len(counts))
	for ref, count := range counts {
		_, resolved := v.Store().Dereference(ref)
		summaries = append(summaries, refSummary{Ref: ref, Count: count, Resolved: resolved})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Count != summaries[j].Count {
			return summaries[i].Count > summaries[j].Count
		}
		return summaries[i].Ref < summaries[j].Ref
	})

	paged := paginate(summaries, input.Offset, input.Limit)
	return nil, walkRefsOutput{
		Total:     countUniqueRefs(all),
		Matched:   len(summaries),
		Returned:  len(paged),
		Summaries: paged,
	}, nil
}

// countUniqueRefs returns the number of distinct ref strings.
func countUniqueRefs(refs []visitor.Info) int {
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		seen[ref.Ref] = struct{}{}
	}
	return len(seen)
}
