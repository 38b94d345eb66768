// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes schema walking and dereferencing as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemacodec"
)

const serverInstructions = `schemacodec MCP server: walks JSON Schema documents, lists $ref usage, dereferences pointers and traverses data alongside a schema.

Schemas are passed as a file path or inline JSON/YAML content. Remote documents are never fetched.

Configuration: defaults are configurable via SCHEMACODEC_* environment variables set in your MCP client config.

Key settings:
- SCHEMACODEC_CACHE_ENABLED (default: true): disable document caching entirely
- SCHEMACODEC_CACHE_FILE_TTL (default: 15m): cache TTL for local files
- SCHEMACODEC_CACHE_CONTENT_TTL (default: 15m): cache TTL for inline content
- SCHEMACODEC_WALK_LIMIT (default: 100): default result limit for walk tools
- SCHEMACODEC_WALK_DETAIL_LIMIT (default: 25): default limit when full schemas are returned
- SCHEMACODEC_MAX_LIMIT (default: 1000): upper bound for any limit
- SCHEMACODEC_MAX_INLINE_SIZE (default: 10MiB): largest accepted inline content`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "schemacodec", Version: schemacodec.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "walk_schema",
		Description: "Walk every subschema of a JSON Schema document. Returns data paths (.prop, ./pattern/, .*, [0], [*]), JSON pointers, node kinds and $ref strings. Use defs=true to walk $defs/definitions instead of the root schema. Filter by kind or by data path glob, or use group_by=kind for counts. detail=true includes each subschema; avoid it without filters on large schemas.",
	}, handleWalkSchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "walk_refs",
		Description: "List $ref usage in a JSON Schema document. By default returns unique ref strings ranked by reference count, with whether each resolves. Use target to filter (supports * glob). Use detail=true for individual source locations.",
	}, handleWalkRefs)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dereference",
		Description: "Resolve a $ref (for example #/$defs/Address or #/properties/items/0) against a JSON Schema document and return the target subschema together with the data paths that reference it.",
	}, handleDereference)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "traverse",
		Description: "Walk a data value alongside a JSON Schema and report, for every leaf value, which subschemas apply to it. A key matching both a property and a pattern is reported once per schema; additionalProperties applies only when nothing else matched.",
	}, handleTraverse)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.WalkLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.WalkLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// detailLimit returns the lower default used when full subschemas are returned.
func detailLimit(limit int) int {
	if limit <= 0 {
		return cfg.WalkDetailLimit
	}
	return limit
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[keyFn(item)]++
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is a valid value and is not combined with detail.
func validateGroupBy(groupBy string, detail bool, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	if detail {
		return fmt.Errorf("cannot use both group_by and detail")
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchGlob never encounters an
// invalid pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// matchGlob matches a path or ref against a glob pattern. * and ? may
// cross '/' and '.' separators, so "*name" matches ".user.name".
func matchGlob(s, pattern string) bool {
	if !strings.ContainsAny(pattern, "*?[") {
		return strings.EqualFold(s, pattern)
	}
	normalize := strings.NewReplacer("/", ":", ".", ";")
	matched, err := filepath.Match(
		normalize.Replace(strings.ToLower(pattern)),
		normalize.Replace(strings.ToLower(s)),
	)
	return err == nil && matched
}
