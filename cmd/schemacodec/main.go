package main

import (
	"fmt"
	"os"

	"github.com/erraggy/schemacodec"
	"github.com/erraggy/schemacodec/cmd/schemacodec/commands"
)

// handlers maps each command name to its handler.
var handlers = map[string]func([]string) error{
	"walk":  commands.HandleWalk,
	"refs":  commands.HandleRefs,
	"deref": commands.HandleDeref,
	"docs":  commands.HandleDocs,
	"mcp":   commands.HandleMCP,
}

// commandNames lists every command, including the built-ins.
var commandNames = []string{"walk", "refs", "deref", "docs", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("schemacodec v%s\n", schemacodec.Version())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	handler, ok := handlers[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
	if err := handler(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the command closest to input within an edit
// distance of 2, or "" when nothing is that close.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`schemacodec - JSON Schema walking and codec tools

Usage:
  schemacodec <command> [options]

Commands:
  walk        List every subschema with its data path, pointer and kind
  refs        List $ref targets and the data paths that reference them
  deref       Print the subschema a reference resolves to
  docs        Print subschema descriptions under title-cased headings
  mcp         Run the MCP server on stdio
  version     Show version information
  help        Show this help message

Examples:
  schemacodec walk schema.json
  schemacodec walk --defs --format yaml schema.yaml
  schemacodec refs --unresolved schema.json
  schemacodec deref schema.json '#/$defs/address'
  cat schema.yaml | schemacodec docs -

Run 'schemacodec <command> --help' for more information on a command.`)
}
