package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/schemacodec/internal/mcpserver"
)

// HandleMCP implements the "mcp" command, serving MCP tools on stdio until
// the client disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: schemacodec mcp\n\n")
		Writef(fs.Output(), "Run the schemacodec MCP server over stdio.\n")
		Writef(fs.Output(), "Configuration is read from SCHEMACODEC_* environment variables.\n")
	}
	if done, err := parseFlags(fs, args); done {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("mcp takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp: %w", err)
	}
	return nil
}
