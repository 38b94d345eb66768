// Package commands provides CLI command handlers for schemacodec.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/erraggy/schemacodec"
	"github.com/erraggy/schemacodec/internal/cliutil"
	"github.com/erraggy/schemacodec/loader"
	"github.com/erraggy/schemacodec/visitor"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// CommonFlags contains flags shared by every schema subcommand.
type CommonFlags struct {
	Format string // Output format: text, json, yaml.
	Quiet  bool   // Suppress headers and decoration for piping.
	Output string // Output file path; empty writes to stdout.
	Debug  bool   // Log loader and walker activity to stderr.
}

// register adds the common flags to fs.
func (c *CommonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.Format, "format", FormatText, "Output format: text, json, yaml")
	fs.BoolVar(&c.Quiet, "q", false, "Suppress headers and decoration")
	fs.BoolVar(&c.Quiet, "quiet", false, "Suppress headers and decoration")
	fs.StringVar(&c.Output, "o", "", "Write output to a file instead of stdout")
	fs.StringVar(&c.Output, "output", "", "Write output to a file instead of stdout")
	fs.BoolVar(&c.Debug, "debug", false, "Log loader and walker activity to stderr")
}

// logger returns the logger selected by the --debug flag.
func (c *CommonFlags) logger() schemacodec.Logger {
	if !c.Debug {
		return schemacodec.NopLogger{}
	}
	return schemacodec.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// loadSchema loads a schema document from a file path or stdin ("-").
func loadSchema(path string, log schemacodec.Logger) (*loader.Document, error) {
	if path == StdinFilePath {
		return loader.LoadReader(os.Stdin, loader.WithLogger(log))
	}
	return loader.Load(path, loader.WithLogger(log))
}

// newVisitor loads path and returns a visitor rooted at the document.
func newVisitor(path string, log schemacodec.Logger) (*visitor.Visitor, error) {
	doc, err := loadSchema(path, log)
	if err != nil {
		return nil, err
	}
	return visitor.New(doc.Root, visitor.WithRetrievalURI(doc.URI()), visitor.WithLogger(log))
}

// FormatSchemaPath returns a display-friendly path for the schema document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSchemaPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// Writef writes formatted output to the writer.
var Writef = cliutil.Writef

// outputHeader writes the version and document header to stderr.
func outputHeader(path string, quiet bool) {
	if quiet {
		return
	}
	Writef(os.Stderr, "schemacodec version: %s\n", schemacodec.Version())
	Writef(os.Stderr, "Schema: %s\n\n", FormatSchemaPath(path))
}

// renderNoResults prints an informative message when nothing matched.
func renderNoResults(what string, quiet bool) {
	if !quiet {
		Writef(os.Stderr, "No %s matched the given filters.\n", what)
	}
}

// parseFlags parses args into fs. It reports done when help was requested.
func parseFlags(fs *flag.FlagSet, args []string) (done bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return true, err
	}
	return false, nil
}
