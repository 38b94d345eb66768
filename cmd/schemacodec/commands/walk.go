package commands

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/erraggy/schemacodec/internal/cliutil"
	"github.com/erraggy/schemacodec/schema"
	"github.com/erraggy/schemacodec/visitor"
)

// walkRecord is the structured form of one visited node.
type walkRecord struct {
	Path        string `json:"path"                   yaml:"path"`
	Pointer     string `json:"pointer"                yaml:"pointer"`
	Kind        string `json:"kind"                   yaml:"kind"`
	Ref         string `json:"ref,omitempty"          yaml:"ref,omitempty"`
	HasChildren bool   `json:"has_children,omitempty" yaml:"has_children,omitempty"`
	Schema      any    `json:"schema,omitempty"       yaml:"schema,omitempty"`
}

// HandleWalk implements the "walk" command.
func HandleWalk(args []string) error {
	fs := flag.NewFlagSet("walk", flag.ContinueOnError)

	defs := fs.Bool("defs", false, "Walk $defs and definitions instead of the root schema")
	kindFilter := fs.String("kind", "", "Filter by node kind (ObjectProperty, TupleItem, ArrayItems, ...)")
	refOnly := fs.Bool("ref-only", false, "Only show nodes carrying a $ref")
	detail := fs.Bool("detail", false, "Include each subschema in the output")

	var flags CommonFlags
	flags.register(fs)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: schemacodec walk [flags] <file|->\n\n")
		Writef(fs.Output(), "Walk every subschema of a JSON Schema document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  schemacodec walk schema.json\n")
		Writef(fs.Output(), "  schemacodec walk --defs --format yaml schema.yaml\n")
		Writef(fs.Output(), "  cat schema.json | schemacodec walk -q --kind TupleItem -\n")
	}

	if done, err := parseFlags(fs, args); done {
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	var kind schema.NodeKind
	if *kindFilter != "" {
		k, ok := schema.ParseNodeKind(*kindFilter)
		if !ok {
			return fmt.Errorf("walk: invalid kind %q", *kindFilter)
		}
		kind = k
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("walk requires exactly one schema file argument")
	}
	path := fs.Arg(0)

	log := flags.logger()
	v, err := newVisitor(path, log)
	if err != nil {
		return fmt.Errorf("walk: %w", err)
	}

	var records []walkRecord
	collect := func(info *visitor.Info) visitor.Action {
		if *kindFilter != "" && info.Kind != kind {
			return visitor.Continue
		}
		if *refOnly && info.Ref == "" {
			return visitor.Continue
		}
		rec := walkRecord{
			Path:        info.DataPath,
			Pointer:     info.JSONPath,
			Kind:        info.Kind.String(),
			Ref:         info.Ref,
			HasChildren: info.HasChildren,
		}
		if *detail {
			rec.Schema = info.Schema
		}
		records = append(records, rec)
		return visitor.Continue
	}
	if *defs {
		v.VisitDefs(collect)
	} else {
		v.VisitSchema(collect)
	}

	outputHeader(path, flags.Quiet || flags.Format != FormatText)
	if len(records) == 0 {
		renderNoResults("nodes", flags.Quiet)
		return nil
	}

	w, closeOutput, err := cliutil.OpenOutput(flags.Output)
	if err != nil {
		return fmt.Errorf("walk: %w", err)
	}
	defer func() { _ = closeOutput() }()

	if flags.Format != FormatText || *detail {
		if err := RenderDetail(w, records, flags.Format); err != nil {
			return fmt.Errorf("walk: %w", err)
		}
		return closeOutput()
	}

	headers := []string{"PATH", "POINTER", "KIND", "REF", "CHILDREN"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.Path, rec.Pointer, rec.Kind, rec.Ref, strconv.FormatBool(rec.HasChildren)})
	}
	RenderSummaryTable(w, headers, rows, flags.Quiet)
	if !flags.Quiet {
		Writef(os.Stderr, "\n%d node(s)\n", len(records))
	}
	return closeOutput()
}
