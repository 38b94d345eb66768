package commands

import (
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/erraggy/schemacodec/internal/cliutil"
	"github.com/erraggy/schemacodec/visitor"
)

// refRecord is the structured form of one $ref target.
type refRecord struct {
	Ref      string   `json:"ref"      yaml:"ref"`
	Resolved bool     `json:"resolved" yaml:"resolved"`
	Sources  []string `json:"sources"  yaml:"sources"`
}

// HandleRefs implements the "refs" command.
func HandleRefs(args []string) error {
	fs := flag.NewFlagSet("refs", flag.ContinueOnError)

	unresolved := fs.Bool("unresolved", false, "Only show refs that do not resolve")

	var flags CommonFlags
	flags.register(fs)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: schemacodec refs [flags] <file|->\n\n")
		Writef(fs.Output(), "List every $ref target of a schema with the data paths that reference it.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  schemacodec refs schema.json\n")
		Writef(fs.Output(), "  schemacodec refs --unresolved -q schema.yaml\n")
	}

	if done, err := parseFlags(fs, args); done {
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("refs requires exactly one schema file argument")
	}
	path := fs.Arg(0)

	v, err := newVisitor(path, flags.logger())
	if err != nil {
		return fmt.Errorf("refs: %w", err)
	}

	refs := make(map[string]struct{})
	v.VisitSchema(func(info *visitor.Info) visitor.Action {
		if info.Ref != "" {
			refs[info.Ref] = struct{}{}
		}
		return visitor.Continue
	})

	records := make([]refRecord, 0, len(refs))
	for ref := range refs {
		_, resolved := v.Store().Dereference(ref)
		if *unresolved && resolved {
			continue
		}
		sources, err := v.RefSourcesOf(ref)
		if err != nil {
			return fmt.Errorf("refs: %w", err)
		}
		records = append(records, refRecord{Ref: ref, Resolved: resolved, Sources: sources})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Ref < records[j].Ref })

	outputHeader(path, flags.Quiet || flags.Format != FormatText)
	if len(records) == 0 {
		renderNoResults("refs", flags.Quiet)
		return nil
	}

	w, closeOutput, err := cliutil.OpenOutput(flags.Output)
	if err != nil {
		return fmt.Errorf("refs: %w", err)
	}
	defer func() { _ = closeOutput() }()

	if flags.Format != FormatText {
		if err := RenderDetail(w, records, flags.Format); err != nil {
			return fmt.Errorf("refs: %w", err)
		}
		return closeOutput()
	}

	headers := []string{"REF", "RESOLVED", "SOURCES"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.Ref, strconv.FormatBool(rec.Resolved), strings.Join(rec.Sources, ", ")})
	}
	RenderSummaryTable(w, headers, rows, flags.Quiet)
	return closeOutput()
}
