package commands

import (
	"flag"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/schemacodec/internal/cliutil"
	"github.com/erraggy/schemacodec/internal/naming"
	"github.com/erraggy/schemacodec/jsonpointer"
	"github.com/erraggy/schemacodec/visitor"
)

// docEntry is one described subschema.
type docEntry struct {
	Heading     string `json:"heading"     yaml:"heading"`
	Path        string `json:"path"        yaml:"path"`
	Description string `json:"description" yaml:"description"`
}

// HandleDocs implements the "docs" command.
func HandleDocs(args []string) error {
	fs := flag.NewFlagSet("docs", flag.ContinueOnError)

	defs := fs.Bool("defs", false, "Document $defs and definitions instead of the root schema")
	lang := fs.String("lang", "en", "BCP 47 language tag used for title casing headings")

	var flags CommonFlags
	flags.register(fs)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: schemacodec docs [flags] <file|->\n\n")
		Writef(fs.Output(), "Print the description of every subschema, headed by its title-cased key.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  schemacodec docs schema.json\n")
		Writef(fs.Output(), "  schemacodec docs --lang nl --format yaml schema.yaml\n")
	}

	if done, err := parseFlags(fs, args); done {
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("docs: invalid language %q: %w", *lang, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("docs requires exactly one schema file argument")
	}
	path := fs.Arg(0)

	v, err := newVisitor(path, flags.logger())
	if err != nil {
		return fmt.Errorf("docs: %w", err)
	}

	caser := cases.Title(tag, cases.NoLower)
	var entries []docEntry
	if !*defs {
		if desc, ok := description(v.Store().Root()); ok {
			heading := "Schema"
			if title, ok := v.Store().Root()["title"].(string); ok && title != "" {
				heading = title
			}
			entries = append(entries, docEntry{Heading: heading, Path: "(root)", Description: desc})
		}
	}
	collect := func(info *visitor.Info) visitor.Action {
		if desc, ok := description(info.Schema); ok {
			entries = append(entries, docEntry{
				Heading:     headingFor(caser, info.JSONPath),
				Path:        info.DataPath,
				Description: desc,
			})
		}
		return visitor.Continue
	}
	if *defs {
		v.VisitDefs(collect)
	} else {
		v.VisitSchema(collect)
	}

	outputHeader(path, flags.Quiet || flags.Format != FormatText)
	if len(entries) == 0 {
		renderNoResults("descriptions", flags.Quiet)
		return nil
	}

	w, closeOutput, err := cliutil.OpenOutput(flags.Output)
	if err != nil {
		return fmt.Errorf("docs: %w", err)
	}
	defer func() { _ = closeOutput() }()

	if flags.Format != FormatText {
		if err := RenderDetail(w, entries, flags.Format); err != nil {
			return fmt.Errorf("docs: %w", err)
		}
		return closeOutput()
	}
	for _, e := range entries {
		Writef(w, "%s (%s): %s\n", e.Heading, e.Path, e.Description)
	}
	return closeOutput()
}

// description returns the trimmed "description" keyword of s.
func description(s any) (string, bool) {
	obj, ok := s.(map[string]any)
	if !ok {
		return "", false
	}
	desc, ok := obj["description"].(string)
	desc = strings.TrimSpace(desc)
	return desc, ok && desc != ""
}

// headingFor title-cases the words of the last token of a JSON pointer
// fragment.
func headingFor(caser cases.Caser, pointer string) string {
	key := pointer
	if i := strings.LastIndexByte(pointer, '/'); i >= 0 {
		key = jsonpointer.Unescape(pointer[i+1:])
	}
	return caser.String(naming.Phrase(key))
}
