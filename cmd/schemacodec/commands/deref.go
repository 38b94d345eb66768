package commands

import (
	"flag"
	"fmt"

	"github.com/erraggy/schemacodec/internal/cliutil"
	"github.com/erraggy/schemacodec/refstore"
)

// HandleDeref implements the "deref" command.
func HandleDeref(args []string) error {
	fs := flag.NewFlagSet("deref", flag.ContinueOnError)

	var flags CommonFlags
	flags.register(fs)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: schemacodec deref [flags] <file|-> <ref>\n\n")
		Writef(fs.Output(), "Print the subschema a reference resolves to.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  schemacodec deref schema.json '#/$defs/address'\n")
		Writef(fs.Output(), "  schemacodec deref --format json schema.yaml '#/properties/items/items'\n")
	}

	if done, err := parseFlags(fs, args); done {
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("deref requires a schema file and a reference")
	}
	path, ref := fs.Arg(0), fs.Arg(1)

	log := flags.logger()
	doc, err := loadSchema(path, log)
	if err != nil {
		return fmt.Errorf("deref: %w", err)
	}
	store, err := refstore.New(doc.Root, refstore.WithRetrievalURI(doc.URI()), refstore.WithLogger(log))
	if err != nil {
		return fmt.Errorf("deref: %w", err)
	}
	target, ok := store.Dereference(ref)
	if !ok {
		return fmt.Errorf("deref: reference %q does not resolve against %s", ref, store.BaseURI())
	}

	w, closeOutput, err := cliutil.OpenOutput(flags.Output)
	if err != nil {
		return fmt.Errorf("deref: %w", err)
	}
	defer func() { _ = closeOutput() }()

	if err := RenderDetail(w, target, flags.Format); err != nil {
		return fmt.Errorf("deref: %w", err)
	}
	return closeOutput()
}
