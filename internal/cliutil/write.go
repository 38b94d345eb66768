// Package cliutil provides output helpers shared by the schemacodec commands.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/schemacodec/internal/pathutil"
)

// OutputFileMode is the permission mode for files written with -o.
const OutputFileMode os.FileMode = 0o600

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OpenOutput returns a writer for path along with a function that closes it.
// An empty path or "-" selects stdout, whose close function does nothing.
// Symlinks and directories are refused.
func OpenOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	clean, err := pathutil.SanitizeOutputPath(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(clean, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, OutputFileMode)
	if err != nil {
		return nil, nil, fmt.Errorf("cliutil: creating output file: %w", err)
	}
	return f, f.Close, nil
}
