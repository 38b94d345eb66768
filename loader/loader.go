package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/schemacodec/schemaerrors"
)

// Document is a loaded schema document.
type Document struct {
	// Root is the decoded top-level object.
	Root map[string]any
	// SourcePath is the file path, or a placeholder for in-memory input.
	SourcePath string
	// Format is the format the document was decoded as.
	Format Format
	// Size is the input size in bytes.
	Size int64
}

// URI returns a file URI for documents loaded from disk, usable as a
// retrieval URI for relative $ref resolution. It is empty for in-memory input.
func (d *Document) URI() string {
	if d.SourcePath == "" || d.SourcePath == BytesSource || d.SourcePath == ReaderSource {
		return ""
	}
	abs, err := filepath.Abs(d.SourcePath)
	if err != nil {
		return ""
	}
	return "file://" + filepath.ToSlash(abs)
}

// Placeholder source paths for input that did not come from a file.
const (
	BytesSource  = "<bytes>"
	ReaderSource = "<reader>"
)

// Load reads and decodes the file at path.
func Load(path string, opts ...Option) (*Document, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("loader: %s is a directory", path)
	}
	if info.Size() > cfg.maxSize {
		return nil, sizeError(path, cfg.maxSize, info.Size())
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided input
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	format := cfg.format
	if format == FormatAuto {
		format = formatFromPath(path)
	}
	return decode(cfg, data, path, format)
}

// LoadBytes decodes an in-memory document.
func LoadBytes(data []byte, opts ...Option) (*Document, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > cfg.maxSize {
		return nil, sizeError(BytesSource, cfg.maxSize, int64(len(data)))
	}
	return decode(cfg, data, BytesSource, cfg.format)
}

// LoadReader reads r to the end and decodes the result. At most the
// configured maximum size plus one byte is read.
func LoadReader(r io.Reader, opts ...Option) (*Document, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &schemaerrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
	}

	data, err := io.ReadAll(io.LimitReader(r, cfg.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read data: %w", err)
	}
	if int64(len(data)) > cfg.maxSize {
		return nil, sizeError(ReaderSource, cfg.maxSize, 0)
	}
	return decode(cfg, data, ReaderSource, cfg.format)
}

func sizeError(source string, limit, actual int64) error {
	return &schemaerrors.ResourceLimitError{
		ResourceType: "document size",
		Limit:        limit,
		Actual:       actual,
		Message:      source,
	}
}

func decode(cfg *config, data []byte, source string, format Format) (*Document, error) {
	raw, format, err := decodeValue(cfg, data, source, format)
	if err != nil {
		return nil, err
	}

	root, ok := raw.(map[string]any)
	if !ok {
		return nil, &schemaerrors.ParseError{
			Path:    source,
			Format:  string(format),
			Message: fmt.Sprintf("document root must be an object, got %T", raw),
		}
	}

	return &Document{
		Root:       root,
		SourcePath: source,
		Format:     format,
		Size:       int64(len(data)),
	}, nil
}

// DecodeValue decodes an in-memory JSON or YAML value of any shape, such
// as instance data to traverse alongside a schema.
func DecodeValue(data []byte, opts ...Option) (any, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > cfg.maxSize {
		return nil, sizeError(BytesSource, cfg.maxSize, int64(len(data)))
	}
	v, _, err := decodeValue(cfg, data, BytesSource, cfg.format)
	return v, err
}

func decodeValue(cfg *config, data []byte, source string, format Format) (any, Format, error) {
	if format == FormatAuto {
		format = formatFromContent(data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, format, &schemaerrors.ParseError{Path: source, Format: string(format), Message: "document is empty"}
	}

	var raw any
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
		raw = normalize(raw)
	}
	if err != nil {
		return nil, format, &schemaerrors.ParseError{Path: source, Format: string(format), Cause: err}
	}

	cfg.logger.Debug("loader: decoded document", "source", source, "format", string(format), "bytes", len(data))
	return raw, format, nil
}

// normalize rewrites YAML mappings with non-string keys into
// map[string]any, recursively.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = normalize(child)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	case []any:
		for i, child := range t {
			t[i] = normalize(child)
		}
		return t
	default:
		return v
	}
}
