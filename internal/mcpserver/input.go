package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/schemacodec/internal/options"
	"github.com/erraggy/schemacodec/loader"
)

// schemaInput represents the two ways a schema can be provided to a tool.
// Exactly one of File or Content must be set.
type schemaInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON Schema file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline JSON Schema document (JSON or YAML)"`
}

// cacheKey creates a cache key for the input, or "" when it cannot be cached.
func (s schemaInput) cacheKey() string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// resolve loads the document from whichever input was provided, using the
// cache when it is enabled.
func (s schemaInput) resolve() (*loader.Document, error) {
	if err := options.ExactlyOne(
		options.Source{Name: "file", Set: s.File != ""},
		options.Source{Name: "content", Set: s.Content != ""},
	); err != nil {
		return nil, err
	}

	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set SCHEMACODEC_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	ttl := cfg.CacheContentTTL
	if cfg.CacheEnabled {
		key = s.cacheKey()
		if s.File != "" {
			ttl = cfg.CacheFileTTL
		}
	}
	if key != "" {
		if cached := docCache.get(key); cached != nil {
			return cached, nil
		}
	}

	var doc *loader.Document
	var err error
	if s.File != "" {
		doc, err = loader.Load(s.File, loader.WithMaxSize(cfg.MaxDocumentSize))
	} else {
		doc, err = loader.LoadBytes([]byte(s.Content), loader.WithMaxSize(cfg.MaxInlineSize))
	}
	if err != nil {
		return nil, err
	}

	if key != "" {
		docCache.put(key, doc, ttl)
	}
	return doc, nil
}
