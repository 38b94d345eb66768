package loader

import (
	"github.com/erraggy/schemacodec"
	"github.com/erraggy/schemacodec/schemaerrors"
)

// DefaultMaxSize is the default limit on document size in bytes (10 MiB).
const DefaultMaxSize int64 = 10 * 1024 * 1024

// Option configures a load.
type Option func(*config) error

type config struct {
	maxSize int64
	format  Format
	logger  schemacodec.Logger
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		maxSize: DefaultMaxSize,
		format:  FormatAuto,
		logger:  schemacodec.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithMaxSize sets the largest accepted document in bytes.
func WithMaxSize(n int64) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return &schemaerrors.ConfigError{Option: "max size", Value: n, Message: "must be positive"}
		}
		cfg.maxSize = n
		return nil
	}
}

// WithFormat forces the document format instead of detecting it.
func WithFormat(f Format) Option {
	return func(cfg *config) error {
		switch f {
		case FormatAuto, FormatJSON, FormatYAML:
			cfg.format = f
			return nil
		}
		return &schemaerrors.ConfigError{Option: "format", Value: string(f), Message: "expected json or yaml"}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l schemacodec.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = schemacodec.OrNop(l)
		return nil
	}
}
