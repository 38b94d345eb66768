package codec

import (
	"fmt"

	"github.com/erraggy/schemacodec"
)

// UnknownKeys controls what Transform does with object members that are
// not named in the schema's "properties".
type UnknownKeys int

const (
	// PassThrough keeps unknown members unchanged.
	PassThrough UnknownKeys = iota
	// Drop omits unknown members from the result.
	Drop
)

// String returns the policy name.
func (u UnknownKeys) String() string {
	switch u {
	case PassThrough:
		return "pass-through"
	case Drop:
		return "drop"
	default:
		return fmt.Sprintf("UnknownKeys(%d)", int(u))
	}
}

// Option configures a Codec.
type Option func(*config) error

type config struct {
	parent       *Codec
	transformers []*Transformer
	unknownKeys  UnknownKeys
	tupleItems   bool
	logger       schemacodec.Logger
}

// WithParent makes the codec inherit parent's transformers and fall back
// to parent's functions.
func WithParent(parent *Codec) Option {
	return func(cfg *config) error {
		if parent == nil {
			return fmt.Errorf("codec: parent cannot be nil")
		}
		cfg.parent = parent
		return nil
	}
}

// WithTransformers adds transformers the codec supports.
func WithTransformers(ts ...*Transformer) Option {
	return func(cfg *config) error {
		for _, t := range ts {
			if t == nil {
				return fmt.Errorf("codec: transformer cannot be nil")
			}
		}
		cfg.transformers = append(cfg.transformers, ts...)
		return nil
	}
}

// WithUnknownKeys sets the policy for object members without a property
// schema. The default is PassThrough.
func WithUnknownKeys(policy UnknownKeys) Option {
	return func(cfg *config) error {
		if policy != PassThrough && policy != Drop {
			return fmt.Errorf("codec: invalid unknown keys policy %d", int(policy))
		}
		cfg.unknownKeys = policy
		return nil
	}
}

// WithTupleItems selects whether array elements use their per-index tuple
// schema (the default) or the rest schema for every element.
func WithTupleItems(enabled bool) Option {
	return func(cfg *config) error {
		cfg.tupleItems = enabled
		return nil
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l schemacodec.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = schemacodec.OrNop(l)
		return nil
	}
}
