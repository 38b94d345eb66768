package codec

import (
	"sort"
	"sync"

	"github.com/erraggy/schemacodec"
	"github.com/erraggy/schemacodec/schema"
	"github.com/erraggy/schemacodec/schemaerrors"
)

// Codec maps (transformer, schema node) pairs to transform functions.
//
// Registration and Transform may be called from multiple goroutines.
type Codec struct {
	name         string
	parent       *Codec
	transformers map[*Transformer]struct{}
	unknownKeys  UnknownKeys
	tupleItems   bool
	logger       schemacodec.Logger

	mu  sync.RWMutex
	fns map[*Transformer]map[schema.NodeID]Func
}

// New creates a codec. It needs at least one transformer or a parent; the
// supported transformers are the declared ones plus all of the parent's.
func New(name string, opts ...Option) (*Codec, error) {
	cfg := config{tupleItems: true, logger: schemacodec.NopLogger{}}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, &schemaerrors.ConstructionError{Op: "new codec", Message: name, Cause: err}
		}
	}
	if cfg.parent == nil && len(cfg.transformers) == 0 {
		return nil, &schemaerrors.ConstructionError{
			Op:      "new codec",
			Message: "codec " + name + " needs a parent or at least one transformer",
		}
	}

	c := &Codec{
		name:         name,
		parent:       cfg.parent,
		transformers: make(map[*Transformer]struct{}, len(cfg.transformers)),
		unknownKeys:  cfg.unknownKeys,
		tupleItems:   cfg.tupleItems,
		logger:       cfg.logger,
		fns:          make(map[*Transformer]map[schema.NodeID]Func),
	}
	for _, t := range cfg.transformers {
		c.transformers[t] = struct{}{}
	}
	if c.parent != nil {
		for t := range c.parent.transformers {
			c.transformers[t] = struct{}{}
		}
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for package-level codecs.
func MustNew(name string, opts ...Option) *Codec {
	c, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the codec's name.
func (c *Codec) Name() string {
	return c.name
}

// Parent returns the parent codec, or nil.
func (c *Codec) Parent() *Codec {
	return c.parent
}

// Supports reports whether t can be used with this codec.
func (c *Codec) Supports(t *Transformer) bool {
	_, ok := c.transformers[t]
	return ok
}

// Transformers returns the supported transformers sorted by name.
func (c *Codec) Transformers() []*Transformer {
	ts := make([]*Transformer, 0, len(c.transformers))
	for t := range c.transformers {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].name < ts[j].name })
	return ts
}

// AddTransformation registers fn for t and the schema node s on this codec
// only. A later registration for the same pair replaces the earlier one.
func (c *Codec) AddTransformation(t *Transformer, s any, fn Func) {
	c.mu.Lock()
	defer c.mu.Unlock()

	byNode, ok := c.fns[t]
	if !ok {
		byNode = make(map[schema.NodeID]Func)
		c.fns[t] = byNode
	}
	byNode[schema.IdentityOf(s)] = fn
}

// own returns this codec's function for the pair, ignoring the parent.
func (c *Codec) own(t *Transformer, id schema.NodeID) (Func, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn, ok := c.fns[t][id]
	return fn, ok
}

// lookup walks the parent chain for the pair's function. owner is the codec
// the function was registered on. Every codec handed the lookup must support
// t; the first parent that does not yields a TransformerError.
func (c *Codec) lookup(t *Transformer, s any) (fn Func, owner *Codec, err error) {
	id := schema.IdentityOf(s)
	for cur := c; cur != nil; cur = cur.parent {
		if !cur.Supports(t) {
			return nil, nil, &schemaerrors.TransformerError{Codec: cur.name, Transformer: t.Name()}
		}
		if fn, ok := cur.own(t, id); ok {
			if cur != c {
				c.logger.Debug("codec: delegated to parent", "codec", c.name, "parent", cur.name, "transformer", t.Name())
			}
			return fn, cur, nil
		}
	}
	return nil, nil, nil
}
