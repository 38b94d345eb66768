package codec

// Transformer identifies one direction of transformation. Transformers are
// compared by pointer: two transformers with the same name are distinct.
type Transformer struct {
	name string
}

// NewTransformer creates a transformer. The name is only used in messages.
func NewTransformer(name string) *Transformer {
	return &Transformer{name: name}
}

// Name returns the transformer's name.
func (t *Transformer) Name() string {
	if t == nil {
		return "<nil>"
	}
	return t.name
}

// String implements fmt.Stringer.
func (t *Transformer) String() string {
	return t.Name()
}

// Func transforms a single value.
type Func func(value any) (any, error)
