package codec

// Binding is a pending registration created by Bind.
type Binding struct {
	codec       *Codec
	transformer *Transformer
	fn          Func
}

// Bind prepares a registration of fn on c for transformer t. The schema
// node is supplied later by Apply.
func Bind(c *Codec, t *Transformer, fn Func) Binding {
	return Binding{codec: c, transformer: t, fn: fn}
}

// Apply registers every binding for s and returns s, so a schema can be
// annotated where it is declared:
//
//	"ts": codec.Apply(timestamp, codec.Bind(wire, encode, formatTime))
//
// Bindings are applied in order; a later binding for the same codec and
// transformer replaces an earlier one.
func Apply[S any](s S, bindings ...Binding) S {
	for _, b := range bindings {
		b.codec.AddTransformation(b.transformer, s, b.fn)
	}
	return s
}

// Const returns a Func that ignores its input and returns v.
func Const(v any) Func {
	return func(any) (any, error) { return v, nil }
}
