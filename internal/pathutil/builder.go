package pathutil

import (
	"strconv"
	"strings"

	"github.com/erraggy/schemacodec/jsonpointer"
)

// PointerBuilder provides incremental JSON pointer construction.
// Uses push/pop semantics to avoid allocations during traversal.
type PointerBuilder struct {
	root     string
	segments []string
	length   int // Pre-calculated length for String() allocation
}

// Reset clears the builder and sets the prefix every pointer starts with,
// e.g. "#" for URI fragments or "" for plain pointers.
func (p *PointerBuilder) Reset(root string) {
	p.root = root
	p.segments = p.segments[:0]
	p.length = len(root)
}

// Push escapes token and appends it to the pointer.
func (p *PointerBuilder) Push(token string) {
	seg := jsonpointer.Escape(token)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1
}

// PushIndex appends an array index.
func (p *PointerBuilder) PushIndex(i int) {
	seg := strconv.Itoa(i)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1
}

// Pop removes the last token.
func (p *PointerBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last) + 1
}

// Len returns the number of tokens.
func (p *PointerBuilder) Len() int {
	return len(p.segments)
}

// String materializes the full pointer. Only call when the pointer is needed.
func (p *PointerBuilder) String() string {
	if len(p.segments) == 0 {
		return p.root
	}
	var b strings.Builder
	b.Grow(p.length)
	b.WriteString(p.root)
	for _, seg := range p.segments {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}
