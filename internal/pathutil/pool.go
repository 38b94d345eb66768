package pathutil

import "sync"

const (
	defaultPathCap = 8  // Most schemas nest fewer than 8 tokens deep
	maxPathCap     = 64 // Don't pool excessively deep paths
)

var pointerBuilderPool = sync.Pool{
	New: func() any {
		return &PointerBuilder{
			segments: make([]string, 0, defaultPathCap),
		}
	},
}

// Get retrieves a PointerBuilder from the pool, reset to root.
func Get(root string) *PointerBuilder {
	p := pointerBuilderPool.Get().(*PointerBuilder)
	p.Reset(root)
	return p
}

// Put returns a PointerBuilder to the pool if not oversized.
func Put(p *PointerBuilder) {
	if p == nil || cap(p.segments) > maxPathCap {
		return
	}
	pointerBuilderPool.Put(p)
}
