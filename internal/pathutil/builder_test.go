package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerBuilder(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		p := &PointerBuilder{}
		p.Reset("#")
		p.Push("properties")
		p.Push("name")
		assert.Equal(t, "#/properties/name", p.String())
		assert.Equal(t, 2, p.Len())
	})

	t.Run("escapes tokens", func(t *testing.T) {
		p := &PointerBuilder{}
		p.Reset("#")
		p.Push("patternProperties")
		p.Push("a/b~c")
		assert.Equal(t, "#/patternProperties/a~1b~0c", p.String())
	})

	t.Run("index", func(t *testing.T) {
		p := &PointerBuilder{}
		p.Reset("")
		p.Push("prefixItems")
		p.PushIndex(3)
		assert.Equal(t, "/prefixItems/3", p.String())
	})

	t.Run("push pop", func(t *testing.T) {
		p := &PointerBuilder{}
		p.Reset("#")
		p.Push("a")
		p.Push("b")
		p.Pop()
		p.Push("c")
		assert.Equal(t, "#/a/c", p.String())
	})

	t.Run("empty is root", func(t *testing.T) {
		p := &PointerBuilder{}
		p.Reset("#")
		assert.Equal(t, "#", p.String())

		p.Reset("")
		assert.Equal(t, "", p.String())
	})

	t.Run("pop empty", func(t *testing.T) {
		p := &PointerBuilder{}
		p.Reset("#")
		p.Pop()
		assert.Equal(t, "#", p.String())
		assert.Equal(t, 0, p.Len())
	})

	t.Run("length tracking matches output", func(t *testing.T) {
		p := &PointerBuilder{}
		p.Reset("#")
		p.Push("x/y")
		p.PushIndex(10)
		p.Push("")
		assert.Equal(t, len(p.String()), p.length)
		p.Pop()
		p.Pop()
		assert.Equal(t, len(p.String()), p.length)
	})
}

func TestPool(t *testing.T) {
	p := Get("#")
	p.Push("a")
	Put(p)

	p2 := Get("")
	assert.Equal(t, "", p2.String(), "pooled builders come back reset")
	Put(p2)

	Put(nil)
}
