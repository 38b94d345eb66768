package mcpserver

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/schemacodec/loader"
)

type cached struct {
	key     string
	doc     *loader.Document
	expires time.Time
}

func (c *cached) expired(now time.Time) bool {
	return !c.expires.IsZero() && now.After(c.expires)
}

// lruDocs keeps loaded documents for reuse across tool calls. The most
// recently used entry sits at the front of order. Documents handed out are
// shared and must be treated as read-only.
type lruDocs struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	index    map[string]*list.Element
	sweeping atomic.Bool
}

func newLRUDocs(capacity int) *lruDocs {
	return &lruDocs{
		capacity: max(capacity, 1),
		order:    list.New(),
		index:    make(map[string]*list.Element),
	}
}

var docCache = newLRUDocs(cfg.CacheMaxSize)

func (c *lruDocs) get(key string) *loader.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.index[key]
	if !ok {
		return nil
	}
	entry := el.Value.(*cached)
	if entry.expired(time.Now()) {
		c.drop(el)
		return nil
	}
	c.order.MoveToFront(el)
	return entry.doc
}

func (c *lruDocs) put(key string, doc *loader.Document, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := &cached{key: key, doc: doc, expires: time.Now().Add(ttl)}
	if el, ok := c.index[key]; ok {
		el.Value = entry
		c.order.MoveToFront(el)
		return
	}
	for c.order.Len() >= c.capacity {
		c.drop(c.order.Back())
	}
	c.index[key] = c.order.PushFront(entry)
}

// drop unlinks el. The caller holds mu.
func (c *lruDocs) drop(el *list.Element) {
	c.order.Remove(el)
	delete(c.index, el.Value.(*cached).key)
}

func (c *lruDocs) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if el.Value.(*cached).expired(now) {
			c.drop(el)
		}
		el = next
	}
}

// startSweeper evicts expired documents every interval until ctx ends.
// At most one sweeper runs at a time.
func (c *lruDocs) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeping.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeping.Store(false)
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tick.C:
				c.sweep()
			}
		}
	}()
}

func (c *lruDocs) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.index)
}

func (c *lruDocs) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
