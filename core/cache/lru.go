package cache

import (
	"container/list"
	"sync"
)

type lruEntry[V any] struct {
	key string
	val V
}

// LRU is a fixed-size least-recently-used cache. Safe for concurrent use.
type LRU[V any] struct {
	mu    sync.Mutex
	ll    *list.List
	items map[string]*list.Element
	size  int
}

// NewLRU returns an LRU holding at most size entries. A non-positive size
// defaults to 128.
func NewLRU[V any](size int) *LRU[V] {
	if size <= 0 {
		size = 128
	}
	return &LRU[V]{
		ll:    list.New(),
		items: make(map[string]*list.Element),
		size:  size,
	}
}

func (c *LRU[V]) Get(key string) (val V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.items[key]
	if !ok {
		return val, false
	}
	c.ll.MoveToFront(ele)
	return ele.Value.(*lruEntry[V]).val, true
}

func (c *LRU[V]) Put(key string, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.items[key]; ok {
		c.ll.MoveToFront(ele)
		ele.Value.(*lruEntry[V]).val = val
		return
	}

	ele := c.ll.PushFront(&lruEntry[V]{key: key, val: val})
	c.items[key] = ele

	if c.ll.Len() > c.size {
		last := c.ll.Back()
		if last != nil {
			c.ll.Remove(last)
			delete(c.items, last.Value.(*lruEntry[V]).key)
		}
	}
}

var _ Cache[int] = (*LRU[int])(nil)
