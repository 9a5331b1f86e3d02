package arith

import (
	"container/list"
	"sync"
)

const defaultCacheCapacity = 64

// programCache is a fixed-capacity LRU cache of parsed programs keyed
// by formula source. A shared Compiler uses it to skip re-parsing
// source it has already seen.
type programCache struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

type cacheEntry struct {
	key  string
	prog *Program
}

func newProgramCache(capacity int) *programCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &programCache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

func (c *programCache) get(key string) (*Program, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*cacheEntry).prog, true
}

func (c *programCache) put(key string, prog *Program) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.ll.MoveToFront(el)
		el.Value.(*cacheEntry).prog = prog
		return
	}

	el := c.ll.PushFront(&cacheEntry{key: key, prog: prog})
	c.items[key] = el

	for c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		c.ll.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
}

// getOrParse returns the cached program for the source, parsing and
// storing it on a miss. Concurrent misses may parse the same source
// more than once; the duplicate work is harmless because programs are
// immutable, and the last result wins.
func (c *programCache) getOrParse(source string) (*Program, error) {
	if prog, ok := c.get(source); ok {
		return prog, nil
	}

	prog, err := Parse(source)
	if err != nil {
		return nil, err
	}

	c.put(source, prog)
	return prog, nil
}

func (c *programCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
