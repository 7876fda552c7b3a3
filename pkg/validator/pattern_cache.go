package validator

import (
	"container/list"
	"regexp"
	"sync"
)

// patternCacheSize bounds the compiled patterns kept for match rules.
const patternCacheSize = 256

type patternEntry struct {
	pattern string
	re      *regexp.Regexp
	err     error
}

// patternCache is an LRU of compiled match patterns, failures included, so
// a spec reused across requests compiles its pattern once. It is the only
// state match rules share; it memoizes CompilePattern and never changes an
// outcome.
type patternCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

func newPatternCache(capacity int) *patternCache {
	if capacity <= 0 {
		panic("pattern cache capacity must be positive")
	}
	return &patternCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

var patterns = newPatternCache(patternCacheSize)

// compile returns the cached result for pattern, compiling it on a miss.
func (c *patternCache) compile(pattern string) (*regexp.Regexp, error) {
	c.mu.Lock()
	if elem, ok := c.items[pattern]; ok {
		c.order.MoveToFront(elem)
		entry := elem.Value.(*patternEntry)
		c.mu.Unlock()
		return entry.re, entry.err
	}
	c.mu.Unlock()

	re, err := CompilePattern(pattern)

	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[pattern]; ok {
		// compiled concurrently; keep the first result
		c.order.MoveToFront(elem)
		entry := elem.Value.(*patternEntry)
		return entry.re, entry.err
	}
	c.items[pattern] = c.order.PushFront(&patternEntry{pattern: pattern, re: re, err: err})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*patternEntry).pattern)
	}
	return re, err
}

func (c *patternCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
