package episodes

import "sync"

// Cache memoizes loaded tables by path so a table is parsed at most once
// per process.
type Cache struct {
	mu     sync.Mutex
	tables map[string]*cacheEntry
}

type cacheEntry struct {
	once  sync.Once
	table *Table
	err   error
}

// NewCache creates an empty table cache
func NewCache() *Cache {
	return &Cache{
		tables: make(map[string]*cacheEntry),
	}
}

// Load returns the table for path, reading it on first use. A failed load
// is remembered too; the file is not read again.
func (c *Cache) Load(path string) (*Table, error) {
	c.mu.Lock()
	entry, ok := c.tables[path]
	if !ok {
		entry = &cacheEntry{}
		c.tables[path] = entry
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		entry.table, entry.err = NewLoader(path).Load()
	})
	return entry.table, entry.err
}
