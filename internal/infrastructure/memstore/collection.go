package memstore

import "sync"

// Collection is an append-only in-memory record set keyed by a
// per-collection integer sequence. Ids start at 1, increase monotonically
// and are never reused. All operations are safe for concurrent use.
type Collection[T any] struct {
	mu    sync.RWMutex
	seq   int
	items map[int]T
	order []int
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{items: make(map[int]T)}
}

// Insert assigns the next id, stores the record built by build and returns
// it. build runs under the collection lock so a concurrent List never
// observes a partially written record.
func (c *Collection[T]) Insert(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	item := build(c.seq)
	c.items[c.seq] = item
	c.order = append(c.order, c.seq)
	return item
}

// Get returns the record for id, or false when absent.
func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// List returns all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
