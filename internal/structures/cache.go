package structures

// Cache is a bounded map used for derived projections. When the capacity is
// reached an arbitrary entry is evicted; entries are recomputable so no
// eviction order needs to be maintained.
type Cache[K comparable, V any] struct {
	data     map[K]V
	capacity int
}

func NewCache[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		data:     make(map[K]V),
		capacity: capacity,
	}
}

func (c *Cache[K, V]) Put(key K, value V) {
	if _, exists := c.data[key]; !exists && len(c.data) >= c.capacity {
		for k := range c.data {
			delete(c.data, k)
			break
		}
	}

	c.data[key] = value
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	val, exists := c.data[key]
	return val, exists
}

func (c *Cache[K, V]) Remove(key K) {
	delete(c.data, key)
}

func (c *Cache[K, V]) Clear() {
	c.data = make(map[K]V)
}

func (c *Cache[K, V]) Length() int {
	return len(c.data)
}
