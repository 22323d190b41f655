package lazy

import "fmt"

// Cache is a store for memoized results. Implementations are not required
// to be safe for concurrent use.
type Cache[K, V any] interface {
	// Get returns the cached value for key, if present.
	Get(key K) (V, bool)
	// Put records the value for key, overwriting any previous entry.
	Put(key K, value V)
}

// MapCache backs a cache with a Go map; it works for any comparable key.
type MapCache[K comparable, V any] struct {
	entries map[K]V
}

// NewMapCache returns an empty map-backed cache.
func NewMapCache[K comparable, V any]() *MapCache[K, V] {
	return &MapCache[K, V]{entries: make(map[K]V)}
}

// Get implements Cache.
func (c *MapCache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]

	return v, ok
}

// Put implements Cache.
func (c *MapCache[K, V]) Put(key K, value V) {
	c.entries[key] = value
}

// Len returns the number of cached entries.
func (c *MapCache[K, V]) Len() int { return len(c.entries) }

// SliceCache is a dense table for non-negative int keys. It grows on demand
// and beats a map when the key space is small and contiguous (DP tables,
// node indices).
type SliceCache[V any] struct {
	values []V
	set    []bool
}

// NewSliceCache returns a slice-backed cache pre-sized for keys below hint.
func NewSliceCache[V any](hint int) *SliceCache[V] {
	if hint < 0 {
		hint = 0
	}

	return &SliceCache[V]{values: make([]V, hint), set: make([]bool, hint)}
}

// Get implements Cache. Negative keys panic.
func (c *SliceCache[V]) Get(key int) (V, bool) {
	if key < 0 {
		panic(fmt.Sprintf("lazy: negative SliceCache key %d", key))
	}
	if key >= len(c.set) || !c.set[key] {
		var zero V

		return zero, false
	}

	return c.values[key], true
}

// Put implements Cache, growing the table as needed. Negative keys panic.
func (c *SliceCache[V]) Put(key int, value V) {
	if key < 0 {
		panic(fmt.Sprintf("lazy: negative SliceCache key %d", key))
	}
	for key >= len(c.set) {
		var zero V
		c.values = append(c.values, zero)
		c.set = append(c.set, false)
	}

	c.values[key] = value
	c.set[key] = true
}

// KeyMappedCache adapts an inner Cache[M, V] to keys of type K via a
// projection. Useful when the natural key (a struct, a pair) must be
// collapsed to what the inner cache indexes by.
type KeyMappedCache[K, M, V any] struct {
	inner  Cache[M, V]
	mapKey func(K) M
}

// NewKeyMappedCache wraps inner so it is addressed by K through mapKey.
func NewKeyMappedCache[K, M, V any](inner Cache[M, V], mapKey func(K) M) *KeyMappedCache[K, M, V] {
	return &KeyMappedCache[K, M, V]{inner: inner, mapKey: mapKey}
}

// Get implements Cache.
func (c *KeyMappedCache[K, M, V]) Get(key K) (V, bool) {
	return c.inner.Get(c.mapKey(key))
}

// Put implements Cache.
func (c *KeyMappedCache[K, M, V]) Put(key K, value V) {
	c.inner.Put(c.mapKey(key), value)
}
