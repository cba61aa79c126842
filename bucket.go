package chainmap

import "slices"

type entry[K comparable, V any] struct {
	key   K
	value V
}

// bucket is one chain of the table: entries sharing a slot, kept in
// insertion order. At most one entry per key.
type bucket[K comparable, V any] struct {
	entries []entry[K, V]
}

// Returns the position of the key within the chain, or -1.
func (b *bucket[K, V]) find(key K) int {
	for i := range b.entries {
		if b.entries[i].key == key {
			return i
		}
	}

	return -1
}

// Appends the entry unless the key is already chained.
func (b *bucket[K, V]) insert(key K, value V) bool {
	if b.find(key) >= 0 {
		return false
	}

	b.entries = append(b.entries, entry[K, V]{key: key, value: value})

	return true
}

// Overwrites the value in place, key and position unchanged.
func (b *bucket[K, V]) update(key K, value V) bool {
	i := b.find(key)
	if i < 0 {
		return false
	}

	b.entries[i].value = value

	return true
}

// Removes the entry, preserving the relative order of the rest.
func (b *bucket[K, V]) remove(key K) (V, bool) {
	i := b.find(key)
	if i < 0 {
		var zero V
		return zero, false
	}

	value := b.entries[i].value
	b.entries = slices.Delete(b.entries, i, i+1)

	return value, true
}

func (b *bucket[K, V]) len() int {
	return len(b.entries)
}
