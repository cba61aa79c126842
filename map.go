// Package chainmap implements an in-memory hash table with separate
// chaining, instrumented for collision and timing analysis.
package chainmap

// ChainMap is a hash table resolving collisions by separate chaining: each
// bucket holds an insertion-ordered chain of entries. It grows by doubling
// (or stepping to the next prime) once the load factor crosses the
// configured threshold, rehashing every entry in one pass. The table owns
// its entries exclusively; it is not safe for concurrent use.
type ChainMap[K comparable, V any] struct {
	table[K, V]
}

// Returns a new table. The requested capacity rounds up to a power of two,
// or to a prime under WithPrimeGrowth.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *ChainMap[K, V] {
	var cm ChainMap[K, V]
	cm.init(capacity, opts...)

	return &cm
}

// Inserts a new key. Fails with ErrDuplicateKey if the key is present;
// existing values are never silently overwritten.
func (cm *ChainMap[K, V]) Insert(key K, value V) error {
	if !cm.put(key, value) {
		return ErrDuplicateKey
	}

	return nil
}

// Looks a key up. Read-only: never resizes, never touches counters.
func (cm *ChainMap[K, V]) Get(key K) (V, bool) {
	return cm.get(key)
}

// Overwrites the value of an existing key. Fails with ErrNotFound if the
// key is absent. Size and capacity are unchanged either way.
func (cm *ChainMap[K, V]) Update(key K, value V) error {
	if !cm.update(key, value) {
		return ErrNotFound
	}

	return nil
}

// Removes a key and returns the value it held, or ErrNotFound. Deleting
// never shrinks the bucket array.
func (cm *ChainMap[K, V]) Delete(key K) (V, error) {
	value, ok := cm.delete(key)
	if !ok {
		return cm.emptyV, ErrNotFound
	}

	return value, nil
}

// Number of entries stored.
func (cm *ChainMap[K, V]) Len() int {
	return cm.size
}

// Current number of buckets.
func (cm *ChainMap[K, V]) Capacity() int {
	return cm.capacity
}

// Ratio of entries to buckets, in [0, n].
func (cm *ChainMap[K, V]) LoadFactor() float64 {
	return cm.loadFactor()
}

// Running count of inserts that landed in a non-empty chain.
func (cm *ChainMap[K, V]) Collisions() uint64 {
	return cm.collisions
}

// Zeroes the collision counter, scoping subsequent counts to one
// measurement phase. Entries are untouched.
func (cm *ChainMap[K, V]) ResetCollisions() {
	cm.collisions = 0
}

// Per-bucket chain lengths, indexed by slot.
func (cm *ChainMap[K, V]) ChainLengths() []int {
	return cm.chainLengths()
}

// Snapshot of the table's occupancy and collision state.
func (cm *ChainMap[K, V]) Stats() Stats {
	return cm.stats()
}
