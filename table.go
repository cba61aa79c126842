package chainmap

import (
	"hash/maphash"
)

const (
	defaultMaxLoadFactor = 0.75
	growthFactor         = 2
)

type table[K comparable, V any] struct {
	buckets []bucket[K, V]

	capacity   int
	size       int
	collisions uint64

	maxLoadFactor float64
	primeGrowth   bool

	hashFunc HashFunc[K]

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Override the load factor above which the table grows. Must be in (0, 1].
func WithMaxLoadFactor[K comparable, V any](lf float64) Option[K, V] {
	return func(t *table[K, V]) {
		t.maxLoadFactor = lf
	}
}

// Size the bucket array to primes instead of powers of two. Prime capacities
// trade the masked slot computation for a plain modulo, which smooths out
// clustering under weak hash functions.
func WithPrimeGrowth[K comparable, V any]() Option[K, V] {
	return func(t *table[K, V]) {
		t.primeGrowth = true
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	if t.maxLoadFactor <= 0 || t.maxLoadFactor > 1 {
		t.maxLoadFactor = defaultMaxLoadFactor
	}

	if capacity < 1 {
		capacity = 1
	}

	if t.primeGrowth {
		capacity = NextPrime(capacity)
	} else {
		capacity = int(NextPowerOf2(uint32(capacity)))
	}

	t.buckets = make([]bucket[K, V], capacity)
	t.capacity = capacity
}

// Faster modulo via bitwise AND when the capacity is a power of two.
func (t *table[K, V]) slot(key K) int {
	h := t.hashFunc(key)
	if t.capacity&(t.capacity-1) == 0 {
		return int(h & uint64(t.capacity-1))
	}

	return int(h % uint64(t.capacity))
}

func (t *table[K, V]) get(key K) (V, bool) {
	b := &t.buckets[t.slot(key)]

	if i := b.find(key); i >= 0 {
		return b.entries[i].value, true
	}

	return t.emptyV, false
}

// Inserts the key, rejecting duplicates. A successful insert into a
// non-empty chain counts as one collision event. Growth is checked only
// after a successful insert.
func (t *table[K, V]) put(key K, value V) bool {
	b := &t.buckets[t.slot(key)]
	occupied := b.len() > 0

	if !b.insert(key, value) {
		return false
	}

	if occupied {
		t.collisions++
	}
	t.size++

	if t.loadFactor() > t.maxLoadFactor {
		t.grow()
	}

	return true
}

// Overwrites the value of an existing key. Never resizes.
func (t *table[K, V]) update(key K, value V) bool {
	return t.buckets[t.slot(key)].update(key, value)
}

// Removes the key and returns its value. The table never shrinks.
func (t *table[K, V]) delete(key K) (V, bool) {
	value, ok := t.buckets[t.slot(key)].remove(key)
	if ok {
		t.size--
	}

	return value, ok
}

// Reassigns every entry to its slot under the grown capacity. Runs to
// completion before the triggering insert returns; no caller ever observes
// a half-rehashed table. Relocations are not collision events.
func (t *table[K, V]) grow() {
	next := t.capacity * growthFactor
	if t.primeGrowth {
		next = NextPrime(next)
	}

	old := t.buckets
	t.buckets = make([]bucket[K, V], next)
	t.capacity = next

	for i := range old {
		for _, e := range old[i].entries {
			b := &t.buckets[t.slot(e.key)]
			b.entries = append(b.entries, e)
		}
	}
}

func (t *table[K, V]) loadFactor() float64 {
	return float64(t.size) / float64(t.capacity)
}

func (t *table[K, V]) chainLengths() []int {
	lengths := make([]int, t.capacity)
	for i := range t.buckets {
		lengths[i] = t.buckets[i].len()
	}

	return lengths
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:       t.size,
		Capacity:   t.capacity,
		LoadFactor: t.loadFactor(),
		Collisions: t.collisions,
	}

	for i := range t.buckets {
		n := t.buckets[i].len()
		if n == 0 {
			continue
		}

		s.OccupiedBuckets++
		s.MaxChainLength = max(s.MaxChainLength, n)
	}

	if s.OccupiedBuckets > 0 {
		s.MeanChainLength = float64(t.size) / float64(s.OccupiedBuckets)
	}

	return s
}
