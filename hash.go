package chainmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

// Makes a per-table seeded hash function for any comparable key type.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// StringHashFunc hashes string keys with xxhash. Being seedless, it keeps
// bucket placement reproducible across runs, which matters when comparing
// collision counts between benchmark sessions.
func StringHashFunc() HashFunc[string] {
	return xxhash.Sum64String
}
