package hashtable

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to a slot index for the given capacity.
// It must be a pure function of (key, capacity). The strategy is
// supplied at construction and fixed for the table's lifetime.
type HashFunc func(key string, capacity int) int

const (
	hashBase = 31
	hashSeed = 31415
)

// DefaultSizes is the built-in ascending capacity sequence.
// Each entry roughly doubles the previous prime-like size.
var DefaultSizes = []int{
	5, 13, 29, 53, 97, 193, 389, 769, 1543, 3079, 6151, 12289,
	24593, 49157, 98317, 196613, 393241, 786433, 1572869,
}

// PolynomialHash accumulates the key's characters with a rolling
// coefficient. Byte-for-byte compatible with previously persisted
// layouts built on the same scheme.
func PolynomialHash(key string, capacity int) int {
	// A one-slot table has exactly one place to probe; the rolling
	// coefficient would otherwise step modulo zero.
	if capacity < 2 {
		return 0
	}

	var (
		value int
		a     = hashSeed
	)

	for _, c := range key {
		value = (int(c) + a*value) % capacity
		a = a * hashBase % (capacity - 1)
	}

	return value
}

// XXHash is an alternative strategy on xxhash. Faster on long keys,
// but not layout-compatible with PolynomialHash.
func XXHash(key string, capacity int) int {
	return int(xxhash.Sum64String(key) % uint64(capacity))
}
