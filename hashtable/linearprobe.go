package hashtable

import (
	"fmt"
	"strings"
)

type (
	// LinearProbe resolves collisions by scanning forward from the
	// hashed slot, wrapping at most once per operation. Deletion
	// re-places the remainder of the cluster, so no tombstones exist.
	LinearProbe[V any] struct {
		hash    HashFunc
		sizes   []int
		sizeIdx int
		count   int
		array   []*slot[V]
	}

	slot[V any] struct {
		key   string
		value V
	}

	Option[V any] func(*LinearProbe[V])

	linearIterator[V any] struct {
		array []*slot[V]
		pos   int
		cur   *slot[V]
	}
)

var (
	_ Table[int]    = (*LinearProbe[int])(nil)
	_ Iterator[int] = (*linearIterator[int])(nil)
)

// WithSizes sets the capacity sequence. The table starts at the first
// entry and only ever grows along the sequence.
func WithSizes[V any](sizes []int) Option[V] {
	return func(t *LinearProbe[V]) {
		t.sizes = sizes
	}
}

// WithHash sets the hash strategy for the table's lifetime.
func WithHash[V any](hash HashFunc) Option[V] {
	return func(t *LinearProbe[V]) {
		t.hash = hash
	}
}

func NewLinearProbe[V any](opts ...Option[V]) *LinearProbe[V] {
	t := &LinearProbe[V]{hash: PolynomialHash, sizes: DefaultSizes}

	for _, opt := range opts {
		opt(t)
	}

	t.array = make([]*slot[V], t.sizes[0])

	return t
}

// probe scans forward from hash(key) until it finds the key, an empty
// slot (usable only when inserting), or has visited every slot. The
// full-scan case always fails explicitly rather than wrapping again.
func (t *LinearProbe[V]) probe(key string, forInsert bool) (int, error) {
	pos := t.hash(key, len(t.array))

	for i := 0; i < len(t.array); i++ {
		s := t.array[pos]

		if s == nil {
			if forInsert {
				return pos, nil
			}
			return 0, ErrKeyNotFound
		}

		if s.key == key {
			return pos, nil
		}

		pos = (pos + 1) % len(t.array)
	}

	if forInsert {
		return 0, ErrTableFull
	}

	return 0, ErrKeyNotFound
}

func (t *LinearProbe[V]) Get(key string) (V, error) {
	pos, err := t.probe(key, false)
	if err != nil {
		var zero V
		return zero, err
	}

	return t.array[pos].value, nil
}

// Set inserts or updates the pair. It returns ErrTableFull once the
// capacity sequence is exhausted and no free slot remains.
func (t *LinearProbe[V]) Set(key string, value V) error {
	pos, err := t.probe(key, true)
	if err != nil {
		return err
	}

	if t.array[pos] == nil {
		t.count++
	}

	t.array[pos] = &slot[V]{key: key, value: value}

	// Grow past half load while the sequence still has sizes left.
	// Once exhausted the table keeps serving until probing genuinely
	// finds no slot, which Set surfaces as ErrTableFull above.
	if t.count > len(t.array)/2 && t.sizeIdx+1 < len(t.sizes) {
		t.grow()
	}

	return nil
}

// grow rehashes every pair into the next configured capacity. The new
// array is fully built before it replaces the old one, so a caller
// never observes a partial rehash.
func (t *LinearProbe[V]) grow() {
	next := make([]*slot[V], t.sizes[t.sizeIdx+1])

	for _, s := range t.array {
		if s == nil {
			continue
		}

		pos := t.hash(s.key, len(next))
		for next[pos] != nil {
			pos = (pos + 1) % len(next)
		}

		next[pos] = s
	}

	t.array = next
	t.sizeIdx++
}

// Delete clears the key's slot and re-places every entry up to the
// next empty slot. Keys whose probe chain ran through the cleared slot
// stay reachable.
func (t *LinearProbe[V]) Delete(key string) error {
	pos, err := t.probe(key, false)
	if err != nil {
		return err
	}

	t.array[pos] = nil
	t.count--

	pos = (pos + 1) % len(t.array)
	for t.array[pos] != nil {
		s := t.array[pos]
		t.array[pos] = nil

		// Cannot fail: the slot we just vacated is free.
		newPos, _ := t.probe(s.key, true)
		t.array[newPos] = s

		pos = (pos + 1) % len(t.array)
	}

	return nil
}

func (t *LinearProbe[V]) Contains(key string) bool {
	_, err := t.Get(key)
	return err == nil
}

func (t *LinearProbe[V]) Len() int { return t.count }

func (t *LinearProbe[V]) Capacity() int { return len(t.array) }

// Keys returns every stored key in slot order.
func (t *LinearProbe[V]) Keys() []string {
	keys := make([]string, 0, t.count)

	for _, s := range t.array {
		if s != nil {
			keys = append(keys, s.key)
		}
	}

	return keys
}

// Values returns every stored value in slot order.
func (t *LinearProbe[V]) Values() []V {
	values := make([]V, 0, t.count)

	for _, s := range t.array {
		if s != nil {
			values = append(values, s.value)
		}
	}

	return values
}

func (t *LinearProbe[V]) Iterator() Iterator[V] {
	return &linearIterator[V]{array: t.array}
}

func (it *linearIterator[V]) Next() bool {
	for it.pos < len(it.array) {
		s := it.array[it.pos]
		it.pos++

		if s != nil {
			it.cur = s
			return true
		}
	}

	return false
}

func (it *linearIterator[V]) Entry() Entry[V] {
	return Entry[V]{Key: it.cur.key, Value: it.cur.value}
}

// String dumps slot index -> pair. Debugging aid, not a stable format.
func (t *LinearProbe[V]) String() string {
	var b strings.Builder

	for i, s := range t.array {
		if s == nil {
			fmt.Fprintf(&b, "%d: <empty>\n", i)
			continue
		}

		fmt.Fprintf(&b, "%d: %s = %v\n", i, s.key, s.value)
	}

	return b.String()
}
