package hashtable

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// DoubleKey indexes values by a (k1, k2) pair: an outer probing
	// table whose values are inner probing tables. An inner table
	// exists iff at least one pair under its k1 is stored; it is
	// detached the moment it empties.
	DoubleKey[V any] struct {
		outer *LinearProbe[*LinearProbe[V]]
		count int

		innerSizes []int
		innerHash  HashFunc
	}

	PairOption[V any] func(*DoubleKey[V], *[]Option[*LinearProbe[V]])

	pairIterator[V any] struct {
		outer Iterator[*LinearProbe[V]]
		inner Iterator[V]
	}
)

var _ Iterator[int] = (*pairIterator[int])(nil)

// WithOuterSizes sets the outer table's capacity sequence.
func WithOuterSizes[V any](sizes []int) PairOption[V] {
	return func(_ *DoubleKey[V], outer *[]Option[*LinearProbe[V]]) {
		*outer = append(*outer, WithSizes[*LinearProbe[V]](sizes))
	}
}

// WithOuterHash sets the hash strategy for first keys.
func WithOuterHash[V any](hash HashFunc) PairOption[V] {
	return func(_ *DoubleKey[V], outer *[]Option[*LinearProbe[V]]) {
		*outer = append(*outer, WithHash[*LinearProbe[V]](hash))
	}
}

// WithInnerSizes sets the capacity sequence used by every inner table.
func WithInnerSizes[V any](sizes []int) PairOption[V] {
	return func(d *DoubleKey[V], _ *[]Option[*LinearProbe[V]]) {
		d.innerSizes = sizes
	}
}

// WithInnerHash sets the hash strategy for second keys.
func WithInnerHash[V any](hash HashFunc) PairOption[V] {
	return func(d *DoubleKey[V], _ *[]Option[*LinearProbe[V]]) {
		d.innerHash = hash
	}
}

func NewDoubleKey[V any](opts ...PairOption[V]) *DoubleKey[V] {
	var (
		d     = &DoubleKey[V]{innerSizes: DefaultSizes, innerHash: PolynomialHash}
		outer []Option[*LinearProbe[V]]
	)

	for _, opt := range opts {
		opt(d, &outer)
	}

	d.outer = NewLinearProbe[*LinearProbe[V]](outer...)

	return d
}

func (d *DoubleKey[V]) Get(k1, k2 string) (V, error) {
	inner, err := d.outer.Get(k1)
	if err != nil {
		var zero V
		return zero, err
	}

	return inner.Get(k2)
}

// Set stores the value under (k1, k2), creating and attaching an inner
// table on first use of k1. A Full failure from the inner table aborts
// the whole Set and leaves prior state unchanged.
func (d *DoubleKey[V]) Set(k1, k2 string, value V) error {
	var created bool

	inner, err := d.outer.Get(k1)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		inner = NewLinearProbe[V](WithSizes[V](d.innerSizes), WithHash[V](d.innerHash))

		if err := d.outer.Set(k1, inner); err != nil {
			return fmt.Errorf("attaching table for %q: %w", k1, err)
		}

		created = true
	case err != nil:
		return err
	}

	// Count only first insertions of the full pair, not updates.
	fresh := created || !inner.Contains(k2)

	if err := inner.Set(k2, value); err != nil {
		if created {
			// Never leave an empty inner table behind.
			_ = d.outer.Delete(k1)
		}

		return fmt.Errorf("setting %q under %q: %w", k2, k1, err)
	}

	if fresh {
		d.count++
	}

	return nil
}

// Delete removes the pair and detaches the inner table if it emptied.
func (d *DoubleKey[V]) Delete(k1, k2 string) error {
	inner, err := d.outer.Get(k1)
	if err != nil {
		return err
	}

	if err := inner.Delete(k2); err != nil {
		return err
	}

	d.count--

	if inner.Len() == 0 {
		return d.outer.Delete(k1)
	}

	return nil
}

func (d *DoubleKey[V]) Contains(k1, k2 string) bool {
	_, err := d.Get(k1, k2)
	return err == nil
}

// Keys returns all first keys.
func (d *DoubleKey[V]) Keys() []string {
	return d.outer.Keys()
}

// KeysOf returns all second keys stored under k1.
func (d *DoubleKey[V]) KeysOf(k1 string) ([]string, error) {
	inner, err := d.outer.Get(k1)
	if err != nil {
		return nil, err
	}

	return inner.Keys(), nil
}

// Values returns every value across all inner tables, flattened in
// outer iteration order then inner iteration order.
func (d *DoubleKey[V]) Values() []V {
	var (
		values = make([]V, 0, d.count)
		iter   = d.IterValues()
	)

	for iter.Next() {
		values = append(values, iter.Entry().Value)
	}

	return values
}

// ValuesOf returns the values stored under k1 only.
func (d *DoubleKey[V]) ValuesOf(k1 string) ([]V, error) {
	inner, err := d.outer.Get(k1)
	if err != nil {
		return nil, err
	}

	return inner.Values(), nil
}

// IterValues walks every (k2, value) entry lazily across inner tables.
func (d *DoubleKey[V]) IterValues() Iterator[V] {
	return &pairIterator[V]{outer: d.outer.Iterator()}
}

func (d *DoubleKey[V]) Len() int { return d.count }

// TableSize is the outer table's current capacity.
func (d *DoubleKey[V]) TableSize() int { return d.outer.Capacity() }

func (it *pairIterator[V]) Next() bool {
	for {
		if it.inner != nil && it.inner.Next() {
			return true
		}

		if !it.outer.Next() {
			return false
		}

		it.inner = it.outer.Entry().Value.Iterator()
	}
}

func (it *pairIterator[V]) Entry() Entry[V] {
	return it.inner.Entry()
}

// String dumps the outer slots with nested-table markers.
// Debugging aid, not a stable format.
func (d *DoubleKey[V]) String() string {
	var b strings.Builder

	for i, s := range d.outer.array {
		if s == nil {
			fmt.Fprintf(&b, "%d: <empty>\n", i)
			continue
		}

		fmt.Fprintf(&b, "%d: %s (%d entries)\n", i, s.key, s.value.Len())

		for _, line := range strings.Split(strings.TrimRight(s.value.String(), "\n"), "\n") {
			fmt.Fprintf(&b, "|   %s\n", line)
		}
	}

	return b.String()
}
