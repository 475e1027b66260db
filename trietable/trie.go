// Package trietable implements a dynamic-depth trie of fixed-width
// tables. Levels are created only where keys actually collide, so key
// length is unbounded without pre-sizing.
package trietable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hikelab/trailindex/util"
)

const (
	// Width is the slot count per node: one slot per character class
	// plus a terminal slot for keys exhausted at this depth.
	Width = 27

	terminal = Width - 1
)

type (
	// Table is one trie node. The root sits at level 0; children are
	// created lazily one level deeper on the first collision in a
	// slot. Operations recurse at most len(key)+1 levels deep: the
	// terminal slot separates prefix collisions at the shorter key's
	// length.
	Table[V any] struct {
		level int
		count int
		slots [Width]slot[V]
	}

	// slot is a tagged variant: empty, a leaf pair, or a child node.
	slot[V any] struct {
		kind  slotKind
		key   string
		value V
		child *Table[V]
	}

	slotKind uint8
)

const (
	empty slotKind = iota
	leaf
	node
)

var ErrKeyNotFound = errors.New("key not found")

func New[V any]() *Table[V] {
	return &Table[V]{}
}

// hash picks the slot for key at this node's depth. Keys shorter than
// the depth land in the dedicated terminal slot, which no character
// can hash to.
func (t *Table[V]) hash(key string) int {
	if t.level < len(key) {
		return int(key[t.level]) % (Width - 1)
	}

	return terminal
}

func (t *Table[V]) Get(key string) (V, error) {
	var zero V

	for cur := t; ; {
		s := &cur.slots[cur.hash(key)]

		switch s.kind {
		case empty:
			return zero, ErrKeyNotFound
		case node:
			cur = s.child
		default:
			if s.key == key {
				return s.value, nil
			}

			return zero, ErrKeyNotFound
		}
	}
}

// Set stores the pair. An occupied slot with a different key splits
// into a child node one level deeper holding both pairs.
func (t *Table[V]) Set(key string, value V) {
	s := &t.slots[t.hash(key)]

	switch s.kind {
	case empty:
		*s = slot[V]{kind: leaf, key: key, value: value}
		t.count++
	case node:
		// Count by delta so deep overwrites do not inflate ancestors.
		before := s.child.count
		s.child.Set(key, value)
		t.count += s.child.count - before
	default:
		if s.key == key {
			s.value = value
			return
		}

		child := &Table[V]{level: t.level + 1}
		child.Set(s.key, s.value)
		child.Set(key, value)

		*s = slot[V]{kind: node, child: child}
		t.count++
	}
}

// Delete removes the pair. A child left holding exactly one leaf is
// collapsed back into this node's slot, keeping the trie shallow as
// keys churn. The node itself never collapses into its parent.
func (t *Table[V]) Delete(key string) error {
	s := &t.slots[t.hash(key)]

	switch s.kind {
	case empty:
		return ErrKeyNotFound
	case leaf:
		if s.key != key {
			return ErrKeyNotFound
		}

		*s = slot[V]{}
		t.count--

		return nil
	}

	if err := s.child.Delete(key); err != nil {
		return err
	}

	t.count--

	switch s.child.count {
	case 0:
		*s = slot[V]{}
	case 1:
		if k, v, ok := s.child.soleLeaf(); ok {
			*s = slot[V]{kind: leaf, key: k, value: v}
		}
	}

	return nil
}

// soleLeaf finds the single remaining pair under a count-1 node.
func (t *Table[V]) soleLeaf() (string, V, bool) {
	for i := range t.slots {
		switch s := &t.slots[i]; s.kind {
		case leaf:
			return s.key, s.value, true
		case node:
			return s.child.soleLeaf()
		}
	}

	var zero V
	return "", zero, false
}

func (t *Table[V]) Contains(key string) bool {
	_, err := t.Get(key)
	return err == nil
}

// GetLocation returns the slot indices traversed from this node to the
// key's leaf. A fresh path is allocated per call.
func (t *Table[V]) GetLocation(key string) ([]int, error) {
	path := make([]int, 0, len(key)+1)

	for cur := t; ; {
		pos := cur.hash(key)
		s := &cur.slots[pos]

		switch s.kind {
		case empty:
			return nil, ErrKeyNotFound
		case node:
			path = append(path, pos)
			cur = s.child
		default:
			if s.key == key {
				return append(path, pos), nil
			}

			return nil, ErrKeyNotFound
		}
	}
}

// SortKeys returns every key beneath this node in lexicographic order.
// The terminal slot is emitted first: a key exhausted at this depth is
// a prefix of everything else here. The remaining slots are visited in
// the order of the characters 'a'..'z' that hash to them.
func (t *Table[V]) SortKeys() []string {
	return t.appendSorted(make([]string, 0, t.count))
}

func (t *Table[V]) appendSorted(keys []string) []string {
	if t.slots[terminal].kind == leaf {
		keys = append(keys, t.slots[terminal].key)
	}

	for i := 0; i < Width-1; i++ {
		pos := util.Modulo(int('a')+i, Width-1)

		switch s := &t.slots[pos]; s.kind {
		case leaf:
			keys = append(keys, s.key)
		case node:
			keys = s.child.appendSorted(keys)
		}
	}

	return keys
}

// Keys returns every key beneath this node, order not guaranteed.
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, t.count)

	t.Each(func(key string, _ V) {
		keys = append(keys, key)
	})

	return keys
}

// Values returns every value beneath this node, order not guaranteed.
func (t *Table[V]) Values() []V {
	values := make([]V, 0, t.count)

	t.Each(func(_ string, value V) {
		values = append(values, value)
	})

	return values
}

// Each visits every pair beneath this node without materialising a
// list, order not guaranteed.
func (t *Table[V]) Each(visit func(string, V)) {
	for i := range t.slots {
		switch s := &t.slots[i]; s.kind {
		case leaf:
			visit(s.key, s.value)
		case node:
			s.child.Each(visit)
		}
	}
}

// Len is the running count of leaves reachable under this node.
func (t *Table[V]) Len() int { return t.count }

// Level is this node's depth below the root.
func (t *Table[V]) Level() int { return t.level }

// String dumps occupied slots with nested-table markers, one level of
// indentation per depth. Debugging aid, not a stable format.
func (t *Table[V]) String() string {
	var b strings.Builder
	t.dump(&b, 0)
	return b.String()
}

func (t *Table[V]) dump(b *strings.Builder, depth int) {
	indent := strings.Repeat("|   ", depth)

	for i := range t.slots {
		switch s := &t.slots[i]; s.kind {
		case leaf:
			fmt.Fprintf(b, "%s%d: %s = %v\n", indent, i, s.key, s.value)
		case node:
			fmt.Fprintf(b, "%s%d: * (%d)\n", indent, i, s.child.count)
			s.child.dump(b, depth+1)
		}
	}
}
