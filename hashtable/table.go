package hashtable

// This package defines the probing table engines,
// the in-memory structures indexing values by one
// or two string keys.

import "errors"

type (
	Table[V any] interface {
		Sizable
		Iterable[V]

		Get(string) (V, error)
		Set(string, V) error
		Delete(string) error
		Contains(string) bool
		Keys() []string
		Values() []V
	}

	Sizable interface {
		Len() int
		Capacity() int
	}

	Iterable[V any] interface {
		Iterator() Iterator[V]
	}

	Iterator[V any] interface {
		Next() bool
		Entry() Entry[V]
	}

	Entry[V any] struct {
		Key   string
		Value V
	}
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrTableFull   = errors.New("table full")
)
