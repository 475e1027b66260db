package hashtable

import (
	"errors"
	"fmt"
	"testing"
)

func TestSetGet(t *testing.T) {
	table := NewLinearProbe[string]()

	if err := table.Set("bogong", "vic"); err != nil {
		t.Fatal(err)
	}

	v, err := table.Get("bogong")
	if err != nil {
		t.Fatal(err)
	}
	if v != "vic" {
		t.Errorf("Get(bogong) = %q but expected %q", v, "vic")
	}

	if _, err := table.Get("feathertop"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get(feathertop) = %v but expected ErrKeyNotFound", err)
	}
}

func TestUpdateDoesNotGrowCount(t *testing.T) {
	table := NewLinearProbe[int]()

	if err := table.Set("bogong", 1); err != nil {
		t.Fatal(err)
	}
	if err := table.Set("bogong", 2); err != nil {
		t.Fatal(err)
	}

	if table.Len() != 1 {
		t.Errorf("Len() = %d but expected 1", table.Len())
	}

	if v, _ := table.Get("bogong"); v != 2 {
		t.Errorf("Get(bogong) = %d but expected 2", v)
	}
}

// "a", "f" and "k" all hash to slot 2 in a table of capacity 5, so
// deleting the middle of the cluster must not strand the tail.
func TestDeleteKeepsProbeChain(t *testing.T) {
	table := NewLinearProbe[int](WithSizes[int]([]int{5}))

	for i, k := range []string{"a", "f", "k"} {
		if err := table.Set(k, i); err != nil {
			t.Fatal(err)
		}
	}

	if err := table.Delete("f"); err != nil {
		t.Fatal(err)
	}

	v, err := table.Get("k")
	if err != nil {
		t.Fatalf("Get(k) after deleting f: %v", err)
	}
	if v != 2 {
		t.Errorf("Get(k) = %d but expected 2", v)
	}

	if _, err := table.Get("f"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get(f) = %v but expected ErrKeyNotFound", err)
	}

	if table.Len() != 2 {
		t.Errorf("Len() = %d but expected 2", table.Len())
	}
}

func TestDeleteScenario(t *testing.T) {
	table := NewLinearProbe[int](WithSizes[int]([]int{5}))

	for i, k := range []string{"a", "b", "c"} {
		if err := table.Set(k, i); err != nil {
			t.Fatal(err)
		}
	}

	if err := table.Delete("b"); err != nil {
		t.Fatal(err)
	}

	if _, err := table.Get("c"); err != nil {
		t.Errorf("Get(c) after deleting b: %v", err)
	}
	if _, err := table.Get("a"); err != nil {
		t.Errorf("Get(a) after deleting b: %v", err)
	}
}

func TestFull(t *testing.T) {
	table := NewLinearProbe[int](WithSizes[int]([]int{5}))

	for i, k := range []string{"a", "b", "c", "d", "e"} {
		if err := table.Set(k, i); err != nil {
			t.Fatalf("Set(%s) = %v on a table with free slots", k, err)
		}
	}

	if err := table.Set("g", 5); !errors.Is(err, ErrTableFull) {
		t.Errorf("Set(g) = %v but expected ErrTableFull", err)
	}

	// The failed insert must not disturb existing pairs.
	if table.Len() != 5 {
		t.Errorf("Len() = %d but expected 5", table.Len())
	}
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		if !table.Contains(k) {
			t.Errorf("Contains(%s) = false after failed insert", k)
		}
	}
}

func TestSingleSlotSizes(t *testing.T) {
	table := NewLinearProbe[int](WithSizes[int]([]int{1}))

	if err := table.Set("a", 0); err != nil {
		t.Fatalf("Set(a) = %v on an empty one-slot table", err)
	}

	if v, err := table.Get("a"); err != nil || v != 0 {
		t.Errorf("Get(a) = %d, %v but expected 0, nil", v, err)
	}

	if err := table.Set("b", 1); !errors.Is(err, ErrTableFull) {
		t.Errorf("Set(b) = %v but expected ErrTableFull", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	table := NewLinearProbe[int]()

	if err := table.Delete("bogong"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Delete(bogong) = %v but expected ErrKeyNotFound", err)
	}
}

func TestGrowthPreservesKeys(t *testing.T) {
	table := NewLinearProbe[int]()

	const n = 60

	for i := 0; i < n; i++ {
		if err := table.Set(fmt.Sprintf("key%d", i), i); err != nil {
			t.Fatal(err)
		}
	}

	if table.Len() != n {
		t.Errorf("Len() = %d but expected %d", table.Len(), n)
	}

	// 5 -> 13 -> 29 -> 53 -> 97 -> 193 as the load crosses half.
	if table.Capacity() != 193 {
		t.Errorf("Capacity() = %d but expected 193", table.Capacity())
	}

	for i := 0; i < n; i++ {
		v, err := table.Get(fmt.Sprintf("key%d", i))
		if err != nil {
			t.Fatalf("Get(key%d) after growth: %v", i, err)
		}
		if v != i {
			t.Errorf("Get(key%d) = %d but expected %d", i, v, i)
		}
	}
}

func TestKeysValues(t *testing.T) {
	table := NewLinearProbe[int]()

	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		if err := table.Set(k, v); err != nil {
			t.Fatal(err)
		}
	}

	keys := table.Keys()
	if len(keys) != len(want) {
		t.Fatalf("Keys() returned %d keys but expected %d", len(keys), len(want))
	}
	for _, k := range keys {
		if _, ok := want[k]; !ok {
			t.Errorf("Keys() returned unexpected key %q", k)
		}
	}

	values := table.Values()
	if len(values) != len(want) {
		t.Fatalf("Values() returned %d values but expected %d", len(values), len(want))
	}
}

func TestIterator(t *testing.T) {
	table := NewLinearProbe[int]()

	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		if err := table.Set(k, v); err != nil {
			t.Fatal(err)
		}
	}

	var (
		got  = make(map[string]int)
		iter = table.Iterator()
	)

	for iter.Next() {
		e := iter.Entry()
		got[e.Key] = e.Value
	}

	if len(got) != len(want) {
		t.Fatalf("iterator yielded %d entries but expected %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("iterator yielded %s = %d but expected %d", k, got[k], v)
		}
	}
}

func TestCustomHash(t *testing.T) {
	table := NewLinearProbe[int](WithHash[int](XXHash))

	for i := 0; i < 40; i++ {
		if err := table.Set(fmt.Sprintf("key%d", i), i); err != nil {
			t.Fatal(err)
		}
	}

	for i := 0; i < 40; i++ {
		if v, err := table.Get(fmt.Sprintf("key%d", i)); err != nil || v != i {
			t.Errorf("Get(key%d) = %d, %v but expected %d", i, v, err, i)
		}
	}
}
