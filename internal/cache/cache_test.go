package cache

import "testing"

func TestAddAndGet(t *testing.T) {
	d := New(1 << 20)
	k := Key{MatrixSize: 10, Lost: 1, LostBitmask: []bool{true, false}}
	if !d.Add(k, "plan-a", 100) {
		t.Fatal("Add should succeed with plenty of budget")
	}
	v, ok := d.Get(k)
	if !ok || v != "plan-a" {
		t.Fatalf("Get after Add should hit, got %v %v", v, ok)
	}
}

func TestGetMiss(t *testing.T) {
	d := New(1 << 20)
	_, ok := d.Get(Key{MatrixSize: 5})
	if ok {
		t.Fatal("Get on empty cache should miss")
	}
}

func TestEvictionUnderPressure(t *testing.T) {
	d := New(300)
	keys := []Key{
		{MatrixSize: 1}, {MatrixSize: 2}, {MatrixSize: 3},
	}
	for _, k := range keys {
		d.Add(k, "v", 100)
	}
	// repeatedly touching key 0 should protect it relative to the others
	for i := 0; i < 5; i++ {
		d.Get(keys[0])
	}
	d.Add(Key{MatrixSize: 4}, "v", 100)
	if _, ok := d.Get(keys[0]); !ok {
		t.Fatal("frequently accessed entry should survive eviction pressure")
	}
}

func TestKeyOrdering(t *testing.T) {
	a := Key{MatrixSize: 5, Lost: 1}
	b := Key{MatrixSize: 5, Lost: 2}
	if !a.Less(b) {
		t.Fatal("a should sort before b (fewer lost symbols)")
	}
	if b.Less(a) {
		t.Fatal("ordering must be antisymmetric")
	}
}
