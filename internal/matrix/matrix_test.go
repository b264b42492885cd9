package matrix

import "testing"

func TestIdentityMulIsIdentity(t *testing.T) {
	m := New(3, 3)
	m.SetIdentity(0, 0, 3)
	b := New(3, 2)
	b.Set(0, 0, 5)
	b.Set(1, 1, 7)
	b.Set(2, 0, 9)
	out := Mul(m, b)
	for r := 0; r < 3; r++ {
		for c := 0; c < 2; c++ {
			if out.At(r, c) != b.At(r, c) {
				t.Fatalf("identity mul changed element (%d,%d): got %d want %d", r, c, out.At(r, c), b.At(r, c))
			}
		}
	}
}

func TestDivRowUndoesScale(t *testing.T) {
	m := New(1, 4)
	copy(m.Row(0), []byte{2, 4, 6, 8})
	m.DivRow(0, 2)
	want := []byte{1, 2, 3, 4}
	for i, v := range want {
		if m.At(0, i) != v {
			t.Fatalf("DivRow: got %d want %d at %d", m.At(0, i), v, i)
		}
	}
}

func TestAddMulRowIsSelfInverse(t *testing.T) {
	m := New(2, 4)
	copy(m.Row(0), []byte{1, 2, 3, 4})
	copy(m.Row(1), []byte{5, 6, 7, 8})
	orig := append([]byte(nil), m.Row(0)...)
	m.AddMulRow(0, 1, 9)
	m.AddMulRow(0, 1, 9)
	for i, v := range orig {
		if m.At(0, i) != v {
			t.Fatalf("AddMulRow applied twice with same scalar should restore original row, got %d want %d at %d", m.At(0, i), v, i)
		}
	}
}
