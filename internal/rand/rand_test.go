package rand

import (
	"testing"

	"github.com/rq-fec/raptorq/internal/params"
)

func TestRandIsDeterministic(t *testing.T) {
	a := Rand(12345, 3, 1000)
	b := Rand(12345, 3, 1000)
	if a != b {
		t.Fatalf("Rand must be a pure function of its inputs, got %d and %d", a, b)
	}
	if a >= 1000 {
		t.Fatalf("Rand(y,i,m) must be < m, got %d", a)
	}
}

func TestGetIdxsWithinBounds(t *testing.T) {
	p, ok := params.New(40)
	if !ok {
		t.Fatal("params.New(40) failed")
	}
	for isi := uint32(0); isi < p.KPadded+10; isi++ {
		idxs := GetIdxs(p, isi)
		if len(idxs) == 0 {
			t.Fatalf("isi=%d: GetIdxs returned no columns", isi)
		}
		for _, idx := range idxs {
			if idx >= p.L {
				t.Fatalf("isi=%d: column %d out of range [0,%d)", isi, idx, p.L)
			}
		}
	}
}
