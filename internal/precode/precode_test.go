package precode

import (
	"testing"

	"github.com/rq-fec/raptorq/internal/params"
)

func TestBuildShape(t *testing.T) {
	p, ok := params.New(20)
	if !ok {
		t.Fatal("params.New(20) failed")
	}
	a := Build(p, 5)
	if a.Rows() != int(p.L+5) || a.Cols() != int(p.L) {
		t.Fatalf("got %dx%d, want %dx%d", a.Rows(), a.Cols(), p.L+5, p.L)
	}
}

func TestGENCRowsNonEmpty(t *testing.T) {
	p, ok := params.New(20)
	if !ok {
		t.Fatal("params.New(20) failed")
	}
	a := Build(p, 0)
	for row := p.S + uint32(p.H); row < p.L; row++ {
		found := false
		for col := 0; col < a.Cols(); col++ {
			if a.At(int(row), col) != 0 {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("G_ENC row %d has no non-zero entries", row)
		}
	}
}
