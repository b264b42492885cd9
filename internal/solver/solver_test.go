package solver

import (
	"testing"

	"github.com/rq-fec/raptorq/internal/matrix"
)

func identityOrNot(rows [][]byte) *matrix.Dense {
	n := len(rows)
	m := matrix.New(n, n)
	for r, row := range rows {
		copy(m.Row(r), row)
	}
	return m
}

func TestSolveSimpleSystem(t *testing.T) {
	a := identityOrNot([][]byte{
		{1, 1, 0},
		{0, 1, 1},
		{1, 1, 1},
	})
	tags := make([]RowTag, 3)
	order, log, result := Solve(a, tags, nil)
	if result != Done {
		t.Fatalf("expected Done, got %v", result)
	}
	if len(order) != 3 {
		t.Fatalf("expected column order of length 3, got %d", len(order))
	}
	if len(log.Ops()) == 0 {
		t.Fatal("expected a non-empty operation log")
	}
}

func TestSolveSingularFails(t *testing.T) {
	a := identityOrNot([][]byte{
		{1, 1, 0},
		{1, 1, 0},
		{0, 0, 1},
	})
	tags := make([]RowTag, 3)
	_, _, result := Solve(a, tags, nil)
	if result != Failed {
		t.Fatalf("expected Failed for a singular system, got %v", result)
	}
}

func TestSolveStopsOnCancellation(t *testing.T) {
	a := identityOrNot([][]byte{
		{1, 1, 0},
		{0, 1, 1},
		{1, 0, 1},
	})
	tags := make([]RowTag, 3)
	calls := 0
	stop := func() bool {
		calls++
		return true
	}
	_, _, result := Solve(a, tags, stop)
	if result != Stopped {
		t.Fatalf("expected Stopped, got %v", result)
	}
}

func TestReplayReproducesReduction(t *testing.T) {
	a := identityOrNot([][]byte{
		{1, 1, 0},
		{0, 1, 1},
		{1, 1, 1},
	})
	data := matrix.New(3, 1)
	copy(data.Row(0), []byte{5})
	copy(data.Row(1), []byte{9})
	copy(data.Row(2), []byte{3})

	tags := make([]RowTag, 3)
	_, log, result := Solve(a.Clone(), tags, nil)
	if result != Done {
		t.Fatal("solve should succeed")
	}
	Replay(log.Ops(), data)
	if data.Rows() != 3 {
		t.Fatal("replay should not change row count")
	}
	// x0^x1 = 5, x1^x2 = 9, x0^x1^x2 = 3  =>  x = (10, 15, 6)
	want := []byte{10, 15, 6}
	for i, v := range want {
		if data.At(i, 0) != v {
			t.Fatalf("replayed solution row %d: got %d want %d", i, data.At(i, 0), v)
		}
	}
}
