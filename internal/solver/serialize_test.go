package solver

import (
	"testing"

	"github.com/rq-fec/raptorq/internal/matrix"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	a := matrix.New(4, 4)
	for i := 0; i < 4; i++ {
		a.Set(i, i, 1)
	}
	a.Set(1, 0, 1)
	a.Set(2, 1, 1)

	tags := make([]RowTag, 4)
	_, log, result := Solve(a, tags, nil)
	if result != Done {
		t.Fatalf("expected Done, got %v", result)
	}

	encoded := Marshal(log.Ops())
	decoded, err := Unmarshal(encoded)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded) != len(log.Ops()) {
		t.Fatalf("op count mismatch: got %d want %d", len(decoded), len(log.Ops()))
	}
	for i, op := range log.Ops() {
		d := decoded[i]
		if d.Type != op.Type || d.Row1 != op.Row1 || d.Row2 != op.Row2 || d.Scalar != op.Scalar {
			t.Fatalf("op %d mismatch: got %+v want %+v", i, d, op)
		}
	}
}
