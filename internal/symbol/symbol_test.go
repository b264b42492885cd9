package symbol

import (
	"testing"

	"github.com/rq-fec/raptorq/internal/matrix"
	"github.com/rq-fec/raptorq/internal/params"
)

func TestEncodeIsDeterministicAndSized(t *testing.T) {
	p, ok := params.New(20)
	if !ok {
		t.Fatal("params.New(20) failed")
	}
	c := matrix.New(int(p.L), 4)
	for r := 0; r < c.Rows(); r++ {
		copy(c.Row(r), []byte{byte(r), byte(r * 2), byte(r * 3), byte(r * 5)})
	}
	// encoding isi 0 should at least be deterministic and correctly sized
	out1 := Encode(p, c, 0)
	out2 := Encode(p, c, 0)
	if len(out1) != 4 {
		t.Fatalf("expected T=4 bytes, got %d", len(out1))
	}
	for i := range out1 {
		if out1[i] != out2[i] {
			t.Fatal("Encode must be deterministic for the same isi")
		}
	}
}
