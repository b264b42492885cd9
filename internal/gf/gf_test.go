package gf

import "testing"

func TestMulDivInverse(t *testing.T) {
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			prod := Mul(uint8(a), uint8(b))
			got := Div(prod, uint8(b))
			if got != uint8(a) {
				t.Fatalf("Div(Mul(%d,%d), %d) = %d, want %d", a, b, b, got, a)
			}
		}
		inv := Inverse(uint8(a))
		if Mul(uint8(a), inv) != 1 {
			t.Fatalf("Mul(%d, Inverse(%d)=%d) != 1", a, a, inv)
		}
	}
}

func TestMulZero(t *testing.T) {
	for a := 0; a < 256; a++ {
		if Mul(uint8(a), 0) != 0 || Mul(0, uint8(a)) != 0 {
			t.Fatalf("Mul involving 0 must be 0, a=%d", a)
		}
	}
}

func TestExpLogRoundTrip(t *testing.T) {
	for a := 1; a < 256; a++ {
		l := Log(uint8(a))
		if Exp(int(l)) != uint8(a) {
			t.Fatalf("Exp(Log(%d)=%d) = %d, want %d", a, l, Exp(int(l)), a)
		}
	}
}

func TestRowScaledAddXorMatchesScalar(t *testing.T) {
	src := make([]byte, 200)
	for i := range src {
		src[i] = byte(i * 37)
	}
	for c := 0; c < 256; c++ {
		want := make([]byte, len(src))
		got := make([]byte, len(src))
		rowScaledAddXorScalar(want, src, uint8(c))
		RowScaledAddXor(got, src, uint8(c))
		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("c=%d i=%d: scalar=%d dispatched=%d", c, i, want[i], got[i])
			}
		}
	}
}
