// Package rand implements RFC 6330's deterministic pseudo-random generator
// Rand(y,i,m), the per-ISI Tuple derivation, and the LT column-index walk
// (GetIdxs) used by both the precode matrix's G_ENC rows and the repair
// symbol generator. Grounded on original_source's Parameters.hpp
// (tuple()/get_idxs()) and Rand.hpp (V0..V3 table mixing).
package rand

import "github.com/rq-fec/raptorq/internal/params"

// Rand implements RFC 6330's Rand(y, i, m): mix y and i through the four
// V-tables, then reduce mod m.
func Rand(y uint32, i uint32, m uint32) uint32 {
	x0 := (y + i) & 0xff
	x1 := ((y >> 8) + i) & 0xff
	x2 := ((y >> 16) + i) & 0xff
	x3 := ((y >> 24) + i) & 0xff
	mixed := v0Table[x0] ^ v1Table[x1] ^ v2Table[x2] ^ v3Table[x3]
	return mixed % m
}

// Tuple holds the six values RFC 6330 derives per-ISI to walk the LT graph.
type Tuple struct {
	D, A, B   uint32
	D1, A1, B1 uint32
}

// ForISI derives the Tuple for a given internal symbol ID, per
// Parameters::tuple.
func ForISI(p params.Params, isi uint32) Tuple {
	j := uint32(p.J)
	a := 53591 + j*997
	if a%2 == 0 {
		a++
	}
	b1 := 10267 * (j + 1)
	y := b1 + isi*a

	v := Rand(y, 0, 1<<20)
	d := params.Deg(v, p.W)
	ta := 1 + Rand(y, 1, p.W-1)
	tb := Rand(y, 2, p.W)

	var d1 uint32 = 2
	if d < 4 {
		d1 = 2 + Rand(isi, 3, 2)
	}
	ta1 := 1 + Rand(isi, 4, p.P1-1)
	tb1 := Rand(isi, 5, p.P1)

	return Tuple{D: d, A: ta, B: tb, D1: d1, A1: ta1, B1: tb1}
}

// GetIdxs returns the column indices (into the W+P LT submatrix) that
// internal symbol isi's LT/PI row touches, in walk order. Mirrors
// Parameters::get_idxs / the index-collecting half of encode().
func GetIdxs(p params.Params, isi uint32) []uint32 {
	t := ForISI(p, isi)
	idxs := make([]uint32, 0, t.D+t.D1)

	b := t.B
	idxs = append(idxs, b)
	for j := uint32(1); j < t.D; j++ {
		b = (b + t.A) % p.W
		idxs = append(idxs, b)
	}

	b1 := t.B1
	for b1 >= p.P {
		b1 = (b1 + t.A1) % p.P1
	}
	idxs = append(idxs, p.W+b1)
	for j := uint32(1); j < t.D1; j++ {
		b1 = (b1 + t.A1) % p.P1
		for b1 >= p.P {
			b1 = (b1 + t.A1) % p.P1
		}
		idxs = append(idxs, p.W+b1)
	}

	return idxs
}
