// Package precode builds the RFC 6330 precode constraint matrix A: the
// LDPC1/LDPC2 bands, the MT*Gamma HDPC rows, the identity blocks, and the
// G_ENC rows encoding each source symbol's LT dependencies. Grounded
// verbatim on original_source's Precode_Matrix_Init.hpp.
package precode

import (
	"github.com/rq-fec/raptorq/internal/gf"
	"github.com/rq-fec/raptorq/internal/matrix"
	"github.com/rq-fec/raptorq/internal/params"
	"github.com/rq-fec/raptorq/internal/rand"
)

// Build constructs the (L+overhead) x L constraint matrix A for the given
// parameters, with `overhead` extra all-zero rows reserved for repair
// symbols; Build leaves them zero and the caller fills them in itself.
func Build(p params.Params, overhead uint32) *matrix.Dense {
	rows := p.L + overhead
	a := matrix.New(int(rows), int(p.L))

	initLDPC1(a, p.S, p.B)
	a.SetIdentity(0, int(p.B), int(p.S))
	initLDPC2(a, p.W, p.S, p.P)
	initHDPC(a, p)
	a.SetIdentity(int(p.S), int(p.L-uint32(p.H)), int(p.H))
	addGENC(a, p)

	return a
}

// initLDPC1 fills the SxB band of S*S circulant submatrices, per
// Precode_Matrix_Init::init_LDPC1.
func initLDPC1(a *matrix.Dense, s, b uint32) {
	for row := uint32(0); row < s; row++ {
		for col := uint32(0); col < b; col++ {
			submtx := col / s
			zero := true
			if row == col%s ||
				row == (col+submtx+1)%s ||
				row == (col+2*(submtx+1))%s {
				zero = false
			}
			if !zero {
				a.Set(int(row), int(col), 1)
			}
		}
	}
}

// initLDPC2 fills the SxP band (offset by skip columns) with two
// consecutive ones per row, per Precode_Matrix_Init::init_LDPC2.
func initLDPC2(a *matrix.Dense, skip, rows, cols uint32) {
	for row := uint32(0); row < rows; row++ {
		start := row % cols
		for col := uint32(0); col < cols; col++ {
			if col == start || col == (start+1)%cols {
				a.Set(int(row), int(skip+col), 1)
			}
		}
	}
}

// makeMT builds the H x (K'+S) MT matrix, per Precode_Matrix_Init::make_MT.
func makeMT(p params.Params) *matrix.Dense {
	cols := int(p.KPadded) + int(p.S)
	mt := matrix.New(int(p.H), cols)
	for row := 0; row < int(p.H); row++ {
		for col := 0; col < cols-1; col++ {
			tmp := rand.Rand(uint32(col+1), 6, uint32(p.H))
			other := (tmp + rand.Rand(uint32(col+1), 7, uint32(p.H)-1) + 1) % uint32(p.H)
			if uint32(row) == tmp || uint32(row) == other {
				mt.Set(row, col, 1)
			}
		}
		mt.Set(row, cols-1, gf.Exp(row))
	}
	return mt
}

// makeGamma builds the upper-triangular (K'+S)x(K'+S) Gamma matrix, per
// Precode_Matrix_Init::make_GAMMA.
func makeGamma(p params.Params) *matrix.Dense {
	n := int(p.KPadded) + int(p.S)
	g := matrix.New(n, n)
	for row := 0; row < n; row++ {
		for col := 0; col <= row; col++ {
			g.Set(row, col, gf.Exp((row-col)%255))
		}
	}
	return g
}

// initHDPC writes the HDPC rows (MT*Gamma) into A at (S, 0), per
// Precode_Matrix_Init::init_HDPC.
func initHDPC(a *matrix.Dense, p params.Params) {
	mt := makeMT(p)
	gamma := makeGamma(p)
	hdpc := matrix.Mul(mt, gamma)
	a.SetSubBlock(int(p.S), 0, hdpc)
}

// addGENC sets the ones at each source symbol's LT dependency columns, per
// Precode_Matrix_Init::add_G_ENC.
func addGENC(a *matrix.Dense, p params.Params) {
	for row := p.S + uint32(p.H); row < p.L; row++ {
		isi := row - p.S - uint32(p.H)
		for _, idx := range rand.GetIdxs(p, isi) {
			a.Set(int(row), int(idx), 1)
		}
	}
}
