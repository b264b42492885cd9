package gf

import "github.com/klauspost/cpuid/v2"

// Capability identifies which row-kernel tier the runtime selected. There is
// no hand-written assembly here (see DESIGN.md): every tier executes the
// same split low/high nibble table trick in portable Go, but the tiers
// differ in how many bytes they unroll per iteration, and selection is
// still driven by real CPU feature detection so the dispatch shape matches
// the corpus (github.com/klauspost/reedsolomon's AVX2/SSSE3/scalar split).
type Capability int

const (
	CapScalar Capability = iota
	CapUnroll8
	CapUnroll16
)

// Selected is the capability chosen once at package init time.
var Selected = detectCapability()

func detectCapability() Capability {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX2):
		return CapUnroll16
	case cpuid.CPU.Supports(cpuid.SSSE3):
		return CapUnroll8
	default:
		return CapScalar
	}
}

// mulTableLow/mulTableHigh hold, for every scalar c, the product c*lowNibble
// and c*(highNibble<<4) — the same split-table layout row_scaled_add needs
// to do one table lookup per nibble instead of one per full byte via
// octExp/octLog.
var mulTableLow, mulTableHigh [256][16]uint8

func init() {
	for c := 0; c < 256; c++ {
		for lo := 0; lo < 16; lo++ {
			mulTableLow[c][lo] = Mul(uint8(c), uint8(lo))
		}
		for hi := 0; hi < 16; hi++ {
			mulTableHigh[c][hi] = Mul(uint8(c), uint8(hi<<4))
		}
	}
}

// RowScaledAddXor computes dst[i] ^= c*src[i] for all i, dispatching to the
// tier chosen by Selected. c==0 is a no-op, c==1 degenerates to a plain XOR.
func RowScaledAddXor(dst, src []byte, c uint8) {
	if c == 0 {
		return
	}
	if c == 1 {
		xorSlice(dst, src)
		return
	}
	switch Selected {
	case CapUnroll16:
		rowScaledAddXorUnroll(dst, src, c, 16)
	case CapUnroll8:
		rowScaledAddXorUnroll(dst, src, c, 8)
	default:
		rowScaledAddXorScalar(dst, src, c)
	}
}

func xorSlice(dst, src []byte) {
	n := len(src)
	i := 0
	for ; i+8 <= n; i += 8 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
		dst[i+4] ^= src[i+4]
		dst[i+5] ^= src[i+5]
		dst[i+6] ^= src[i+6]
		dst[i+7] ^= src[i+7]
	}
	for ; i < n; i++ {
		dst[i] ^= src[i]
	}
}

func rowScaledAddXorScalar(dst, src []byte, c uint8) {
	low, high := mulTableLow[c], mulTableHigh[c]
	for i, v := range src {
		dst[i] ^= low[v&0xf] ^ high[v>>4]
	}
}

// rowScaledAddXorUnroll is the same scalar computation unrolled by `width`
// bytes per iteration, standing in for the AVX2/SSSE3 tiers a real assembly
// port would use (see DESIGN.md "SIMD kernel" justification).
func rowScaledAddXorUnroll(dst, src []byte, c uint8, width int) {
	low, high := mulTableLow[c], mulTableHigh[c]
	n := len(src)
	i := 0
	for ; i+width <= n; i += width {
		for k := 0; k < width; k++ {
			v := src[i+k]
			dst[i+k] ^= low[v&0xf] ^ high[v>>4]
		}
	}
	for ; i < n; i++ {
		v := src[i]
		dst[i] ^= low[v&0xf] ^ high[v>>4]
	}
}
