// Package symbol implements the LT symbol generator: combining the solved
// intermediate symbols into any source or repair encoded symbol (systematic
// RaptorQ encoding). Grounded on original_source's
// Precode_Matrix_Solver.hpp::encode and the teacher's ltEncode/findLTIndices
// (raptor.go, not carried forward — same "walk tuple, XOR contributions"
// shape, different tuple/degree math).
package symbol

import (
	"github.com/rq-fec/raptorq/internal/matrix"
	"github.com/rq-fec/raptorq/internal/params"
	"github.com/rq-fec/raptorq/internal/rand"
)

// Encode returns the T-byte encoded symbol for internal symbol id isi,
// combining the relevant rows of the solved intermediate symbol matrix C
// (L rows x T columns).
func Encode(p params.Params, c *matrix.Dense, isi uint32) []byte {
	out := make([]byte, c.Cols())
	for _, idx := range rand.GetIdxs(p, isi) {
		row := c.Row(int(idx))
		for i, v := range row {
			out[i] ^= v
		}
	}
	return out
}
