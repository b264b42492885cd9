package solver

import "github.com/rq-fec/raptorq/internal/matrix"

// OpType tags the kind of row operation recorded during solving, mirroring
// original_source's Operation_type enum (Operation.hpp).
type OpType int

const (
	OpSwap OpType = iota
	OpAddMul
	OpDiv
	OpBlock
	OpReorder
)

// Op is a single recorded row operation. Only the fields relevant to its
// Type are meaningful, matching the tagged-union shape of the C++
// Operation_Swap/Add_Mul/Div/Block/Reorder hierarchy collapsed into one Go
// struct (a sum type via explicit tag, not an interface hierarchy, since
// replay needs no dynamic dispatch beyond a single switch).
type Op struct {
	Type   OpType
	Row1   int
	Row2   int
	Scalar byte
	Block  *matrix.Dense // for OpBlock: the multiplier applied to the top-left submatrix
	Order  []int         // for OpReorder: permutation of row indices
}

// Log is the ordered sequence of operations a solve produced. Replaying it
// against any compatible matrix reproduces the same reduction, which is how
// the decoder's plan cache (internal/cache) turns a solved Plan into
// something reusable for other inputs with identical erasure patterns.
type Log struct {
	ops []Op
}

func (l *Log) swap(r1, r2 int) {
	if r1 == r2 {
		return
	}
	l.ops = append(l.ops, Op{Type: OpSwap, Row1: r1, Row2: r2})
}

func (l *Log) addMul(dst, src int, c byte) {
	if c == 0 {
		return
	}
	l.ops = append(l.ops, Op{Type: OpAddMul, Row1: dst, Row2: src, Scalar: c})
}

func (l *Log) div(row int, c byte) {
	if c == 1 {
		return
	}
	l.ops = append(l.ops, Op{Type: OpDiv, Row1: row, Scalar: c})
}

func (l *Log) block(rowOff, colOff int, b *matrix.Dense) {
	l.ops = append(l.ops, Op{Type: OpBlock, Row1: rowOff, Row2: colOff, Block: b})
}

func (l *Log) reorder(order []int) {
	l.ops = append(l.ops, Op{Type: OpReorder, Order: append([]int(nil), order...)})
}

// Ops returns the recorded operations in order.
func (l *Log) Ops() []Op { return l.ops }

// Replay applies the recorded operations to m in order, matching each
// Operation subclass's build_mtx in the C++ original.
func Replay(ops []Op, m *matrix.Dense) {
	for _, op := range ops {
		switch op.Type {
		case OpSwap:
			m.SwapRows(op.Row1, op.Row2)
		case OpAddMul:
			m.AddMulRow(op.Row1, op.Row2, op.Scalar)
		case OpDiv:
			m.DivRow(op.Row1, op.Scalar)
		case OpBlock:
			sub := m.SubBlock(op.Row1, op.Row2, op.Block.Rows(), op.Block.Cols())
			product := matrix.Mul(op.Block, sub)
			m.SetSubBlock(op.Row1, op.Row2, product)
		case OpReorder:
			applyReorder(m, op.Order)
		}
	}
}

// applyReorder permutes the first len(order) rows of m so that row i of the
// result is row order[i] of the original, matching Operation_Reorder.
func applyReorder(m *matrix.Dense, order []int) {
	src := make([][]byte, len(order))
	for i, o := range order {
		src[i] = append([]byte(nil), m.Row(o)...)
	}
	for i, row := range src {
		copy(m.Row(i), row)
	}
}
