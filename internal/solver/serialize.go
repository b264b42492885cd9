package solver

import (
	"encoding/binary"
	"fmt"

	"github.com/rq-fec/raptorq/internal/matrix"
)

// Marshal encodes an operation log into a compact binary form, matching the
// teacher's general style of simple length/tag-prefixed framing (see
// binary.go's wire helpers in DESIGN.md) rather than a general-purpose
// encoding package: the op log's shape (five small, fixed-layout variants)
// doesn't warrant reflection-based serialization.
func Marshal(ops []Op) []byte {
	buf := make([]byte, 0, len(ops)*9)
	var tmp [4]byte
	putU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(tmp[:], v)
		buf = append(buf, tmp[:]...)
	}

	putU32(uint32(len(ops)))
	for _, op := range ops {
		buf = append(buf, byte(op.Type))
		switch op.Type {
		case OpSwap:
			putU32(uint32(op.Row1))
			putU32(uint32(op.Row2))
		case OpAddMul:
			putU32(uint32(op.Row1))
			putU32(uint32(op.Row2))
			buf = append(buf, op.Scalar)
		case OpDiv:
			putU32(uint32(op.Row1))
			buf = append(buf, op.Scalar)
		case OpBlock:
			putU32(uint32(op.Row1))
			putU32(uint32(op.Row2))
			putU32(uint32(op.Block.Rows()))
			putU32(uint32(op.Block.Cols()))
			for r := 0; r < op.Block.Rows(); r++ {
				buf = append(buf, op.Block.Row(r)...)
			}
		case OpReorder:
			putU32(uint32(len(op.Order)))
			for _, o := range op.Order {
				putU32(uint32(o))
			}
		}
	}
	return buf
}

// Unmarshal decodes a log previously produced by Marshal.
func Unmarshal(data []byte) ([]Op, error) {
	r := &reader{data: data}
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	ops := make([]Op, 0, n)
	for i := uint32(0); i < n; i++ {
		tag, err := r.u8()
		if err != nil {
			return nil, err
		}
		op := Op{Type: OpType(tag)}
		switch op.Type {
		case OpSwap:
			row1, err := r.u32()
			if err != nil {
				return nil, err
			}
			row2, err := r.u32()
			if err != nil {
				return nil, err
			}
			op.Row1, op.Row2 = int(row1), int(row2)
		case OpAddMul:
			row1, err := r.u32()
			if err != nil {
				return nil, err
			}
			row2, err := r.u32()
			if err != nil {
				return nil, err
			}
			scalar, err := r.u8()
			if err != nil {
				return nil, err
			}
			op.Row1, op.Row2, op.Scalar = int(row1), int(row2), scalar
		case OpDiv:
			row1, err := r.u32()
			if err != nil {
				return nil, err
			}
			scalar, err := r.u8()
			if err != nil {
				return nil, err
			}
			op.Row1, op.Scalar = int(row1), scalar
		case OpBlock:
			rowOff, err := r.u32()
			if err != nil {
				return nil, err
			}
			colOff, err := r.u32()
			if err != nil {
				return nil, err
			}
			rows, err := r.u32()
			if err != nil {
				return nil, err
			}
			cols, err := r.u32()
			if err != nil {
				return nil, err
			}
			block := matrix.New(int(rows), int(cols))
			for rr := 0; rr < int(rows); rr++ {
				row, err := r.bytes(int(cols))
				if err != nil {
					return nil, err
				}
				copy(block.Row(rr), row)
			}
			op.Row1, op.Row2, op.Block = int(rowOff), int(colOff), block
		case OpReorder:
			count, err := r.u32()
			if err != nil {
				return nil, err
			}
			order := make([]int, count)
			for j := range order {
				v, err := r.u32()
				if err != nil {
					return nil, err
				}
				order[j] = int(v)
			}
			op.Order = order
		default:
			return nil, fmt.Errorf("solver: unknown op tag %d", tag)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

type reader struct {
	data []byte
	pos  int
}

func (r *reader) u32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, fmt.Errorf("solver: truncated operation log")
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) u8() (byte, error) {
	if r.pos+1 > len(r.data) {
		return 0, fmt.Errorf("solver: truncated operation log")
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, fmt.Errorf("solver: truncated operation log")
	}
	v := r.data[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}
