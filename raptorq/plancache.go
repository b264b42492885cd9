package raptorq

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"

	"github.com/rq-fec/raptorq/internal/solver"
)

// encodePlan serializes a solved plan's operation log and the ordered list
// of ISIs it was built against into a single byte slice suitable for the
// plan cache, optionally LZ4-compressing the operation log per
// SetCompression. The wire format is a single leading codec tag byte
// (0x00=None, 0x01=LZ4) followed by a 4-byte ISI count, the ISIs
// themselves, and the (possibly compressed) operation log — see DESIGN.md's
// "Compression codec selection marker" decision.
func encodePlan(codec CompressionCodec, isis []uint32, ops []solver.Op) ([]byte, error) {
	raw := solver.Marshal(ops)

	var body []byte
	var tag byte
	switch codec {
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(raw); err != nil {
			return nil, errors.Wrap(err, "raptorq: compressing plan")
		}
		if err := w.Close(); err != nil {
			return nil, errors.Wrap(err, "raptorq: closing plan compressor")
		}
		body = buf.Bytes()
		tag = 0x01
	default:
		body = raw
		tag = 0x00
	}

	out := make([]byte, 0, 1+4+4*len(isis)+len(body))
	out = append(out, tag)
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(len(isis)))
	out = append(out, tmp[:]...)
	for _, isi := range isis {
		binary.LittleEndian.PutUint32(tmp[:], isi)
		out = append(out, tmp[:]...)
	}
	out = append(out, body...)
	return out, nil
}

// decodePlan reverses encodePlan.
func decodePlan(data []byte) (isis []uint32, ops []solver.Op, err error) {
	if len(data) < 1+4 {
		return nil, nil, errors.New("raptorq: truncated cached plan")
	}
	tag := data[0]
	count := binary.LittleEndian.Uint32(data[1:5])
	pos := 5
	if pos+int(count)*4 > len(data) {
		return nil, nil, errors.New("raptorq: truncated cached plan isi list")
	}
	isis = make([]uint32, count)
	for i := range isis {
		isis[i] = binary.LittleEndian.Uint32(data[pos : pos+4])
		pos += 4
	}
	body := data[pos:]

	var raw []byte
	switch tag {
	case 0x01:
		r := lz4.NewReader(bytes.NewReader(body))
		raw, err = io.ReadAll(r)
		if err != nil {
			return nil, nil, errors.Wrap(err, "raptorq: decompressing cached plan")
		}
	default:
		raw = body
	}

	ops, err = solver.Unmarshal(raw)
	if err != nil {
		return nil, nil, errors.Wrap(err, "raptorq: unmarshaling cached plan")
	}
	return isis, ops, nil
}
