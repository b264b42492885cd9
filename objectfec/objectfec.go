// Package objectfec is a minimal demonstration layer over raptorq: it
// splits an arbitrary byte slice into one or more equal-shaped blocks and
// drives one raptorq.Encoder/raptorq.Decoder per block. It is explicitly not
// an implementation of RFC 6330's OTI/sub-blocking scheme (that layer is out
// of scope, see spec.md) — it exists only to give the core codec a concrete,
// testable multi-block caller, generalizing the teacher's
// partitionBytes/equalizeBlockLengths (block.go) from a single R10 block to
// an arbitrary number of same-(K,T) RaptorQ blocks.
package objectfec

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/rq-fec/raptorq/raptorq"
)

// ObjectDescriptor carries everything a caller needs to request symbols for
// and eventually reassemble an encoded Object.
type ObjectDescriptor struct {
	K      int // source symbols per block
	T      int // symbol size in bytes
	Blocks int
	Length int // original, unpadded byte length
}

// Object is a collection of same-(K,T) RaptorQ blocks produced from one
// input byte slice, generalizing the teacher's partitionBytes to several
// independently-encodable blocks instead of one.
type Object struct {
	desc     ObjectDescriptor
	encoders []*raptorq.Encoder
}

// Encode splits data into blocks of k symbols of t bytes each (the last
// block is zero-padded to fill a full block, mirroring
// equalizeBlockLengths's short-block padding), and builds one
// raptorq.Encoder per block.
func Encode(data []byte, k, t int, opts ...raptorq.Option) (*Object, error) {
	if k <= 0 || t <= 0 {
		return nil, errors.Wrap(raptorq.ErrWrongInput, "k and t must be positive")
	}
	blockBytes := k * t
	numBlocks := (len(data) + blockBytes - 1) / blockBytes
	if numBlocks == 0 {
		numBlocks = 1
	}

	encoders := make([]*raptorq.Encoder, numBlocks)
	for b := 0; b < numBlocks; b++ {
		start := b * blockBytes
		end := start + blockBytes
		var chunk []byte
		if start < len(data) {
			if end > len(data) {
				end = len(data)
			}
			chunk = data[start:end]
		}
		padded := make([]byte, blockBytes)
		copy(padded, chunk)

		source := make([][]byte, k)
		for i := range source {
			source[i] = padded[i*t : (i+1)*t]
		}
		enc, err := raptorq.NewEncoder(source, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "objectfec: encoding block %d", b)
		}
		encoders[b] = enc
	}

	return &Object{
		desc:     ObjectDescriptor{K: k, T: t, Blocks: numBlocks, Length: len(data)},
		encoders: encoders,
	}, nil
}

// Descriptor returns the object's shape, which a real transport would send
// out of band alongside encoded symbols.
func (o *Object) Descriptor() ObjectDescriptor { return o.desc }

// Symbol returns one encoded symbol from the given block.
func (o *Object) Symbol(block int, esi uint32) ([]byte, error) {
	if block < 0 || block >= len(o.encoders) {
		return nil, errors.Wrap(raptorq.ErrWrongInput, "block index out of range")
	}
	return o.encoders[block].Symbol(esi)
}

// Reassemble drives one raptorq.Decoder per block using the supplied
// per-block symbol sets (block index -> esi -> symbol data). Blocks decode
// concurrently (at most maxConcurrentBlocks at once via
// errgroup.SetLimit), matching this demo layer's use of the same
// cooperative-concurrency contract (C12) the core Decoder uses internally
// for plan retries; the first block to fail cancels the rest. Recovered
// blocks are concatenated back into the original byte length.
func Reassemble(ctx context.Context, desc ObjectDescriptor, symbols []map[uint32][]byte, opts ...raptorq.Option) ([]byte, error) {
	if len(symbols) != desc.Blocks {
		return nil, errors.Wrap(raptorq.ErrWrongInput, "symbol set count does not match descriptor")
	}

	blocks := make([][]byte, desc.Blocks)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentBlocks)
	for b := 0; b < desc.Blocks; b++ {
		b := b
		g.Go(func() error {
			dec, err := raptorq.NewDecoder(desc.K, desc.T, opts...)
			if err != nil {
				return errors.Wrapf(err, "objectfec: building decoder for block %d", b)
			}
			for esi, data := range symbols[b] {
				if err := dec.AddSymbol(esi, data); err != nil {
					return errors.Wrapf(err, "objectfec: block %d esi %d", b, esi)
				}
			}
			if err := dec.Decode(gctx); err != nil {
				return errors.Wrapf(err, "objectfec: decoding block %d", b)
			}
			recovered := make([]byte, 0, desc.K*desc.T)
			for i := 0; i < desc.K; i++ {
				sym, err := dec.Source(uint32(i))
				if err != nil {
					return errors.Wrapf(err, "objectfec: reading block %d symbol %d", b, i)
				}
				recovered = append(recovered, sym...)
			}
			blocks[b] = recovered
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]byte, 0, desc.Blocks*desc.K*desc.T)
	for _, b := range blocks {
		out = append(out, b...)
	}
	if len(out) > desc.Length {
		out = out[:desc.Length]
	}
	return out, nil
}

// maxConcurrentBlocks bounds how many blocks Reassemble decodes at once,
// the demo layer's analogue of max_block_decoder_concurrency.
const maxConcurrentBlocks = 4
