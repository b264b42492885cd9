package raptorq

import (
	"github.com/pkg/errors"

	"github.com/rq-fec/raptorq/internal/matrix"
	"github.com/rq-fec/raptorq/internal/params"
	"github.com/rq-fec/raptorq/internal/precode"
	"github.com/rq-fec/raptorq/internal/solver"
	"github.com/rq-fec/raptorq/internal/symbol"
)

// Encoder produces systematic RaptorQ symbols for one block of K source
// symbols of T bytes each. The first K symbols it emits (ESI 0..K-1) are
// the source data unchanged; ESI >= K are repair symbols generated from
// the solved intermediate symbols (C7).
type Encoder struct {
	cfg    *config
	params params.Params
	source [][]byte
	c      *matrix.Dense // solved intermediate symbols, L rows x T cols
}

// NewEncoder builds an Encoder for the given source symbols, which must all
// share the same length T.
func NewEncoder(source [][]byte, opts ...Option) (*Encoder, error) {
	if len(source) == 0 {
		return nil, errors.Wrap(ErrWrongInput, "no source symbols")
	}
	t := len(source[0])
	for _, s := range source {
		if len(s) != t {
			return nil, errors.Wrap(ErrWrongInput, "source symbols must be equal length")
		}
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	p, ok := params.New(uint32(len(source)))
	if !ok {
		return nil, errors.Wrap(ErrInitialization, "K out of supported range")
	}

	a := precode.Build(p, 0)
	d := matrix.New(int(p.L), t)
	for isi := p.S + uint32(p.H); isi < p.L; isi++ {
		row := isi - p.S - uint32(p.H)
		if row < uint32(len(source)) {
			copy(d.Row(int(isi)), source[row])
		}
		// padding symbols (K <= row < K') stay zero.
	}

	tags := make([]solver.RowTag, p.L)
	for r := p.S; r < p.S+uint32(p.H); r++ {
		tags[r] = solver.RowTag{HDPC: true}
	}

	order, log, result := solver.Solve(a, tags, nil)
	if result != solver.Done {
		return nil, errors.New("raptorq: could not solve precode matrix for this K (should not happen for K <= MaxK)")
	}
	_ = order
	solver.Replay(log.Ops(), d)

	cfg.logger.Debug("encoder ready", "k", len(source), "kPadded", p.KPadded, "t", t)

	return &Encoder{cfg: cfg, params: p, source: source, c: d}, nil
}

// K returns the number of source symbols.
func (e *Encoder) K() int { return len(e.source) }

// T returns the symbol size in bytes.
func (e *Encoder) T() int { return len(e.source[0]) }

// Symbol returns the encoded symbol for the given ESI: for esi < K this is
// the original source symbol; for esi >= K it is a generated repair symbol.
func (e *Encoder) Symbol(esi uint32) ([]byte, error) {
	if esi < uint32(len(e.source)) {
		return e.source[esi], nil
	}
	repairIdx := esi - uint32(len(e.source))
	isi := e.params.KPadded + repairIdx
	return symbol.Encode(e.params, e.c, isi), nil
}
