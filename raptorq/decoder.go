package raptorq

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/rq-fec/raptorq/internal/bitmask"
	"github.com/rq-fec/raptorq/internal/cache"
	"github.com/rq-fec/raptorq/internal/matrix"
	"github.com/rq-fec/raptorq/internal/params"
	"github.com/rq-fec/raptorq/internal/precode"
	"github.com/rq-fec/raptorq/internal/rand"
	"github.com/rq-fec/raptorq/internal/solver"
	"github.com/rq-fec/raptorq/internal/symbol"
	"github.com/rq-fec/raptorq/internal/workpool"
)

// State is the block decoder's lifecycle stage.
type State int

const (
	Receiving State = iota
	Solving
	Done
	Failed
	Stopped
)

// Report selects how Progress/WaitSync/Wait report partial decode progress,
// matching C11's report-mode parameter (spec.md/SPEC_FULL.md §4.7, §6).
type Report int

const (
	// ReportPartialFromBeginning reports the length of the largest
	// contiguous prefix of source ESIs that are ready (either received
	// directly or recovered), each time that prefix grows.
	ReportPartialFromBeginning Report = iota
	// ReportPartialAny reports each newly-ready source ESI exactly once, in
	// ascending order, without requiring contiguity.
	ReportPartialAny
	// ReportComplete reports only once, when the whole block is Done.
	ReportComplete
)

// PollResult is the {error, symbol_index} pair Progress/WaitSync/Wait
// return: Err is nil when SymbolIndex carries a genuine progress report,
// ErrNeedData when nothing new is ready yet, or ErrExiting once the
// decoder has been stopped.
type PollResult struct {
	Err         error
	SymbolIndex uint32
}

// Decoder reconstructs one block's K source symbols from a stream of
// source and/or repair symbols, mirroring original_source's Raw_Decoder
// state machine (Decoder.hpp) as described in spec.md's C11.
type Decoder struct {
	cfg    *config
	params params.Params
	k, t   int

	mu             sync.Mutex
	cond           *sync.Cond
	state          State
	holes          *bitmask.Bitmask
	known          map[uint32][]byte // isi -> symbol data, for every received symbol
	source         [][]byte          // resolved source symbols once Done
	inFlight       int               // number of concurrent Decode attempts running
	maxConcurrency int
	stopped        bool

	reportedPrefix   uint32
	reportedAny      map[uint32]bool
	completeReported bool
}

// NewDecoder builds a Decoder expecting K source symbols of T bytes each.
// Use WithReport to select the progress-reporting mode Progress/WaitSync/
// Wait use (defaults to ReportComplete).
func NewDecoder(k, t int, opts ...Option) (*Decoder, error) {
	if k <= 0 || t <= 0 {
		return nil, errors.Wrap(ErrWrongInput, "k and t must be positive")
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	p, ok := params.New(uint32(k))
	if !ok {
		return nil, errors.Wrap(ErrInitialization, "K out of supported range")
	}
	known := freshKnown(p, k, t)
	d := &Decoder{
		cfg:            cfg,
		params:         p,
		k:              k,
		t:              t,
		state:          Receiving,
		holes:          bitmask.New(uint32(k)),
		known:          known,
		maxConcurrency: 1,
		reportedAny:    make(map[uint32]bool),
	}
	d.cond = sync.NewCond(&d.mu)
	return d, nil
}

// freshKnown seeds the known-symbol map with the zero-filled padding
// symbols RFC 6330's parameter ladder fixes between K and K'.
func freshKnown(p params.Params, k, t int) map[uint32][]byte {
	known := make(map[uint32][]byte)
	for isi := uint32(k); isi < p.KPadded; isi++ {
		known[isi] = make([]byte, t)
	}
	return known
}

// isiOf maps a wire ESI to its internal symbol index: source ESIs map
// directly (with RFC 6330 padding shifting repair ISIs up by K'-K),
// repair ESIs map to K' + (esi-K).
func (d *Decoder) isiOf(esi uint32) uint32 {
	if esi < uint32(d.k) {
		return esi
	}
	return d.params.KPadded + (esi - uint32(d.k))
}

// AddSymbol feeds one received symbol into the decoder. Returns
// ErrNotNeeded if the block has already finished decoding, ErrWrongInput if
// data has the wrong length.
func (d *Decoder) AddSymbol(esi uint32, data []byte) error {
	if len(data) != d.t {
		return errors.Wrap(ErrWrongInput, "symbol has wrong length")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Done {
		return ErrNotNeeded
	}
	if d.stopped {
		return ErrExiting
	}
	isi := d.isiOf(esi)
	if _, exists := d.known[isi]; exists {
		return nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	d.known[isi] = cp
	if esi < uint32(d.k) {
		d.holes.Add(esi)
	}
	d.cfg.logger.Debug("symbol received", "esi", esi, "isi", isi, "known", len(d.known))
	d.cond.Broadcast()
	return nil
}

// DecodeAsync submits a decode attempt to the configured worker pool (either
// WithWorkPool or the process-wide pool installed by SetThreadPool) and
// returns a channel that receives the single result. If no pool is
// configured, it runs Decode synchronously on the calling goroutine and
// returns an already-filled channel, matching C11's degrade-to-synchronous
// behavior when C12 isn't in use.
func (d *Decoder) DecodeAsync(ctx context.Context) <-chan error {
	result := make(chan error, 1)
	pool := d.cfg.pool
	if pool == nil {
		result <- d.Decode(ctx)
		return result
	}
	err := pool.Submit(ctx, func(working func() bool) workpool.ExitStatus {
		if !working() {
			result <- ErrExiting
			return workpool.Stopped
		}
		result <- d.Decode(ctx)
		return workpool.Done
	})
	if err != nil {
		result <- err
	}
	return result
}

// Decode attempts to solve the block using the symbols received so far. Up
// to SetMaxConcurrency concurrent Decode calls may run against the same
// block at once, each racing with its own snapshot of known symbols (the
// "snapshot-then-compute" pattern of spec.md §9); the first to finish wins
// and the rest discard their work on their next state check. It is safe to
// call again after ErrNeedData once more symbols have arrived.
func (d *Decoder) Decode(ctx context.Context) error {
	d.mu.Lock()
	if d.state == Done {
		d.mu.Unlock()
		return nil
	}
	if d.stopped {
		d.mu.Unlock()
		return ErrExiting
	}
	if d.inFlight >= d.maxConcurrency {
		d.mu.Unlock()
		return ErrWorking
	}
	d.inFlight++
	d.state = Solving
	known := make(map[uint32][]byte, len(d.known))
	for k, v := range d.known {
		known[k] = v
	}
	p := d.params
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.inFlight--
		if d.state == Solving {
			d.state = Receiving
		}
		d.cond.Broadcast()
		d.mu.Unlock()
	}()

	key := planKey(p, known)
	if plan, ok := d.lookupCache(key); ok {
		if c, err := d.applyPlan(plan, p, known); err == nil {
			d.finish(c)
			return nil
		}
	}

	a, usedISIs, dMatrix, err := assembleSystem(p, known, d.t)
	if err != nil {
		return err
	}
	rows := a.Rows()
	tags := make([]solver.RowTag, rows)
	for r := p.S; r < p.S+uint32(p.H); r++ {
		tags[r] = solver.RowTag{HDPC: true}
	}

	stop := func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
			d.mu.Lock()
			s := d.stopped || d.state == Done
			d.mu.Unlock()
			return s
		}
	}

	_, log, result := solver.Solve(a, tags, stop)
	switch result {
	case solver.Stopped:
		d.mu.Lock()
		if d.state == Done {
			d.mu.Unlock()
			return nil
		}
		d.state = Stopped
		d.mu.Unlock()
		return ErrExiting
	case solver.Failed:
		return ErrNeedData
	}

	solver.Replay(log.Ops(), dMatrix)
	d.storeCache(key, usedISIs, log.Ops())
	d.finish(dMatrix)
	return nil
}

func (d *Decoder) finish(c *matrix.Dense) {
	source := make([][]byte, d.k)
	for isi := 0; isi < d.k; isi++ {
		source[isi] = symbol.Encode(d.params, c, uint32(isi))
	}
	d.mu.Lock()
	d.source = source
	d.state = Done
	d.cond.Broadcast()
	d.mu.Unlock()
	d.cfg.logger.Info("block decoded", "k", d.k)
}

// Poll reports the decoder's current state without blocking.
func (d *Decoder) Poll() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Stop cooperatively aborts any in-flight Decode call.
func (d *Decoder) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.cond.Broadcast()
	d.mu.Unlock()
}

// Source returns the recovered source symbol for esi once the block has
// finished decoding.
func (d *Decoder) Source(esi uint32) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != Done {
		return nil, ErrNeedData
	}
	if esi >= uint32(d.k) {
		return nil, errors.Wrap(ErrWrongInput, "esi out of range")
	}
	return d.source[esi], nil
}

// Holes reports how many source symbols are still missing.
func (d *Decoder) Holes() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.holes.Holes()
}

// SetMaxConcurrency bounds how many Decode/DecodeAsync attempts may run
// against this block at once, matching C11's set_max_concurrency(n).
func (d *Decoder) SetMaxConcurrency(n int) {
	if n < 1 {
		n = 1
	}
	d.mu.Lock()
	d.maxConcurrency = n
	d.cond.Broadcast()
	d.mu.Unlock()
}

// ClearData resets the decoder to its just-constructed state, discarding
// every received symbol and any solved result, matching C11's
// clear_data().
func (d *Decoder) ClearData() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.known = freshKnown(d.params, d.k, d.t)
	d.source = nil
	d.state = Receiving
	d.holes = bitmask.New(uint32(d.k))
	d.reportedPrefix = 0
	d.reportedAny = make(map[uint32]bool)
	d.completeReported = false
	d.cond.Broadcast()
}

// EndOfInput marks that no more symbols will arrive. If fillZeros is true
// and the block is not already Done, every still-missing source symbol is
// zero-filled and the block is forced to Done, matching C11's
// end_of_input(fill_zeros). Either way it returns the bitmask of source
// ESIs that were genuinely received (as opposed to zero-filled or
// recovered by solving).
func (d *Decoder) EndOfInput(fillZeros bool) *bitmask.Bitmask {
	d.mu.Lock()
	defer d.mu.Unlock()
	received := bitmask.New(uint32(d.k))
	for esi := uint32(0); esi < uint32(d.k); esi++ {
		if _, ok := d.known[esi]; ok {
			received.Add(esi)
		}
	}
	if fillZeros && d.state != Done {
		source := make([][]byte, d.k)
		for esi := 0; esi < d.k; esi++ {
			if data, ok := d.known[uint32(esi)]; ok {
				source[esi] = data
			} else {
				source[esi] = make([]byte, d.t)
			}
		}
		d.source = source
		d.state = Done
		d.cond.Broadcast()
	}
	return received
}

// DecodeBytes copies up to len(out) decoded bytes of the reassembled K*T
// byte object starting at fromByte, matching C11's decode_bytes(out,
// out_end, from_byte, skip) (skip is implicit in the caller's choice of
// fromByte). It requires the block to be Done.
func (d *Decoder) DecodeBytes(out []byte, fromByte int) (written int, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != Done {
		return 0, ErrNeedData
	}
	total := d.k * d.t
	if fromByte < 0 || fromByte > total {
		return 0, errors.Wrap(ErrWrongInput, "fromByte out of range")
	}
	n := len(out)
	if fromByte+n > total {
		n = total - fromByte
	}
	for i := 0; i < n; {
		pos := fromByte + i
		esi := pos / d.t
		off := pos % d.t
		chunk := d.t - off
		if chunk > n-i {
			chunk = n - i
		}
		copy(out[i:i+chunk], d.source[esi][off:off+chunk])
		i += chunk
	}
	return n, nil
}

// DecodeSymbol copies the recovered bytes of source ESI esi into out,
// matching C11's decode_symbol(out, out_end, esi).
func (d *Decoder) DecodeSymbol(out []byte, esi uint32) (int, error) {
	sym, err := d.Source(esi)
	if err != nil {
		return 0, err
	}
	return copy(out, sym), nil
}

// Progress is C11's poll(): a non-blocking check for new decode progress
// under the decoder's configured Report mode.
func (d *Decoder) Progress() PollResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.nextReportLocked()
}

// WaitSync is C11's wait_sync(): it blocks until new progress is available,
// the decoder is stopped, or ctx is done.
func (d *Decoder) WaitSync(ctx context.Context) PollResult {
	if ctx != nil {
		if done := ctx.Done(); done != nil {
			stopWatch := make(chan struct{})
			defer close(stopWatch)
			go func() {
				select {
				case <-done:
					d.mu.Lock()
					d.cond.Broadcast()
					d.mu.Unlock()
				case <-stopWatch:
				}
			}()
		}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return PollResult{Err: ErrExiting}
			default:
			}
		}
		res := d.nextReportLocked()
		if !errors.Is(res.Err, ErrNeedData) {
			return res
		}
		d.cond.Wait()
	}
}

// Wait is C11's wait(): the futureful counterpart to WaitSync, mirroring
// the encoder's precompute()/compute() synchronous-vs-futureful split
// (SPEC_FULL.md §6).
func (d *Decoder) Wait(ctx context.Context) <-chan PollResult {
	out := make(chan PollResult, 1)
	go func() { out <- d.WaitSync(ctx) }()
	return out
}

// nextReportLocked implements the three report modes over the symbols
// directly known (already-received source ESIs need no solve to be ready)
// and the Done state (every source ESI is ready once solved). Callers must
// hold d.mu.
func (d *Decoder) nextReportLocked() PollResult {
	if d.stopped {
		return PollResult{Err: ErrExiting}
	}
	switch d.cfg.report {
	case ReportComplete:
		if d.state == Done && !d.completeReported {
			d.completeReported = true
			return PollResult{SymbolIndex: uint32(d.k)}
		}
		return PollResult{Err: ErrNeedData}
	case ReportPartialFromBeginning:
		advanced := false
		for d.reportedPrefix < uint32(d.k) && d.symbolReadyLocked(d.reportedPrefix) {
			d.reportedPrefix++
			advanced = true
		}
		if advanced {
			return PollResult{SymbolIndex: d.reportedPrefix}
		}
		return PollResult{Err: ErrNeedData}
	default: // ReportPartialAny
		for esi := uint32(0); esi < uint32(d.k); esi++ {
			if d.reportedAny[esi] {
				continue
			}
			if d.symbolReadyLocked(esi) {
				d.reportedAny[esi] = true
				return PollResult{SymbolIndex: esi}
			}
		}
		return PollResult{Err: ErrNeedData}
	}
}

func (d *Decoder) symbolReadyLocked(esi uint32) bool {
	if d.state == Done {
		return true
	}
	_, ok := d.known[esi]
	return ok
}

// assembleSystem builds the (L+epsilon) x L constraint matrix and parallel
// D matrix for a solve attempt. Rows [0, S+H) are always the LDPC/HDPC
// structural rows. Rows [S+H, L) hold, for each source ISI in [0, K'):
// the fixed G_ENC row for that ISI together with its received bytes when
// the ISI is known, or (phase 0, spec.md §4.4) the LT equation and bytes
// of one not-yet-used received repair ISI substituted in when the source
// ISI is a hole. Any further received repair ISIs beyond what phase 0
// needed become epsilon extra rows [L, L+epsilon), giving the solver (and
// RFC 6330's probabilistic overhead guarantee, spec.md §8) genuine spare
// equations to fall back on instead of discarding them.
func assembleSystem(p params.Params, known map[uint32][]byte, t int) (*matrix.Dense, []uint32, *matrix.Dense, error) {
	var holeISIs []uint32
	for isi := uint32(0); isi < p.KPadded; isi++ {
		if _, ok := known[isi]; !ok {
			holeISIs = append(holeISIs, isi)
		}
	}

	var repairISIs []uint32
	for isi := range known {
		if isi >= p.KPadded {
			repairISIs = append(repairISIs, isi)
		}
	}
	sortUint32(repairISIs)

	if len(repairISIs) < len(holeISIs) {
		return nil, nil, nil, ErrNeedData
	}
	overhead := uint32(len(repairISIs) - len(holeISIs))

	full := precode.Build(p, overhead)
	rows := p.L + overhead
	a := matrix.New(int(rows), int(p.L))
	d := matrix.New(int(rows), t)

	for r := 0; r < int(p.S+uint32(p.H)); r++ {
		copy(a.Row(r), full.Row(r))
	}

	// substituted records, per row in [S+H, L), which repair ISI (if any)
	// was substituted in for that row's natural source ISI via phase 0.
	substituted := make(map[int]uint32, len(holeISIs))
	repairPos := 0
	for _, holeISI := range holeISIs {
		repISI := repairISIs[repairPos]
		repairPos++
		row := int(p.S) + int(p.H) + int(holeISI)
		rowBytes := a.Row(row)
		for c := range rowBytes {
			rowBytes[c] = 0
		}
		for _, col := range rand.GetIdxs(p, repISI) {
			a.Set(row, int(col), 1)
		}
		copy(d.Row(row), known[repISI])
		substituted[row] = repISI
	}
	for isi := uint32(0); isi < p.KPadded; isi++ {
		row := int(p.S) + int(p.H) + int(isi)
		if _, ok := substituted[row]; ok {
			continue
		}
		copy(a.Row(row), full.Row(row))
		copy(d.Row(row), known[isi])
	}

	row := int(p.L)
	for ; repairPos < len(repairISIs); repairPos++ {
		repISI := repairISIs[repairPos]
		for _, col := range rand.GetIdxs(p, repISI) {
			a.Set(row, int(col), 1)
		}
		copy(d.Row(row), known[repISI])
		substituted[row] = repISI
		row++
	}

	// usedISIs lists, in row order starting at S+H, the ISI whose bytes
	// occupy each row of D -- a source ISI for an untouched row, or the
	// phase-0/overhead repair ISI otherwise. This is exactly what
	// applyPlan needs to rebuild the same D from a cached plan.
	used := make([]uint32, 0, int(rows)-int(p.S+uint32(p.H)))
	for r := int(p.S + uint32(p.H)); r < int(rows); r++ {
		if isi, ok := substituted[r]; ok {
			used = append(used, isi)
		} else {
			used = append(used, uint32(r)-p.S-uint32(p.H))
		}
	}

	return a, used, d, nil
}

func sortUint32(s []uint32) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// planKey derives a cache.Key describing this attempt's erasure pattern:
// a bitmask of which source ESIs are holes, and a bitmask of which repair
// offsets beyond K' have been received (spec.md §3/§4.6 — both lost- and
// repair-bitmask shape the cache key, not just the lost one).
func planKey(p params.Params, known map[uint32][]byte) cache.Key {
	lostBitmask := make([]bool, p.K)
	var lost uint16
	for isi := uint32(0); isi < p.K; isi++ {
		if _, ok := known[isi]; !ok {
			lostBitmask[isi] = true
			lost++
		}
	}

	var maxRepairOffset uint32
	var repairOffsets []uint32
	for isi := range known {
		if isi < p.KPadded {
			continue
		}
		off := isi - p.KPadded
		repairOffsets = append(repairOffsets, off)
		if off+1 > maxRepairOffset {
			maxRepairOffset = off + 1
		}
	}
	repairBitmask := make([]bool, maxRepairOffset)
	for _, off := range repairOffsets {
		repairBitmask[off] = true
	}

	return cache.Key{
		MatrixSize:    uint16(p.L),
		Lost:          lost,
		Repair:        uint32(len(repairOffsets)),
		LostBitmask:   lostBitmask,
		RepairBitmask: repairBitmask,
	}
}

func (d *Decoder) lookupCache(key cache.Key) ([]byte, bool) {
	if d.cfg.planCache == nil {
		return nil, false
	}
	v, ok := d.cfg.planCache.Get(key)
	if !ok {
		return nil, false
	}
	data, ok := v.([]byte)
	return data, ok
}

func (d *Decoder) storeCache(key cache.Key, isis []uint32, ops []solver.Op) {
	if d.cfg.planCache == nil {
		return
	}
	encoded, err := encodePlan(d.cfg.compression, isis, ops)
	if err != nil {
		d.cfg.logger.Warn("plan cache encode failed", "err", err)
		return
	}
	d.cfg.planCache.Add(key, encoded, len(encoded))
}

// applyPlan replays a cached plan against this attempt's known data,
// skipping a fresh solve entirely when the erasure pattern recurs (the
// payoff of the decaying-least-frequency plan cache). The cached ISI list
// is exactly assembleSystem's per-row `used` list, so row r of D (for
// r >= S+H) is rebuilt from known[isis[r-(S+H)]].
func (d *Decoder) applyPlan(encoded []byte, p params.Params, known map[uint32][]byte) (*matrix.Dense, error) {
	isis, ops, err := decodePlan(encoded)
	if err != nil {
		return nil, err
	}
	structRows := int(p.S + uint32(p.H))
	dm := matrix.New(structRows+len(isis), d.t)
	row := structRows
	for _, isi := range isis {
		data, ok := known[isi]
		if !ok {
			return nil, errors.New("raptorq: cached plan references a symbol we no longer have")
		}
		copy(dm.Row(row), data)
		row++
	}
	solver.Replay(ops, dm)
	return dm, nil
}
