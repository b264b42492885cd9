package raptorq

import (
	"context"
	"testing"

	"github.com/rq-fec/raptorq/internal/cache"
	"github.com/rq-fec/raptorq/internal/workpool"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	k, symSize := 20, 8
	source := make([][]byte, k)
	for i := range source {
		source[i] = make([]byte, symSize)
		for j := range source[i] {
			source[i][j] = byte(i*7 + j)
		}
	}

	enc, err := NewEncoder(source)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	dec, err := NewDecoder(k, symSize)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}

	// Drop the first three source symbols, fill the gap with repair symbols.
	for esi := 3; esi < k; esi++ {
		sym, err := enc.Symbol(uint32(esi))
		if err != nil {
			t.Fatalf("Symbol(%d): %v", esi, err)
		}
		if err := dec.AddSymbol(uint32(esi), sym); err != nil {
			t.Fatalf("AddSymbol(%d): %v", esi, err)
		}
	}
	for repair := 0; repair < 3; repair++ {
		esi := uint32(k + repair)
		sym, err := enc.Symbol(esi)
		if err != nil {
			t.Fatalf("Symbol(repair %d): %v", repair, err)
		}
		if err := dec.AddSymbol(esi, sym); err != nil {
			t.Fatalf("AddSymbol(repair %d): %v", repair, err)
		}
	}

	if err := dec.Decode(context.Background()); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if dec.Poll() != Done {
		t.Fatalf("expected Done, got %v", dec.Poll())
	}
	for esi := 0; esi < k; esi++ {
		got, err := dec.Source(uint32(esi))
		if err != nil {
			t.Fatalf("Source(%d): %v", esi, err)
		}
		for j := range got {
			if got[j] != source[esi][j] {
				t.Fatalf("source symbol %d mismatch at byte %d: got %d want %d", esi, j, got[j], source[esi][j])
			}
		}
	}
}

func TestDecodeReusesPlanCacheOnIdenticalErasurePattern(t *testing.T) {
	k, symSize := 16, 8
	source := make([][]byte, k)
	for i := range source {
		source[i] = []byte{byte(i), byte(i + 1), byte(i + 2), byte(i + 3), byte(i + 4), byte(i + 5), byte(i + 6), byte(i + 7)}
	}
	enc, err := NewEncoder(source)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	planCache := cache.New(1 << 20)
	received := func() map[uint32][]byte {
		m := make(map[uint32][]byte)
		for esi := 2; esi < k; esi++ {
			sym, _ := enc.Symbol(uint32(esi))
			m[uint32(esi)] = sym
		}
		for repair := 0; repair < 2; repair++ {
			esi := uint32(k + repair)
			sym, _ := enc.Symbol(esi)
			m[esi] = sym
		}
		return m
	}

	for attempt := 0; attempt < 2; attempt++ {
		dec, err := NewDecoder(k, symSize, WithPlanCache(planCache))
		if err != nil {
			t.Fatalf("NewDecoder: %v", err)
		}
		for esi, sym := range received() {
			if err := dec.AddSymbol(esi, sym); err != nil {
				t.Fatalf("AddSymbol: %v", err)
			}
		}
		if err := dec.Decode(context.Background()); err != nil {
			t.Fatalf("attempt %d Decode: %v", attempt, err)
		}
		for esi := 0; esi < k; esi++ {
			got, err := dec.Source(uint32(esi))
			if err != nil {
				t.Fatalf("Source(%d): %v", esi, err)
			}
			for j := range got {
				if got[j] != source[esi][j] {
					t.Fatalf("attempt %d source symbol %d mismatch", attempt, esi)
				}
			}
		}
	}
	if planCache.Len() == 0 {
		t.Fatalf("expected at least one cached plan")
	}
}

func TestDecodeAsyncUsesWorkPool(t *testing.T) {
	k, symSize := 12, 4
	source := make([][]byte, k)
	for i := range source {
		source[i] = []byte{byte(i), byte(i + 1), byte(i + 2), byte(i + 3)}
	}
	enc, err := NewEncoder(source)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	pool := workpool.New(2)
	dec, err := NewDecoder(k, symSize, WithWorkPool(pool))
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	for esi := 0; esi < k; esi++ {
		sym, _ := enc.Symbol(uint32(esi))
		if err := dec.AddSymbol(uint32(esi), sym); err != nil {
			t.Fatalf("AddSymbol(%d): %v", esi, err)
		}
	}

	err = <-dec.DecodeAsync(context.Background())
	if err != nil {
		t.Fatalf("DecodeAsync: %v", err)
	}
	pool.Wait()
	if dec.Poll() != Done {
		t.Fatalf("expected Done, got %v", dec.Poll())
	}
}

func TestDecodeNeedsMoreData(t *testing.T) {
	k, symSize := 10, 4
	dec, err := NewDecoder(k, symSize)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	if err := dec.AddSymbol(0, []byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("AddSymbol: %v", err)
	}
	if err := dec.Decode(context.Background()); err != ErrNeedData {
		t.Fatalf("expected ErrNeedData, got %v", err)
	}
}

func TestAddSymbolAfterDoneReturnsNotNeeded(t *testing.T) {
	k, symSize := 10, 4
	source := make([][]byte, k)
	for i := range source {
		source[i] = []byte{byte(i), byte(i + 1), byte(i + 2), byte(i + 3)}
	}
	enc, err := NewEncoder(source)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	dec, err := NewDecoder(k, symSize)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	for esi := 0; esi < k; esi++ {
		sym, _ := enc.Symbol(uint32(esi))
		if err := dec.AddSymbol(uint32(esi), sym); err != nil {
			t.Fatalf("AddSymbol(%d): %v", esi, err)
		}
	}
	if err := dec.Decode(context.Background()); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	sym, _ := enc.Symbol(0)
	if err := dec.AddSymbol(0, sym); err != ErrNotNeeded {
		t.Fatalf("expected ErrNotNeeded, got %v", err)
	}
}
