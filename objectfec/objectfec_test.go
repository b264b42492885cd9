package objectfec

import (
	"context"
	"testing"
)

func TestEncodeReassembleRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeated for bulk ")
	k, tSize := 8, 4

	obj, err := Encode(data, k, tSize)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	desc := obj.Descriptor()

	symbols := make([]map[uint32][]byte, desc.Blocks)
	for b := 0; b < desc.Blocks; b++ {
		symbols[b] = make(map[uint32][]byte)
		for esi := uint32(0); esi < uint32(k)+4; esi++ {
			sym, err := obj.Symbol(b, esi)
			if err != nil {
				t.Fatalf("Symbol(%d,%d): %v", b, esi, err)
			}
			symbols[b][esi] = sym
		}
	}

	got, err := Reassemble(context.Background(), desc, symbols)
	if err != nil {
		t.Fatalf("Reassemble: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("reassembled data mismatch: got %q want %q", got, data)
	}
}

func TestEncodeMultiBlock(t *testing.T) {
	data := make([]byte, 200)
	for i := range data {
		data[i] = byte(i)
	}
	k, tSize := 10, 4 // 40 bytes/block -> 5 blocks

	obj, err := Encode(data, k, tSize)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	desc := obj.Descriptor()
	if desc.Blocks != 5 {
		t.Fatalf("expected 5 blocks, got %d", desc.Blocks)
	}

	symbols := make([]map[uint32][]byte, desc.Blocks)
	for b := 0; b < desc.Blocks; b++ {
		symbols[b] = make(map[uint32][]byte)
		for esi := uint32(0); esi < uint32(k); esi++ {
			sym, err := obj.Symbol(b, esi)
			if err != nil {
				t.Fatalf("Symbol(%d,%d): %v", b, esi, err)
			}
			symbols[b][esi] = sym
		}
	}

	got, err := Reassemble(context.Background(), desc, symbols)
	if err != nil {
		t.Fatalf("Reassemble: %v", err)
	}
	if len(got) != len(data) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(data))
	}
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("byte %d mismatch: got %d want %d", i, got[i], data[i])
		}
	}
}
