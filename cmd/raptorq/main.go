// Command raptorq is a minimal demonstrator for the raptorq package: it
// encodes a file into a stream of symbols and decodes it back, optionally
// dropping a fraction of symbols to exercise repair-symbol recovery. It is
// not a spec.md deliverable (command-line tooling is out of scope) — see
// DESIGN.md for why this stays on stdlib flag rather than a CLI framework.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/rq-fec/raptorq/objectfec"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "raptorq:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("raptorq", flag.ExitOnError)
	in := fs.String("in", "", "input file to encode")
	out := fs.String("out", "", "output file for the decoded result")
	k := fs.Int("k", 64, "source symbols per block")
	t := fs.Int("t", 512, "symbol size in bytes")
	lossPct := fs.Int("loss", 10, "percentage of symbols to drop before decoding")
	extra := fs.Int("extra", 10, "extra repair symbols requested per block beyond k")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("both -in and -out are required")
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	obj, err := objectfec.Encode(data, *k, *t)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	desc := obj.Descriptor()
	logger.Info("encoded object", "blocks", desc.Blocks, "k", desc.K, "t", desc.T, "length", desc.Length)

	symbols := make([]map[uint32][]byte, desc.Blocks)
	for b := 0; b < desc.Blocks; b++ {
		symbols[b] = make(map[uint32][]byte)
		total := uint32(desc.K + *extra)
		for esi := uint32(0); esi < total; esi++ {
			if rand.Intn(100) < *lossPct {
				continue
			}
			sym, err := obj.Symbol(b, esi)
			if err != nil {
				return fmt.Errorf("reading symbol %d of block %d: %w", esi, b, err)
			}
			symbols[b][esi] = sym
		}
		logger.Debug("simulated loss", "block", b, "received", len(symbols[b]), "requested", total)
	}

	decoded, err := objectfec.Reassemble(context.Background(), desc, symbols)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	if err := os.WriteFile(*out, decoded, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Info("decoded object written", "path", *out, "bytes", len(decoded))
	return nil
}
