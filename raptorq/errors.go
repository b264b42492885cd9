// Package raptorq implements the RFC 6330 RaptorQ fountain code: given K
// source symbols of T bytes, it produces unlimited systematic encoded
// symbols (source symbols unchanged, followed by repair symbols) such that
// any K+epsilon received symbols let a Decoder recover the original data.
package raptorq

import "github.com/pkg/errors"

// Sentinel errors matching the block decoder's error taxonomy.
var (
	// ErrWrongInput is returned for malformed caller input: bad K/T, a
	// symbol with the wrong length, an out-of-range ESI.
	ErrWrongInput = errors.New("raptorq: wrong input")
	// ErrNeedData means decoding was attempted with fewer symbols than the
	// current plan requires; this is a transient, retryable condition.
	ErrNeedData = errors.New("raptorq: need more symbols")
	// ErrNotNeeded is returned by AddSymbol once the block has already
	// finished decoding.
	ErrNotNeeded = errors.New("raptorq: block already decoded")
	// ErrWorking means a concurrent decode attempt is already in flight for
	// this block.
	ErrWorking = errors.New("raptorq: decode already in progress")
	// ErrInitialization indicates a K/T combination RFC 6330's parameter
	// ladder does not cover.
	ErrInitialization = errors.New("raptorq: could not derive parameters")
	// ErrExiting is returned when a pending decode is aborted by Stop.
	ErrExiting = errors.New("raptorq: decoder stopped")
)
