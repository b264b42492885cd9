// Package workpool implements the cooperative, bounded-concurrency worker
// pool block decoding uses to retry solves as new symbols arrive. Grounded
// on original_source's Thread_Pool.hpp (Work_Exit_Status, Pool_Work,
// max_block_decoder_concurrency), reimplemented with
// golang.org/x/sync/semaphore instead of a hand-rolled condition-variable
// loop -- the idiomatic Go analogue of the same bounded-worker-count,
// cooperative-cancellation contract (see DESIGN.md).
package workpool

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ExitStatus mirrors Work_Exit_Status: what a unit of work reports when it
// returns control to the pool.
type ExitStatus int

const (
	Done ExitStatus = iota
	Stopped
	Requeue
)

// Work is one schedulable unit, analogous to Pool_Work::do_work. `working`
// is polled by Work to decide whether to keep computing or abort early
// (cooperative cancellation, not context cancellation, since a solve in
// progress must finish its current phase cleanly rather than being killed
// mid-matrix-mutation).
type Work func(working func() bool) ExitStatus

// Pool runs Work items with at most `concurrency` running at once, matching
// set_thread_pool's max_block_decoder_concurrency cap.
type Pool struct {
	sem     *semaphore.Weighted
	wg      sync.WaitGroup
	stopped int32
}

// New returns a pool that runs at most `concurrency` work items at a time.
func New(concurrency int) *Pool {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(concurrency))}
}

// Submit schedules w to run, blocking until a concurrency slot is free or
// ctx is cancelled. Requeue results are retried in place (matching the
// Thread_Pool worker loop's self-requeue handling) until Done or Stopped.
func (p *Pool) Submit(ctx context.Context, w Work) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	p.wg.Add(1)
	go func() {
		defer p.sem.Release(1)
		defer p.wg.Done()
		for {
			status := w(p.working)
			if status != Requeue {
				return
			}
			if atomic.LoadInt32(&p.stopped) != 0 {
				return
			}
		}
	}()
	return nil
}

func (p *Pool) working() bool {
	return atomic.LoadInt32(&p.stopped) == 0
}

// Stop signals every running and future Work to abort cooperatively,
// matching resize_pool's exit-type propagation to in-flight work.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopped, 1)
}

// Wait blocks until all submitted work has returned.
func (p *Pool) Wait() {
	p.wg.Wait()
}
