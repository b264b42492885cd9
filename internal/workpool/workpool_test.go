package workpool

import (
	"context"
	"sync/atomic"
	"testing"
)

func TestSubmitRunsWork(t *testing.T) {
	p := New(2)
	var ran int32
	done := make(chan struct{})
	err := p.Submit(context.Background(), func(working func() bool) ExitStatus {
		atomic.StoreInt32(&ran, 1)
		close(done)
		return Done
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	<-done
	p.Wait()
	if atomic.LoadInt32(&ran) != 1 {
		t.Fatal("work should have run")
	}
}

func TestStopSignalsWorking(t *testing.T) {
	p := New(1)
	seen := make(chan bool, 1)
	done := make(chan struct{})
	p.Submit(context.Background(), func(working func() bool) ExitStatus {
		<-done
		seen <- working()
		return Done
	})
	p.Stop()
	close(done)
	if got := <-seen; got {
		t.Fatal("working() should report false after Stop")
	}
	p.Wait()
}
