package loop

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestStartStop(t *testing.T) {
	var calls atomic.Int64
	h := Start(context.Background(), time.Millisecond, func() { calls.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if calls.Load() < 3 {
		t.Fatalf("expected at least 3 calls, got %d", calls.Load())
	}

	h.Stop()
	if h.Running() {
		t.Error("handle should not be running after stop")
	}
	after := calls.Load()
	time.Sleep(10 * time.Millisecond)
	if calls.Load() != after {
		t.Errorf("task ran after stop: %d -> %d", after, calls.Load())
	}

	// idempotent
	h.Stop()
	h.StopAsync()
}

func TestContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := Start(ctx, time.Millisecond, func() {})
	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for h.Running() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if h.Running() {
		t.Error("handle should stop when context is canceled")
	}
	h.Stop()
}

func TestNilHandle(t *testing.T) {
	var h *Handle
	h.Stop()
	h.StopAsync()
	if h.Running() {
		t.Error("nil handle is never running")
	}
	var zero Handle
	zero.Stop()
	if zero.Running() {
		t.Error("zero handle is never running")
	}
}

func TestStopAsyncFromTask(t *testing.T) {
	var h *Handle
	ready := make(chan struct{})
	var calls atomic.Int64
	h = Start(context.Background(), time.Millisecond, func() {
		<-ready
		calls.Add(1)
		h.StopAsync()
	})
	close(ready)

	deadline := time.Now().Add(2 * time.Second)
	for h.Running() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if h.Running() {
		t.Fatal("task should have stopped itself")
	}
	if calls.Load() != 1 {
		t.Errorf("expected exactly one call, got %d", calls.Load())
	}
}
