// Package loop runs cancelable periodic tasks.
package loop

import (
	"context"
	"sync"
	"time"
)

// Handle controls one running task. The zero value and nil are both
// stopped handles.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start calls fn every interval, serially, until the handle is stopped or
// ctx is done.
func Start(ctx context.Context, interval time.Duration, fn func()) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// a stop racing the tick wins
				if ctx.Err() != nil {
					return
				}
				fn()
			}
		}
	}()
	return h
}

// Stop cancels the task and waits for its goroutine to exit. Stopping more
// than once is a no-op. Stop must not be called from inside fn.
func (h *Handle) Stop() {
	if h == nil || h.cancel == nil {
		return
	}
	h.once.Do(func() {
		h.cancel()
		<-h.done
	})
}

// StopAsync cancels without waiting; safe to call from inside fn.
func (h *Handle) StopAsync() {
	if h == nil || h.cancel == nil {
		return
	}
	h.cancel()
}

// Running reports whether the task goroutine is still alive.
func (h *Handle) Running() bool {
	if h == nil || h.done == nil {
		return false
	}
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}
