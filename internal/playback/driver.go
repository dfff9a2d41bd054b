package playback

import (
	"context"
	"sync"

	"github.com/san-kum/routeviz/internal/loop"
)

// Driver runs a controller against the wall clock for hosts that have no
// event loop of their own to schedule ticks on.
type Driver struct {
	ctrl *Controller
	ctx  context.Context

	mu     sync.Mutex
	id     TimerID
	handle *loop.Handle
}

func NewDriver(ctx context.Context, ctrl *Controller) *Driver {
	return &Driver{ctrl: ctrl, ctx: ctx}
}

func (d *Driver) Controller() *Controller { return d.ctrl }

func (d *Driver) Play() {
	id, ok := d.ctrl.Play()
	d.swap(id, ok)
}

func (d *Driver) Toggle() {
	id, ok := d.ctrl.Toggle()
	d.swap(id, ok)
}

func (d *Driver) Pause() {
	d.ctrl.Pause()
	d.swap(0, false)
}

func (d *Driver) Reset() {
	d.ctrl.Reset()
	d.swap(0, false)
}

// SetStopCount rebinds to a new route; any running timer is canceled.
func (d *Driver) SetStopCount(n int) {
	d.ctrl.SetStopCount(n)
	d.swap(0, false)
}

// Close cancels the timer and waits for it to finish.
func (d *Driver) Close() {
	d.mu.Lock()
	h := d.handle
	d.handle, d.id = nil, 0
	d.mu.Unlock()
	h.Stop()
}

// Running reports whether a timer task is scheduled.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.handle.Running()
}

// swap retires the current task and, when start is set, schedules a new
// one for id.
func (d *Driver) swap(id TimerID, start bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handle.StopAsync()
	d.handle, d.id = nil, 0
	if !start {
		return
	}
	d.id = id
	d.handle = loop.Start(d.ctx, d.ctrl.Interval(), func() {
		if !d.ctrl.Tick(id) {
			d.retire(id)
		}
	})
}

func (d *Driver) retire(id TimerID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.id != id {
		return
	}
	d.handle.StopAsync()
	d.handle, d.id = nil, 0
}
