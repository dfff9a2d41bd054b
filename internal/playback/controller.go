// Package playback steps a "current stop" pointer through a route on a
// fixed timer.
//
// The controller owns no clock. Play hands out a TimerID; the host arranges
// for Tick to be called with that id once per interval. Any transition out
// of Playing retires the id, so ticks from a canceled timer are ignored and
// at most one timer is ever live.
package playback

import (
	"sync"
	"time"
)

const DefaultInterval = 2 * time.Second

type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "stopped"
}

// TimerID names one scheduled timer. Zero is never issued.
type TimerID uint64

type Status struct {
	Index    int
	Count    int
	State    State
	Progress float64
}

func (s Status) Playing() bool { return s.State == Playing }

type Controller struct {
	mu       sync.Mutex
	count    int
	index    int
	state    State
	timer    TimerID
	lastID   TimerID
	interval time.Duration
}

func New(count int, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if count < 0 {
		count = 0
	}
	return &Controller{count: count, interval: interval}
}

func (c *Controller) Interval() time.Duration { return c.interval }

// Play starts or resumes playback and returns the id of the new timer.
// At the last stop it starts over from the first. It returns false for an
// empty route.
func (c *Controller) Play() (TimerID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.play()
}

func (c *Controller) play() (TimerID, bool) {
	if c.count == 0 {
		return 0, false
	}
	if c.index >= c.count-1 {
		c.index = 0
	}
	c.state = Playing
	c.lastID++
	c.timer = c.lastID
	return c.timer, true
}

// Tick advances one stop if id is the live timer. Reaching the last stop
// pauses playback and retires the timer. The result reports whether the
// host should keep the timer scheduled.
func (c *Controller) Tick(id TimerID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Playing || id == 0 || id != c.timer {
		return false
	}
	last := c.count - 1
	if c.index < last {
		c.index++
	}
	if c.index >= last {
		c.state = Paused
		c.timer = 0
		return false
	}
	return true
}

// Pause holds the current index. It only applies while playing.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pause()
}

func (c *Controller) pause() {
	if c.state != Playing {
		return
	}
	c.state = Paused
	c.timer = 0
}

// Toggle pauses while playing and plays otherwise.
func (c *Controller) Toggle() (TimerID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Playing {
		c.pause()
		return 0, false
	}
	return c.play()
}

// Reset returns to the first stop, stopped, from any state.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = 0
	c.state = Stopped
	c.timer = 0
}

// SetStopCount binds the controller to a new route and resets it.
func (c *Controller) SetStopCount(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 0 {
		n = 0
	}
	c.count = n
	c.index = 0
	c.state = Stopped
	c.timer = 0
}

// Seek moves to stop i without touching the play state. Out of range
// values clamp.
func (c *Controller) Seek(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == 0 {
		return
	}
	c.index = max(0, min(i, c.count-1))
}

// ActiveTimer returns the live timer id, if any.
func (c *Controller) ActiveTimer() (TimerID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer, c.timer != 0
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Status{Index: c.index, Count: c.count, State: c.state}
	if c.count > 1 {
		s.Progress = float64(c.index) / float64(c.count-1)
	}
	return s
}
