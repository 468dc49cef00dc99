// Package timer implements the per-session countdown: a pausable
// once-per-second decrement that fires an expiry callback exactly once.
package timer

import (
	"sync"
	"time"
)

// Countdown counts down from an initial number of seconds while running.
// Pause and Resume toggle the running flag without resetting the counter.
// When the counter reaches zero the expiry callback fires exactly once and
// the countdown stops.
type Countdown struct {
	mu        sync.Mutex
	remaining int
	running   bool
	fired     bool
	started   bool
	stop      chan struct{}
	stopOnce  sync.Once

	interval time.Duration
	onExpire func()
}

// New creates a countdown ticking once per second. It does not start until
// Start is called.
func New(seconds int, onExpire func()) *Countdown {
	return NewTicking(seconds, time.Second, onExpire)
}

// NewTicking creates a countdown with a custom tick interval. Production
// code uses New; the shorter intervals exist for tests.
func NewTicking(seconds int, interval time.Duration, onExpire func()) *Countdown {
	return &Countdown{
		remaining: seconds,
		interval:  interval,
		onExpire:  onExpire,
		stop:      make(chan struct{}),
	}
}

// Start begins ticking. Calling Start twice is a no-op.
func (c *Countdown) Start() {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.running = true
	c.mu.Unlock()

	go c.loop()
}

// Pause suspends the countdown without resetting the counter.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
}

// Resume continues a paused countdown from where it stopped.
func (c *Countdown) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.fired {
		c.running = true
	}
}

// Reset replaces the remaining seconds, typically from a client snapshot.
// It has no effect once the countdown has expired.
func (c *Countdown) Reset(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.fired {
		c.remaining = seconds
	}
}

// Stop cancels the countdown. The expiry callback will not fire after
// Stop returns. Safe to call multiple times.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Remaining reports the seconds left.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) loop() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			if expired := c.tick(); expired {
				c.onExpire()
				c.Stop()
				return
			}
		}
	}
}

// tick decrements under the lock and reports whether this tick crossed
// zero. The callback runs outside the lock so it may call back into the
// countdown's owner.
func (c *Countdown) tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.fired {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining <= 0 {
		c.fired = true
		c.running = false
		return true
	}
	return false
}
