package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 5 * time.Millisecond

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(tick)
	}
	t.Fatal(msg)
}

func TestExpiryFiresExactlyOnce(t *testing.T) {
	var fired int64
	c := NewTicking(3, tick, func() { atomic.AddInt64(&fired, 1) })
	defer c.Stop()

	c.Start()
	waitFor(t, func() bool { return atomic.LoadInt64(&fired) > 0 }, "expiry never fired")

	// Let plenty of further ticks elapse; the callback must not repeat.
	time.Sleep(20 * tick)
	assert.Equal(t, int64(1), atomic.LoadInt64(&fired))
	assert.Equal(t, 0, c.Remaining())
}

func TestDoesNotTickBeforeStart(t *testing.T) {
	var fired int64
	c := NewTicking(1, tick, func() { atomic.AddInt64(&fired, 1) })
	defer c.Stop()

	time.Sleep(10 * tick)
	assert.Equal(t, 1, c.Remaining())
	assert.Equal(t, int64(0), atomic.LoadInt64(&fired))
}

func TestPauseFreezesCounter(t *testing.T) {
	var fired int64
	c := NewTicking(1000, tick, func() { atomic.AddInt64(&fired, 1) })
	defer c.Stop()

	c.Start()
	waitFor(t, func() bool { return c.Remaining() < 1000 }, "countdown never ticked")

	c.Pause()
	frozen := c.Remaining()
	time.Sleep(10 * tick)
	assert.Equal(t, frozen, c.Remaining())

	c.Resume()
	waitFor(t, func() bool { return c.Remaining() < frozen }, "countdown did not resume")
	assert.Equal(t, int64(0), atomic.LoadInt64(&fired))
}

func TestStopPreventsExpiry(t *testing.T) {
	var fired int64
	c := NewTicking(2, tick, func() { atomic.AddInt64(&fired, 1) })

	c.Start()
	c.Stop()
	c.Stop() // idempotent

	time.Sleep(20 * tick)
	assert.Equal(t, int64(0), atomic.LoadInt64(&fired))
}

func TestResetReplacesRemaining(t *testing.T) {
	c := NewTicking(5, time.Hour, nil)
	defer c.Stop()

	c.Reset(120)
	assert.Equal(t, 120, c.Remaining())
}

func TestResetAfterExpiryIsNoop(t *testing.T) {
	var fired int64
	c := NewTicking(1, tick, func() { atomic.AddInt64(&fired, 1) })
	defer c.Stop()

	c.Start()
	waitFor(t, func() bool { return atomic.LoadInt64(&fired) > 0 }, "expiry never fired")

	c.Reset(60)
	assert.Equal(t, 0, c.Remaining())

	c.Resume()
	time.Sleep(10 * tick)
	require.Equal(t, int64(1), atomic.LoadInt64(&fired))
}

func TestStartTwiceIsNoop(t *testing.T) {
	var fired int64
	c := NewTicking(2, tick, func() { atomic.AddInt64(&fired, 1) })
	defer c.Stop()

	c.Start()
	c.Start()

	waitFor(t, func() bool { return atomic.LoadInt64(&fired) > 0 }, "expiry never fired")
	time.Sleep(20 * tick)
	assert.Equal(t, int64(1), atomic.LoadInt64(&fired))
}
