package wallets

import (
	"context"
	"time"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// fakeClock is a manual Clock: scheduled calls only run in Advance.
type fakeClock struct {
	now        time.Duration
	timers     []*fakeTimer
	ignoreStop bool // when true, Stop does not prevent the call
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	if !t.clock.ignoreStop {
		t.stopped = true
	}
	return true
}

// Advance moves the clock forward, running due calls in time order.
func (c *fakeClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		var next *fakeTimer
		for _, t := range c.timers {
			if t.stopped || t.fired || t.at > target {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			break
		}
		c.now = next.at
		next.fired = true
		next.f()
	}
	c.now = target
}

// pending returns the number of calls still scheduled.
func (c *fakeClock) pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// fakeClipboard records writes, and fails them with err when set.
type fakeClipboard struct {
	texts []string
	err   error
}

func (c *fakeClipboard) WriteText(_ context.Context, text string) error {
	if c.err != nil {
		return c.err
	}
	c.texts = append(c.texts, text)
	return nil
}

// notifications records notifications.
type notifications []Notification

func (n *notifications) Notify(x Notification) { *n = append(*n, x) }
