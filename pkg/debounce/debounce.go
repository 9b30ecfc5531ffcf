// Package debounce coalesces bursts of calls into a single delayed execution.
package debounce

import (
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithClock sets the clock used for timers. Use clockz.NewFakeClock in tests.
func WithClock(clock clockz.Clock) Option {
	return func(d *Debouncer) {
		d.clock = clock
	}
}

// Debouncer holds at most one pending call. Scheduling a new call cancels
// the pending one, so only the latest call of a burst ever runs, delay after
// it was scheduled. Executions of one Debouncer never overlap.
type Debouncer struct {
	delay time.Duration
	clock clockz.Clock

	mu      sync.Mutex
	pending *call

	runMu sync.Mutex
}

type call struct {
	fn    func()
	timer clockz.Timer
	done  chan struct{}
}

// New creates a Debouncer with the given delay.
func New(delay time.Duration, opts ...Option) *Debouncer {
	d := &Debouncer{
		delay: delay,
		clock: clockz.RealClock,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Schedule cancels any pending call and schedules fn to run after the delay.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()

	c := &call{
		fn:    fn,
		timer: d.clock.NewTimer(d.delay),
		done:  make(chan struct{}),
	}
	d.pending = c

	go d.wait(c)
}

// Cancel drops the pending call, if any. Reports whether a call was dropped.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.cancelLocked()
}

// Flush runs the pending call immediately instead of waiting for its timer.
// Reports whether a call was run.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	c := d.pending
	if c == nil {
		d.mu.Unlock()
		return false
	}
	d.detachLocked(c)
	d.mu.Unlock()

	d.run(c.fn)
	return true
}

// Pending reports whether a call is scheduled and has not fired yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.pending != nil
}

func (d *Debouncer) wait(c *call) {
	select {
	case <-c.timer.C():
	case <-c.done:
		return
	}

	d.mu.Lock()
	if d.pending != c {
		// Superseded or cancelled between the timer firing and taking the lock.
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.mu.Unlock()

	d.run(c.fn)
}

func (d *Debouncer) run(fn func()) {
	d.runMu.Lock()
	defer d.runMu.Unlock()

	fn()
}

func (d *Debouncer) cancelLocked() bool {
	if d.pending == nil {
		return false
	}
	d.detachLocked(d.pending)
	return true
}

func (d *Debouncer) detachLocked(c *call) {
	c.timer.Stop()
	close(c.done)
	d.pending = nil
}

// Trigger wraps fn into a trigger function bound to d. Each invocation
// cancels the pending one and schedules fn with its own argument, so a burst
// runs fn once with the last value, delay after the last call.
func Trigger[T any](d *Debouncer, fn func(T)) func(T) {
	return func(v T) {
		d.Schedule(func() { fn(v) })
	}
}
