package core

import "time"

// StepClock fires a repeating callback from fixed simulation steps instead of
// wall-clock time. Hosts that already run a tick loop call Advance once per
// tick; tests can advance it by any amount without sleeping.
type StepClock struct {
	interval time.Duration
	elapsed  time.Duration
	fn       func()
	running  bool
}

// NewStepClock creates a stopped clock.
func NewStepClock() *StepClock {
	return &StepClock{}
}

// Start (re)arms the clock to call fn every interval of advanced time.
// Any time accumulated before the call is discarded.
func (c *StepClock) Start(interval time.Duration, fn func()) {
	if interval <= 0 || fn == nil {
		c.Stop()
		return
	}
	c.interval = interval
	c.elapsed = 0
	c.fn = fn
	c.running = true
}

// Stop disarms the clock. Calling Stop from inside the callback ends the
// current Advance immediately.
func (c *StepClock) Stop() {
	c.running = false
	c.elapsed = 0
}

// Running reports whether the clock is armed.
func (c *StepClock) Running() bool {
	return c.running
}

// Interval returns the interval of the last Start.
func (c *StepClock) Interval() time.Duration {
	return c.interval
}

// Advance moves the clock forward by dt and fires the callback once for each
// full interval that elapsed.
func (c *StepClock) Advance(dt time.Duration) {
	if !c.running || dt <= 0 {
		return
	}
	c.elapsed += dt
	for c.running && c.elapsed >= c.interval {
		c.elapsed -= c.interval
		c.fn()
	}
}
