package gameforge

// Clock counts elapsed time against a target length.
//
// A clock whose length is zero or negative is finished from the start and
// reports a progress of 1.
type Clock struct {
	length   Time
	elapsed  Time
	callback func()
	fired    bool
}

// NewClock returns a clock of the given length with nothing elapsed.
func NewClock(length Time) *Clock {
	return &Clock{length: length}
}

// Tick advances the clock by dt. If the clock is finished afterwards and the
// finish callback has not fired since the last Restart or Reset, it fires
// now.
func (c *Clock) Tick(dt Time) {
	c.elapsed += dt
	if c.Finished() && !c.fired {
		c.fired = true
		if c.callback != nil {
			c.callback()
		}
	}
}

// Restart sets elapsed time back to zero, keeping the length.
func (c *Clock) Restart() {
	c.elapsed = 0
	c.fired = false
}

// Reset sets a new length and restarts the clock.
func (c *Clock) Reset(length Time) {
	c.length = length
	c.Restart()
}

// SetLength changes the length without touching elapsed time.
func (c *Clock) SetLength(length Time) {
	c.length = length
}

// OnFinish registers fn to run when a Tick finishes the clock, replacing any
// previous callback.
func (c *Clock) OnFinish(fn func()) {
	c.callback = fn
}

func (c *Clock) Length() Time  { return c.length }
func (c *Clock) Elapsed() Time { return c.elapsed }

// Remaining returns length minus elapsed. It goes negative once the clock
// has overrun.
func (c *Clock) Remaining() Time { return c.length - c.elapsed }

// Finished reports whether elapsed has reached length.
func (c *Clock) Finished() bool { return c.elapsed >= c.length }

// Progress returns elapsed/length, clamped to 1 once the clock is finished
// and to 0 while elapsed is not positive.
func (c *Clock) Progress() float64 {
	if c.Finished() {
		return 1
	}
	if c.elapsed <= 0 {
		return 0
	}
	return c.elapsed.Ratio(c.length)
}
