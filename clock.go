package bezier

// Clock converts elapsed time into the parameter at which a curve is
// evaluated.
//
// Going forward, the parameter is Elapsed/Duration. Going in reverse it is
// 1 - Elapsed/Duration. A clock that doesn't loop never stops or clamps: once
// Elapsed exceeds Duration the parameter keeps growing past 1 and the curve is
// extrapolated beyond its end anchor. A looping clock flips its direction and
// restarts from Elapsed = 0 whenever the parameter leaves [0, 1].
//
// Duration should be positive. A zero or negative duration isn't rejected;
// it produces infinite or NaN parameters.
type Clock struct {
	// Duration is the time, in seconds, it takes to traverse the curve once.
	Duration float64
	// Elapsed is the time, in seconds, accumulated since the clock was last
	// reset or flipped.
	Elapsed float64
	// Reverse reports whether the clock is running from the end of the
	// curve towards its start.
	Reverse bool
	// Loop makes the clock bounce between the anchors indefinitely.
	Loop bool
}

// NewClock returns a clock running forward from Elapsed = 0.
func NewClock(duration float64, loop bool) Clock {
	return Clock{Duration: duration, Loop: loop}
}

// Param returns the parameter for the clock's current state without
// advancing it.
func (c *Clock) Param() float64 {
	t := c.Elapsed / c.Duration
	if c.Reverse {
		t = 1.0 - t
	}
	return t
}

// Advance adds dt seconds to the clock and returns the resulting parameter.
//
// For a looping clock, the boundary test is applied to the returned
// parameter, that is after the reversal has been applied, so that it works
// the same in both directions. When it fires, the clock flips direction and
// resets Elapsed to 0; the returned value is still the one that crossed the
// boundary.
func (c *Clock) Advance(dt float64) float64 {
	c.Elapsed += dt
	t := c.Param()
	if c.Loop && (t > 1.0 || t < 0.0) {
		c.Reverse = !c.Reverse
		c.Elapsed = 0.0
	}
	return t
}

// Complete reports whether at least Duration seconds have elapsed. Looping
// clocks usually reset before that, but can report completion on the exact
// tick that reaches the boundary.
func (c *Clock) Complete() bool {
	return c.Elapsed >= c.Duration
}

// Reset restarts the clock from the start of the curve.
func (c *Clock) Reset() {
	c.Elapsed = 0.0
	c.Reverse = false
}
