package sim

import (
	"math"
	"time"
)

// Clock turns variable frame times into a whole number of fixed steps.
// Frames that fall too far behind drop the backlog beyond maxCatchUp steps.
type Clock struct {
	step       float64
	maxCatchUp int
	pending    float64
	last       time.Time
}

// NewClock creates a clock with the given step in seconds
func NewClock(step float64, maxCatchUp int) *Clock {
	return &Clock{
		step:       step,
		maxCatchUp: maxCatchUp,
	}
}

// Step returns the fixed step length
func (c *Clock) Step() float64 {
	return c.step
}

// Advance adds a frame's elapsed seconds and returns how many steps are due
func (c *Clock) Advance(elapsed float64) int {
	if !(elapsed > 0) || math.IsInf(elapsed, 0) {
		return 0
	}
	c.pending += elapsed

	n := int(c.pending / c.step)
	if n > c.maxCatchUp {
		n = c.maxCatchUp
		c.pending = math.Mod(c.pending, c.step)
	} else {
		c.pending -= float64(n) * c.step
	}
	return n
}

// Pending returns the carried-over time as a fraction of one step
func (c *Clock) Pending() float64 {
	return c.pending / c.step
}

// Tick advances by the wall time since the previous Tick and returns how
// many steps are due. The first Tick counts as one step.
func (c *Clock) Tick(now time.Time) int {
	elapsed := c.step
	if !c.last.IsZero() {
		elapsed = now.Sub(c.last).Seconds()
	}
	c.last = now
	return c.Advance(elapsed)
}
