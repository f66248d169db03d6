package core

import "time"

// Clock supplies monotonic simulation time.
// Now is measured from the clock's own origin, not from wall time.
type Clock interface {
	Now() time.Duration
	Delta() time.Duration
}

// TickClock is a Clock the platform advances once per simulation tick.
type TickClock interface {
	Clock
	Tick()
}

// FrameClock advances by a fixed frame duration per tick, so simulation time
// stays in lockstep with the tick loop regardless of scheduling jitter.
type FrameClock struct {
	rate  int64
	ticks int64
}

// NewFrameClock creates a clock for the given tick rate.
// Non-positive rates fall back to 60 ticks per second.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{rate: int64(tickRate)}
}

// Tick advances the clock by one frame.
func (c *FrameClock) Tick() {
	c.ticks++
}

// Now returns the time elapsed since the clock was created.
// It is computed from the tick count so whole seconds land exactly.
func (c *FrameClock) Now() time.Duration {
	return time.Duration(c.ticks * int64(time.Second) / c.rate)
}

// Delta returns the fixed frame duration.
func (c *FrameClock) Delta() time.Duration {
	return time.Second / time.Duration(c.rate)
}
