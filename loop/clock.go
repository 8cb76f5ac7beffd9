package loop

import "time"

// FrameClock measures the time between redraws.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock starts the clock. A nil now uses time.Now.
func NewFrameClock(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now, last: now()}
}

// Tick returns the whole milliseconds since the previous Tick plus one, so a
// frame never measures zero, and restarts the measurement.
func (c *FrameClock) Tick() time.Duration {
	t := c.now()
	ms := t.Sub(c.last).Milliseconds() + 1
	c.last = t
	return time.Duration(ms) * time.Millisecond
}

// FPS converts a frame duration from Tick to frames per second.
func FPS(frame time.Duration) float64 {
	ms := frame.Milliseconds()
	if ms < 1 {
		ms = 1
	}
	return 1000 / float64(ms)
}
