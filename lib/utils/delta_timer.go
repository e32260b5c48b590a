package utils

import "time"

type DeltaTimer struct {
	time.Time
}

func (d *DeltaTimer) Next() time.Duration {
	// acquire timestamp exactly once to ensure we're not accumulating error
	now := time.Now()

	defer d.Set(now)
	if d.IsZero() {
		return 0
	}
	return now.Sub(d.Time)
}

func (d *DeltaTimer) Set(t time.Time) {
	d.Time = t
}

// FrameClock reports the time elapsed since it was started.
type FrameClock struct {
	start time.Time
	now   func() time.Time
}

func NewFrameClock() *FrameClock {
	return newFrameClock(time.Now)
}

func newFrameClock(now func() time.Time) *FrameClock {
	return &FrameClock{start: now(), now: now}
}

func (c *FrameClock) Seconds() float32 {
	return float32(c.now().Sub(c.start).Seconds())
}
