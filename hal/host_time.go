package hal

import "time"

// hostClock measures time since the HAL was created.
type hostClock struct {
	start time.Time
}

// NewClock returns a Time backed by the monotonic wall clock.
func NewClock() Time {
	return newHostClock()
}

func newHostClock() *hostClock {
	return &hostClock{start: time.Now()}
}

func (c *hostClock) Now() time.Duration { return time.Since(c.start) }
