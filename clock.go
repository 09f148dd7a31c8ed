package expiring

import "time"

// TimeFunc returns the current tick. Successive calls must never decrease.
type TimeFunc func() int64

// Clock pairs a tick source with its scale, the number of ticks in one TTL
// unit. The zero Clock is not usable; build one with MonotonicClock or
// NewClock.
type Clock struct {
	now   TimeFunc
	scale int64
}

// MonotonicClock returns a clock that reads nanoseconds elapsed since the
// call, using the monotonic reading of time.Now. Its scale is 1e9, so TTLs
// are expressed in seconds.
func MonotonicClock() Clock {
	base := time.Now()
	return Clock{
		now:   func() int64 { return int64(time.Since(base)) },
		scale: int64(time.Second),
	}
}

// NewClock wraps a custom tick source. A scale <= 0 is treated as 1.
func NewClock(fn TimeFunc, scale int64) Clock {
	if scale <= 0 {
		scale = 1
	}
	return Clock{now: fn, scale: scale}
}

func (c Clock) Now() int64 {
	return c.now()
}

func (c Clock) Scale() int64 {
	return c.scale
}

// threshold is the age in ticks at which an entry expires.
func (c Clock) threshold(ttl float64) float64 {
	return ttl * float64(c.scale)
}

// expired reports whether an entry stamped at tick is too old at now.
// The boundary is inclusive: age == threshold is expired.
func (c Clock) expired(tick, now int64, ttl float64) bool {
	return float64(now-tick) >= c.threshold(ttl)
}

// remaining converts the time left before expiry into TTL units.
func (c Clock) remaining(tick, now int64, ttl float64) float64 {
	return (c.threshold(ttl) - float64(now-tick)) / float64(c.scale)
}

// ManualClock is a tick source that only moves when told to. It is meant for
// tests and for replaying recorded traces. It is not safe for concurrent use.
type ManualClock struct {
	tick int64
}

// NewManualClock returns a ManualClock positioned at start.
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{tick: start}
}

func (m *ManualClock) Now() int64 {
	return m.tick
}

// Set moves the clock to tick. Moving backwards breaks the eviction
// invariants of any container reading this clock.
func (m *ManualClock) Set(tick int64) {
	m.tick = tick
}

func (m *ManualClock) Advance(ticks int64) {
	m.tick += ticks
}

// Clock returns a Clock reading m with the given scale.
func (m *ManualClock) Clock(scale int64) Clock {
	return NewClock(m.Now, scale)
}
