package expiring_test

import "github.com/mcheviron/expiring"

// timeHelper drives a manual clock in whole TTL units.
type timeHelper struct {
	clock *expiring.ManualClock
	scale int64
}

func newTimeHelper(scale int64) *timeHelper {
	return &timeHelper{clock: expiring.NewManualClock(0), scale: scale}
}

func (h *timeHelper) config(ttl float64) expiring.Config {
	return expiring.NewConfig(ttl).WithClock(h.clock.Clock(h.scale))
}

func (h *timeHelper) advance(units int64) {
	h.clock.Advance(units * h.scale)
}
