package expiring

// policy is the eviction rule every container applies: an entry whose age
// (now minus its tick) is at least TTL*scale ticks is gone.
type policy struct {
	clock Clock
	ttl   float64
}

func newPolicy(config Config) (policy, Config) {
	cfg, clock := config.Build()
	return policy{clock: clock, ttl: cfg.TTL}, cfg
}

// Expires returns the configured time-to-live in TTL units.
func (p policy) Expires() float64 {
	return p.ttl
}

// Clock returns the clock the container reads.
func (p policy) Clock() Clock {
	return p.clock
}

func (p policy) now() int64 {
	return p.clock.Now()
}

// expiredAt returns a predicate that reports whether a tick is expired at
// now. Resolving now once keeps a whole eviction pass on one instant.
func (p policy) expiredAt(now int64) func(tick int64) bool {
	return func(tick int64) bool {
		return p.clock.expired(tick, now, p.ttl)
	}
}
