package expiring

// Counter counts events seen within the last TTL.
type Counter struct {
	policy
	ticks *queue[struct{}]
}

func NewCounter(config Config) *Counter {
	p, cfg := newPolicy(config)
	return &Counter{
		policy: p,
		ticks:  newQueue[struct{}](cfg.MaxLength),
	}
}

// Increase records one event at the current tick. When the counter is at its
// length bound the oldest event is dropped.
func (c *Counter) Increase() {
	c.ticks.pushBack(newEntry(c.now(), struct{}{}))
}

// Value evicts expired events and returns how many remain.
func (c *Counter) Value() int {
	c.Evict()
	return c.ticks.len()
}

func (c *Counter) Evict() {
	c.ticks.trim(c.expiredAt(c.now()))
}

func (c *Counter) Clear() {
	c.ticks.clear()
}
