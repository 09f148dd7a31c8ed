package expiring

// Dict maps keys to values that expire TTL after the key was first stored.
//
// Timestamps follow two different rules. Set keeps the tick of a key that is
// already present, so overwriting a value does not extend its life. Update
// stamps every key it touches with the current tick, present or not.
type Dict[K comparable, V any] struct {
	policy
	table *table[K, V]
}

func NewDict[K comparable, V any](config Config) *Dict[K, V] {
	p, _ := newPolicy(config)
	return &Dict[K, V]{
		policy: p,
		table:  newTable[K, V](),
	}
}

// Set stores value under key. An existing key keeps its original tick, even
// if it has already expired but not yet been evicted.
func (d *Dict[K, V]) Set(key K, value V) {
	tick, ok := d.tickOf(key)
	if !ok {
		tick = d.now()
	}
	d.table.set(key, newEntry(tick, value))
}

func (d *Dict[K, V]) tickOf(key K) (int64, bool) {
	e, ok := d.table.get(key)
	return e.tick, ok
}

// Get returns the value for key. It returns ErrNotFound when the key is
// missing or expired; an expired key is removed by the call.
func (d *Dict[K, V]) Get(key K) (V, error) {
	e, ok := d.table.lookup(key, d.expiredAt(d.now()))
	if !ok {
		var zero V
		return zero, notFound(key)
	}
	return e.value, nil
}

// GetOr is Get with fallback in place of ErrNotFound.
func (d *Dict[K, V]) GetOr(key K, fallback V) V {
	e, ok := d.table.lookup(key, d.expiredAt(d.now()))
	if !ok {
		return fallback
	}
	return e.value
}

// TTL returns the time key has left, in TTL units. It returns ErrNotFound
// when the key is missing or expired; an expired key is removed by the call.
func (d *Dict[K, V]) TTL(key K) (float64, error) {
	now := d.now()
	e, ok := d.table.lookup(key, d.expiredAt(now))
	if !ok {
		return 0, notFound(key)
	}
	return d.clock.remaining(e.tick, now, d.ttl), nil
}

// Contains reports whether key is live, removing it if it has expired.
func (d *Dict[K, V]) Contains(key K) bool {
	_, ok := d.table.lookup(key, d.expiredAt(d.now()))
	return ok
}

// Delete removes key without looking at its age. It returns ErrNotFound only
// when the key is not stored at all.
func (d *Dict[K, V]) Delete(key K) error {
	if !d.table.delete(key) {
		return notFound(key)
	}
	return nil
}

// Update stores every pair of values, stamping all of them with the current
// tick whether or not the key was already present.
func (d *Dict[K, V]) Update(values map[K]V) {
	now := d.now()
	for k, v := range values {
		d.table.set(k, newEntry(now, v))
	}
}

func (d *Dict[K, V]) Clear() {
	d.table.clear()
}

// Snapshot evicts and returns a copy of the live pairs.
func (d *Dict[K, V]) Snapshot() map[K]V {
	d.Evict()
	out := make(map[K]V, d.table.itemCount())
	for k, e := range d.table.store {
		out[k] = e.value
	}
	return out
}

// Keys evicts and returns the live keys in no particular order.
func (d *Dict[K, V]) Keys() []K {
	d.Evict()
	out := make([]K, 0, d.table.itemCount())
	for k := range d.table.store {
		out = append(out, k)
	}
	return out
}

func (d *Dict[K, V]) Len() int {
	d.Evict()
	return d.table.itemCount()
}

// Evict removes every expired key. It scans the whole map.
func (d *Dict[K, V]) Evict() {
	d.table.evict(d.expiredAt(d.now()))
}
