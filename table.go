package expiring

// table is the keyed store behind Dict and Set. Map iteration order says
// nothing about age, so eviction has to look at every key.
type table[K comparable, V any] struct {
	store map[K]entry[V]
}

func newTable[K comparable, V any]() *table[K, V] {
	return &table[K, V]{store: make(map[K]entry[V])}
}

func (t *table[K, V]) itemCount() int {
	return len(t.store)
}

func (t *table[K, V]) get(key K) (entry[V], bool) {
	e, ok := t.store[key]
	return e, ok
}

func (t *table[K, V]) set(key K, e entry[V]) {
	t.store[key] = e
}

func (t *table[K, V]) delete(key K) bool {
	if _, ok := t.store[key]; !ok {
		return false
	}
	delete(t.store, key)
	return true
}

func (t *table[K, V]) clear() {
	t.store = make(map[K]entry[V])
}

// lookup returns the live entry for key. A present but expired entry is
// deleted and reported as missing.
func (t *table[K, V]) lookup(key K, expired func(tick int64) bool) (entry[V], bool) {
	e, ok := t.store[key]
	if !ok {
		return entry[V]{}, false
	}
	if expired(e.tick) {
		delete(t.store, key)
		return entry[V]{}, false
	}
	return e, true
}

// evict collects the expired keys first and deletes them afterwards, so the
// map is never mutated while it is being ranged over.
func (t *table[K, V]) evict(expired func(tick int64) bool) int {
	var stale []K
	for k, e := range t.store {
		if expired(e.tick) {
			stale = append(stale, k)
		}
	}
	for _, k := range stale {
		delete(t.store, k)
	}
	return len(stale)
}
