package expiring

// entry is a value stamped with the tick it was inserted at.
type entry[V any] struct {
	tick  int64
	value V
}

func newEntry[V any](tick int64, value V) entry[V] {
	return entry[V]{tick: tick, value: value}
}
