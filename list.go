package expiring

// List is an append-only sequence whose elements expire TTL after they were
// appended. Elements keep insertion order.
type List[T any] struct {
	policy
	items *queue[T]
	equal func(a, b T) bool
}

// NewList returns a List that compares elements with ==.
func NewList[T comparable](config Config) *List[T] {
	return NewListFunc(config, func(a, b T) bool { return a == b })
}

// NewListFunc returns a List that compares elements with equal, for element
// types that are not comparable or need a looser notion of equality.
func NewListFunc[T any](config Config, equal func(a, b T) bool) *List[T] {
	p, cfg := newPolicy(config)
	return &List[T]{
		policy: p,
		items:  newQueue[T](cfg.MaxLength),
		equal:  equal,
	}
}

func (l *List[T]) Append(item T) {
	l.items.pushBack(newEntry(l.now(), item))
}

// Extend appends items in order. They all share one tick, so they also
// expire together.
func (l *List[T]) Extend(items ...T) {
	now := l.now()
	for _, item := range items {
		l.items.pushBack(newEntry(now, item))
	}
}

// Snapshot evicts and returns the live elements, oldest first.
func (l *List[T]) Snapshot() []T {
	l.Evict()
	out := make([]T, 0, l.items.len())
	l.items.each(func(n *node[T]) bool {
		out = append(out, n.value.value)
		return true
	})
	return out
}

// Count evicts and returns how many live elements equal item.
func (l *List[T]) Count(item T) int {
	l.Evict()
	count := 0
	l.items.each(func(n *node[T]) bool {
		if l.equal(n.value.value, item) {
			count++
		}
		return true
	})
	return count
}

// Remove evicts, then deletes the first live element equal to item. It
// reports whether one was found; a missing item is not an error.
func (l *List[T]) Remove(item T) bool {
	l.Evict()
	var found *node[T]
	l.items.each(func(n *node[T]) bool {
		if l.equal(n.value.value, item) {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return false
	}
	l.items.remove(found)
	return true
}

func (l *List[T]) Len() int {
	l.Evict()
	return l.items.len()
}

func (l *List[T]) Clear() {
	l.items.clear()
}

func (l *List[T]) Evict() {
	l.items.trim(l.expiredAt(l.now()))
}
