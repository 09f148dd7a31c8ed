package expiring

// Set holds items that expire TTL after they were last added. Unlike
// Dict.Set, adding an item that is already present restarts its TTL.
type Set[T comparable] struct {
	policy
	table *table[T, struct{}]
}

func NewSet[T comparable](config Config) *Set[T] {
	p, _ := newPolicy(config)
	return &Set[T]{
		policy: p,
		table:  newTable[T, struct{}](),
	}
}

func (s *Set[T]) Add(item T) {
	s.table.set(item, newEntry(s.now(), struct{}{}))
}

// Remove deletes item without looking at its age. It returns ErrNotFound
// only when the item is not stored at all.
func (s *Set[T]) Remove(item T) error {
	if !s.table.delete(item) {
		return notFound(item)
	}
	return nil
}

// Update adds every item with one shared tick.
func (s *Set[T]) Update(items ...T) {
	now := s.now()
	for _, item := range items {
		s.table.set(item, newEntry(now, struct{}{}))
	}
}

// Contains reports whether item is live, removing it if it has expired.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.table.lookup(item, s.expiredAt(s.now()))
	return ok
}

// Snapshot evicts and returns a copy of the live items.
func (s *Set[T]) Snapshot() map[T]struct{} {
	s.Evict()
	out := make(map[T]struct{}, s.table.itemCount())
	for item := range s.table.store {
		out[item] = struct{}{}
	}
	return out
}

func (s *Set[T]) Len() int {
	s.Evict()
	return s.table.itemCount()
}

func (s *Set[T]) Clear() {
	s.table.clear()
}

func (s *Set[T]) Evict() {
	s.table.evict(s.expiredAt(s.now()))
}
