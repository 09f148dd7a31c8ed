package expiring

// Number is the set of types a Sum can accumulate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum totals the deltas recorded within the last TTL. Deltas may be
// negative; the total is never clamped.
type Sum[N Number] struct {
	policy
	deltas *queue[N]
}

func NewSum[N Number](config Config) *Sum[N] {
	p, cfg := newPolicy(config)
	return &Sum[N]{
		policy: p,
		deltas: newQueue[N](cfg.MaxLength),
	}
}

// Change records delta at the current tick.
func (s *Sum[N]) Change(delta N) {
	s.deltas.pushBack(newEntry(s.now(), delta))
}

// Value evicts expired deltas and returns the total of the rest, or zero.
func (s *Sum[N]) Value() N {
	s.Evict()
	var total N
	s.deltas.each(func(n *node[N]) bool {
		total += n.value.value
		return true
	})
	return total
}

// Len evicts and returns the number of live deltas.
func (s *Sum[N]) Len() int {
	s.Evict()
	return s.deltas.len()
}

func (s *Sum[N]) Evict() {
	s.deltas.trim(s.expiredAt(s.now()))
}

func (s *Sum[N]) Clear() {
	s.deltas.clear()
}
