package expiring

// node is a link in a queue. Nodes are recycled through the queue's free
// list, so a caller must not keep a node after removing it.
type node[T any] struct {
	next  *node[T]
	prev  *node[T]
	value entry[T]
}

// queue is a tick-ordered FIFO of entries. Entries are only ever appended at
// the tail with a tick no smaller than the current tail's, so the head is
// always the oldest entry and expiry is a prefix trim.
//
// A positive limit bounds the length; pushing onto a full queue drops the
// head first, whatever its age.
type queue[T any] struct {
	head  *node[T]
	tail  *node[T]
	size  int
	limit int
	free  freeList[T]
}

func newQueue[T any](limit int) *queue[T] {
	if limit < 0 {
		limit = 0
	}
	return &queue[T]{
		limit: limit,
		free:  newFreeList[T](min(limit, defaultFreeListSize)),
	}
}

func (q *queue[T]) len() int {
	return q.size
}

func (q *queue[T]) pushBack(e entry[T]) {
	if q.limit > 0 && q.size >= q.limit {
		q.popFront()
	}
	n := q.free.get()
	n.value = e
	n.prev = q.tail
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

func (q *queue[T]) front() (entry[T], bool) {
	if q.head == nil {
		return entry[T]{}, false
	}
	return q.head.value, true
}

func (q *queue[T]) popFront() {
	q.remove(q.head)
}

func (q *queue[T]) remove(n *node[T]) {
	if n == nil {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		q.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		q.tail = n.prev
	}
	q.size--
	q.free.put(n)
}

// trim pops every head entry for which expired reports true and returns the
// number removed. It stops at the first survivor.
func (q *queue[T]) trim(expired func(tick int64) bool) int {
	removed := 0
	for {
		e, ok := q.front()
		if !ok || !expired(e.tick) {
			return removed
		}
		q.popFront()
		removed++
	}
}

// each calls fn for every entry from oldest to newest until fn returns false.
func (q *queue[T]) each(fn func(n *node[T]) bool) {
	for n := q.head; n != nil; n = n.next {
		if !fn(n) {
			return
		}
	}
}

func (q *queue[T]) clear() {
	for q.head != nil {
		q.popFront()
	}
}
