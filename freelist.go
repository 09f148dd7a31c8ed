package expiring

const defaultFreeListSize = 64

// freeList keeps unlinked queue nodes for reuse. It holds at most cap(items)
// nodes; anything beyond that is left to the garbage collector.
type freeList[T any] struct {
	items []*node[T]
}

func newFreeList[T any](size int) freeList[T] {
	if size <= 0 {
		size = defaultFreeListSize
	}
	return freeList[T]{
		items: make([]*node[T], 0, size),
	}
}

// get returns a recycled node, or a fresh one when the list is empty.
func (f *freeList[T]) get() *node[T] {
	if len(f.items) == 0 {
		return &node[T]{}
	}

	n := f.items[len(f.items)-1]
	f.items[len(f.items)-1] = nil
	f.items = f.items[:len(f.items)-1]
	return n
}

func (f *freeList[T]) put(n *node[T]) {
	if len(f.items) == cap(f.items) {
		return
	}
	*n = node[T]{}
	f.items = append(f.items, n)
}

func (f *freeList[T]) len() int {
	return len(f.items)
}

func (f *freeList[T]) cap() int {
	return cap(f.items)
}
