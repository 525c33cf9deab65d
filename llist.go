package llist

// List is a doubly linked chain of elements with O(1) access at both
// ends and at most Len()/2 traversal steps for indexed access.
//
// Out of range indexes are not errors: Get and Delete act on the
// nearest valid index, and Insert past the end appends. The zero List
// is ready to use; New returns an initialized one.
//
// A List is not safe for concurrent use. Callers that share a list
// across goroutines must guard every operation with a single lock,
// reads included.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

func New[T any]() *List[T] {
	var l = &List[T]{}
	return l.Init()
}

// Init resets l to the empty state and returns it. It does not touch
// existing elements, call Clear first if the list is not empty. Safe
// to call more than once.
func (l *List[T]) Init() *List[T] {
	if l == nil {
		return nil
	}
	l.head = nil
	l.tail = nil
	l.size = 0
	return l
}

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Front returns the first element, or nil if the list is empty.
func (l *List[T]) Front() *T {
	if l.Len() == 0 {
		return nil
	}
	return &l.head.value
}

// Back returns the last element, or nil if the list is empty.
func (l *List[T]) Back() *T {
	if l.Len() == 0 {
		return nil
	}
	return &l.tail.value
}

// Get returns the element at index i, or nil if the list is empty. The
// pointer refers to the stored element, not a copy. An index beyond
// the end yields the last element.
func (l *List[T]) Get(i int) *T {
	var n = l.nodeAt(i)
	if n == nil {
		return nil
	}
	return &n.value
}

// Add appends v to the end of the list.
func (l *List[T]) Add(v T) {
	if l == nil {
		return
	}
	var n = &node[T]{value: v}
	if l.size == 0 {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		n.prev = l.tail
		l.tail = n
	}
	l.size++
}

// Insert places v at index i, shifting later elements one position
// back. Inserting into an empty list or at an index beyond the end
// appends.
func (l *List[T]) Insert(v T, i int) {
	if l == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if l.size == 0 || i >= l.size {
		l.Add(v)
		return
	}

	var n = &node[T]{value: v}
	if i == 0 {
		n.next = l.head
		l.head.prev = n
		l.head = n
	} else {
		var prev = l.nodeAt(i - 1)
		var next = prev.next
		prev.next = n
		n.prev = prev
		n.next = next
		next.prev = n
	}
	l.size++
}

// Delete removes the element at index i and returns it. An index
// beyond the end removes the last element. The second return is false
// if the list is empty and nothing was removed.
func (l *List[T]) Delete(i int) (T, bool) {
	var zero T
	var n = l.nodeAt(i)
	if n == nil {
		return zero, false
	}

	switch {
	case l.size == 1:
		l.head = nil
		l.tail = nil
	case n == l.head:
		l.head = n.next
		l.head.prev = nil
	case n == l.tail:
		l.tail = n.prev
		l.tail.next = nil
	default:
		n.prev.next = n.next
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
	l.size--
	return n.value, true
}

// Clear drops every element and resets the list to the empty state.
// No-op on an empty list.
func (l *List[T]) Clear() {
	if l.Len() == 0 {
		return
	}
	var current = l.head
	for current != nil {
		var n = current
		current = current.next
		n.prev = nil
		n.next = nil
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// nodeAt returns the node at index i, walking from whichever end is
// closer so the walk never exceeds size/2 steps. Out of range indexes
// clamp to the nearest end. Returns nil if the list is nil or empty.
func (l *List[T]) nodeAt(i int) *node[T] {
	if l.Len() == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= l.size {
		i = l.size - 1
	}

	var n *node[T]
	if i >= l.size/2 {
		n = l.tail
		for j := 0; j < l.size-i-1; j++ {
			n = n.prev
		}
	} else {
		n = l.head
		for j := 0; j < i; j++ {
			n = n.next
		}
	}
	return n
}
