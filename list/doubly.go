package list

// dnode is one element of the doubly linked list.
type dnode[T any] struct {
	value T
	prev  *dnode[T]
	next  *dnode[T]
}

// DoublyList is a doubly linked list; both ends support O(1) push and pop,
// and positional access walks from the nearer end.
// Construct with NewDoubly; not safe for concurrent use.
type DoublyList[T any] struct {
	head *dnode[T]
	tail *dnode[T]
	size int
}

// NewDoubly creates an empty DoublyList.
// Complexity: O(1)
func NewDoubly[T any]() *DoublyList[T] { return &DoublyList[T]{} }

// PushFront prepends v.
// Complexity: O(1)
func (l *DoublyList[T]) PushFront(v T) {
	n := &dnode[T]{value: v, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PushBack appends v.
// Complexity: O(1)
func (l *DoublyList[T]) PushBack(v T) {
	n := &dnode[T]{value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the first element,
// or ErrEmptyList when the list is empty.
// Complexity: O(1)
func (l *DoublyList[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T

		return zero, ErrEmptyList
	}

	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.size--

	return n.value, nil
}

// PopBack removes and returns the last element,
// or ErrEmptyList when the list is empty.
// Complexity: O(1)
func (l *DoublyList[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T

		return zero, ErrEmptyList
	}

	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.size--

	return n.value, nil
}

// At returns the element at position i,
// or ErrIndexOutOfRange when i is outside [0, Len()).
// Walks from whichever end is nearer.
// Complexity: O(n), at most n/2 steps
func (l *DoublyList[T]) At(i int) (T, error) {
	n, err := l.nodeAt(i)
	if err != nil {
		var zero T

		return zero, err
	}

	return n.value, nil
}

// InsertAt inserts v so it ends up at position i; i == Len() appends.
// Returns ErrIndexOutOfRange when i is outside [0, Len()].
// Complexity: O(n)
func (l *DoublyList[T]) InsertAt(i int, v T) error {
	switch {
	case i < 0 || i > l.size:
		return ErrIndexOutOfRange
	case i == 0:
		l.PushFront(v)
	case i == l.size:
		l.PushBack(v)
	default:
		at, _ := l.nodeAt(i)
		n := &dnode[T]{value: v, prev: at.prev, next: at}
		at.prev.next = n
		at.prev = n
		l.size++
	}

	return nil
}

// RemoveAt removes and returns the element at position i,
// or ErrIndexOutOfRange when i is outside [0, Len()).
// Complexity: O(n)
func (l *DoublyList[T]) RemoveAt(i int) (T, error) {
	n, err := l.nodeAt(i)
	if err != nil {
		var zero T

		return zero, err
	}

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.size--

	return n.value, nil
}

// Reverse reverses the list in place by swapping every node's links.
// Complexity: O(n)
func (l *DoublyList[T]) Reverse() {
	cur := l.head
	l.head, l.tail = l.tail, l.head
	for cur != nil {
		cur.prev, cur.next = cur.next, cur.prev
		cur = cur.prev // prev is the old next
	}
}

// Values returns the elements front to back.
// Complexity: O(n)
func (l *DoublyList[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// ValuesReverse returns the elements back to front.
// Complexity: O(n)
func (l *DoublyList[T]) ValuesReverse() []T {
	out := make([]T, 0, l.size)
	for n := l.tail; n != nil; n = n.prev {
		out = append(out, n.value)
	}

	return out
}

// Len returns the number of stored elements.
func (l *DoublyList[T]) Len() int { return l.size }

// Empty reports whether the list holds no elements.
func (l *DoublyList[T]) Empty() bool { return l.size == 0 }

// Clear removes all elements.
// Complexity: O(1)
func (l *DoublyList[T]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}

// nodeAt returns the node at position i, walking from the nearer end.
func (l *DoublyList[T]) nodeAt(i int) (*dnode[T], error) {
	if i < 0 || i >= l.size {
		return nil, ErrIndexOutOfRange
	}

	if i < l.size/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}

		return n, nil
	}

	n := l.tail
	for j := l.size - 1; j > i; j-- {
		n = n.prev
	}

	return n, nil
}
