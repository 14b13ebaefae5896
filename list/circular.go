package list

// CircularList is a singly linked ring closed through a tail pointer:
// tail.next is always the head. An empty ring has a nil tail.
// Construct with NewCircular; not safe for concurrent use.
type CircularList[T any] struct {
	tail *node[T]
	size int
}

// NewCircular creates an empty CircularList.
// Complexity: O(1)
func NewCircular[T any]() *CircularList[T] { return &CircularList[T]{} }

// PushFront prepends v (the new head stays reachable as tail.next).
// Complexity: O(1)
func (l *CircularList[T]) PushFront(v T) {
	n := &node[T]{value: v}
	if l.tail == nil {
		n.next = n
		l.tail = n
	} else {
		n.next = l.tail.next
		l.tail.next = n
	}
	l.size++
}

// PushBack appends v and advances the tail to it.
// Complexity: O(1)
func (l *CircularList[T]) PushBack(v T) {
	l.PushFront(v)
	l.tail = l.tail.next
}

// PopFront removes and returns the head element,
// or ErrEmptyList when the ring is empty.
// Complexity: O(1)
func (l *CircularList[T]) PopFront() (T, error) {
	if l.tail == nil {
		var zero T

		return zero, ErrEmptyList
	}

	head := l.tail.next
	if head == l.tail {
		l.tail = nil
	} else {
		l.tail.next = head.next
	}
	l.size--

	return head.value, nil
}

// PopBack removes and returns the tail element,
// or ErrEmptyList when the ring is empty.
// Complexity: O(n) (the predecessor must be found by walking the ring)
func (l *CircularList[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T

		return zero, ErrEmptyList
	}

	v := l.tail.value
	if l.tail.next == l.tail {
		l.tail = nil
	} else {
		pred := l.tail.next
		for pred.next != l.tail {
			pred = pred.next
		}
		pred.next = l.tail.next
		l.tail = pred
	}
	l.size--

	return v, nil
}

// At returns the element at position i counted from the head,
// or ErrIndexOutOfRange when i is outside [0, Len()).
// Complexity: O(n)
func (l *CircularList[T]) At(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T

		return zero, ErrIndexOutOfRange
	}

	n := l.tail.next
	for ; i > 0; i-- {
		n = n.next
	}

	return n.value, nil
}

// InsertAt inserts v so it ends up at position i counted from the head;
// i == Len() appends. Returns ErrIndexOutOfRange when i is outside
// [0, Len()].
// Complexity: O(n)
func (l *CircularList[T]) InsertAt(i int, v T) error {
	switch {
	case i < 0 || i > l.size:
		return ErrIndexOutOfRange
	case i == 0:
		l.PushFront(v)
	case i == l.size:
		l.PushBack(v)
	default:
		pred := l.tail.next
		for j := 1; j < i; j++ {
			pred = pred.next
		}
		pred.next = &node[T]{value: v, next: pred.next}
		l.size++
	}

	return nil
}

// RemoveAt removes and returns the element at position i counted from
// the head, or ErrIndexOutOfRange when i is outside [0, Len()).
// Complexity: O(n)
func (l *CircularList[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T

		return zero, ErrIndexOutOfRange
	}
	if i == 0 {
		return l.PopFront()
	}

	pred := l.tail.next
	for j := 1; j < i; j++ {
		pred = pred.next
	}
	n := pred.next
	pred.next = n.next
	if n == l.tail {
		l.tail = pred
	}
	l.size--

	return n.value, nil
}

// Rotate advances the head by one position: the current head becomes
// the new tail. Rotating an empty ring is a no-op.
// Complexity: O(1)
func (l *CircularList[T]) Rotate() {
	if l.tail != nil {
		l.tail = l.tail.next
	}
}

// RotateN advances the head by n positions (n is reduced modulo Len()).
// Complexity: O(n mod Len())
func (l *CircularList[T]) RotateN(n int) {
	if l.size == 0 {
		return
	}
	for n %= l.size; n > 0; n-- {
		l.tail = l.tail.next
	}
}

// Values returns the elements head to tail, walking the ring exactly once.
// Complexity: O(n)
func (l *CircularList[T]) Values() []T {
	out := make([]T, 0, l.size)
	if l.tail == nil {
		return out
	}

	n := l.tail.next
	for i := 0; i < l.size; i++ {
		out = append(out, n.value)
		n = n.next
	}

	return out
}

// Len returns the number of stored elements.
func (l *CircularList[T]) Len() int { return l.size }

// Empty reports whether the ring holds no elements.
func (l *CircularList[T]) Empty() bool { return l.size == 0 }

// Clear removes all elements.
// Complexity: O(1)
func (l *CircularList[T]) Clear() {
	l.tail, l.size = nil, 0
}
