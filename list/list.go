package list

import "errors"

// Sentinel errors for list operations.
var (
	// ErrEmptyList indicates PopFront or PopBack on an empty list.
	ErrEmptyList = errors.New("list: list is empty")

	// ErrIndexOutOfRange indicates a position outside [0, Len()).
	ErrIndexOutOfRange = errors.New("list: index out of range")
)

// node is one element of the singly linked list.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list with head and tail pointers.
// The zero value is NOT ready to use; construct with New.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New creates an empty List.
// Complexity: O(1)
func New[T any]() *List[T] { return &List[T]{} }

// PushFront prepends v.
// Complexity: O(1)
func (l *List[T]) PushFront(v T) {
	n := &node[T]{value: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// PushBack appends v.
// Complexity: O(1)
func (l *List[T]) PushBack(v T) {
	n := &node[T]{value: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// PopFront removes and returns the first element,
// or ErrEmptyList when the list is empty.
// Complexity: O(1)
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T

		return zero, ErrEmptyList
	}

	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--

	return n.value, nil
}

// PopBack removes and returns the last element,
// or ErrEmptyList when the list is empty.
// A singly linked list must walk to the predecessor of the tail.
// Complexity: O(n)
func (l *List[T]) PopBack() (T, error) {
	if l.head == nil {
		var zero T

		return zero, ErrEmptyList
	}

	v := l.tail.value
	if l.head == l.tail {
		l.head, l.tail = nil, nil
	} else {
		pred := l.head
		for pred.next != l.tail {
			pred = pred.next
		}
		pred.next = nil
		l.tail = pred
	}
	l.size--

	return v, nil
}

// At returns the element at position i,
// or ErrIndexOutOfRange when i is outside [0, Len()).
// Complexity: O(n)
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T

		return zero, ErrIndexOutOfRange
	}

	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}

	return n.value, nil
}

// InsertAt inserts v so it ends up at position i; i == Len() appends.
// Returns ErrIndexOutOfRange when i is outside [0, Len()].
// Complexity: O(n)
func (l *List[T]) InsertAt(i int, v T) error {
	switch {
	case i < 0 || i > l.size:
		return ErrIndexOutOfRange
	case i == 0:
		l.PushFront(v)
	case i == l.size:
		l.PushBack(v)
	default:
		pred := l.head
		for j := 1; j < i; j++ {
			pred = pred.next
		}
		pred.next = &node[T]{value: v, next: pred.next}
		l.size++
	}

	return nil
}

// RemoveAt removes and returns the element at position i,
// or ErrIndexOutOfRange when i is outside [0, Len()).
// Complexity: O(n)
func (l *List[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T

		return zero, ErrIndexOutOfRange
	}
	if i == 0 {
		return l.PopFront()
	}

	pred := l.head
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

// Reverse reverses the list in place.
// Complexity: O(n)
func (l *List[T]) Reverse() {
	var prev *node[T]
	cur := l.head
	l.tail = l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	l.head = prev
}

// Values returns the elements front to back.
// Complexity: O(n)
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// Len returns the number of stored elements.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Clear removes all elements.
// Complexity: O(1)
func (l *List[T]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}
