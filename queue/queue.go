package queue

import "errors"

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue indicates Dequeue, Front or Back on an empty queue.
	ErrEmptyQueue = errors.New("queue: queue is empty")

	// ErrFullQueue indicates Enqueue on a Ring at full capacity.
	ErrFullQueue = errors.New("queue: ring is full")

	// ErrBadCapacity indicates NewRing was given a non-positive capacity.
	ErrBadCapacity = errors.New("queue: capacity must be positive")
)

// node is one element of the linked queue.
type node[T any] struct {
	value T
	next  *node[T]
}

// Queue is an unbounded FIFO queue backed by a singly linked list.
// The zero value is NOT ready to use; construct with New.
type Queue[T any] struct {
	front *node[T]
	back  *node[T]
	size  int
}

// New creates an empty Queue.
// Complexity: O(1)
func New[T any]() *Queue[T] { return &Queue[T]{} }

// Enqueue appends v at the back of the queue.
// Complexity: O(1)
func (q *Queue[T]) Enqueue(v T) {
	n := &node[T]{value: v}
	if q.back == nil {
		q.front, q.back = n, n
	} else {
		q.back.next = n
		q.back = n
	}
	q.size++
}

// Dequeue removes and returns the front element,
// or ErrEmptyQueue when the queue is empty.
// Complexity: O(1)
func (q *Queue[T]) Dequeue() (T, error) {
	if q.front == nil {
		var zero T

		return zero, ErrEmptyQueue
	}

	n := q.front
	q.front = n.next
	if q.front == nil {
		q.back = nil
	}
	q.size--

	return n.value, nil
}

// Front returns the front element without removing it,
// or ErrEmptyQueue when the queue is empty.
// Complexity: O(1)
func (q *Queue[T]) Front() (T, error) {
	if q.front == nil {
		var zero T

		return zero, ErrEmptyQueue
	}

	return q.front.value, nil
}

// Back returns the back element without removing it,
// or ErrEmptyQueue when the queue is empty.
// Complexity: O(1)
func (q *Queue[T]) Back() (T, error) {
	if q.back == nil {
		var zero T

		return zero, ErrEmptyQueue
	}

	return q.back.value, nil
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.size == 0 }

// Clear removes all elements.
// Complexity: O(1)
func (q *Queue[T]) Clear() {
	q.front, q.back, q.size = nil, nil, 0
}

// Values returns the queued elements front to back.
// Complexity: O(n)
func (q *Queue[T]) Values() []T {
	out := make([]T, 0, q.size)
	for n := q.front; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}
