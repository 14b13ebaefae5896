package queue

// Ring is a bounded FIFO queue over a fixed circular buffer.
// Enqueue on a full ring fails with ErrFullQueue; the buffer never grows.
type Ring[T any] struct {
	buf  []T
	head int // index of the front element
	size int // number of stored elements
}

// NewRing creates an empty Ring with the given fixed capacity.
// Returns ErrBadCapacity when capacity < 1.
// Complexity: O(1)
func NewRing[T any](capacity int) (*Ring[T], error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}

	return &Ring[T]{buf: make([]T, capacity)}, nil
}

// Enqueue appends v at the back of the ring,
// or returns ErrFullQueue at capacity.
// Complexity: O(1)
func (r *Ring[T]) Enqueue(v T) error {
	if r.size == len(r.buf) {
		return ErrFullQueue
	}

	r.buf[(r.head+r.size)%len(r.buf)] = v
	r.size++

	return nil
}

// Dequeue removes and returns the front element,
// or ErrEmptyQueue when the ring is empty.
// Complexity: O(1)
func (r *Ring[T]) Dequeue() (T, error) {
	if r.size == 0 {
		var zero T

		return zero, ErrEmptyQueue
	}

	v := r.buf[r.head]
	var zero T
	r.buf[r.head] = zero // drop the reference for the GC
	r.head = (r.head + 1) % len(r.buf)
	r.size--

	return v, nil
}

// Front returns the front element without removing it,
// or ErrEmptyQueue when the ring is empty.
// Complexity: O(1)
func (r *Ring[T]) Front() (T, error) {
	if r.size == 0 {
		var zero T

		return zero, ErrEmptyQueue
	}

	return r.buf[r.head], nil
}

// Len returns the number of stored elements.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the fixed capacity of the ring.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Empty reports whether the ring holds no elements.
func (r *Ring[T]) Empty() bool { return r.size == 0 }

// Full reports whether the ring is at capacity.
func (r *Ring[T]) Full() bool { return r.size == len(r.buf) }

// Clear removes all elements, keeping the capacity.
// Complexity: O(n) (references are zeroed for the GC)
func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.head, r.size = 0, 0
}

// Values returns the stored elements front to back.
// Complexity: O(n)
func (r *Ring[T]) Values() []T {
	out := make([]T, 0, r.size)
	for i := 0; i < r.size; i++ {
		out = append(out, r.buf[(r.head+i)%len(r.buf)])
	}

	return out
}
