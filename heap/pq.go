package heap

// pqItem pairs a value with its priority and an insertion sequence
// number used to break priority ties FIFO.
type pqItem[T any] struct {
	value    T
	priority int64
	seq      uint64
}

// PQOptions configures a PriorityQueue before creation.
//
// MaxFirst – dequeue highest priority first instead of lowest.
type PQOptions struct {
	MaxFirst bool
}

// PQOption represents a functional option for configuring a PriorityQueue.
type PQOption func(*PQOptions)

// WithMaxFirst makes Pop return the highest-priority element first.
// Default (if not set) is lowest-priority-first.
func WithMaxFirst() PQOption {
	return func(o *PQOptions) { o.MaxFirst = true }
}

// PriorityQueue is a queue of values ordered by explicit int64 priorities.
// Equal priorities dequeue in insertion (FIFO) order.
// Not safe for concurrent use.
type PriorityQueue[T any] struct {
	h    *Heap[pqItem[T]]
	next uint64
}

// NewPriorityQueue creates an empty PriorityQueue.
// Complexity: O(1)
func NewPriorityQueue[T any](opts ...PQOption) *PriorityQueue[T] {
	var cfg PQOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	less := func(a, b pqItem[T]) bool {
		if a.priority != b.priority {
			if cfg.MaxFirst {
				return a.priority > b.priority
			}

			return a.priority < b.priority
		}

		// FIFO within equal priorities.
		return a.seq < b.seq
	}
	h, _ := NewWith[pqItem[T]](less)

	return &PriorityQueue[T]{h: h}
}

// Push enqueues value with the given priority.
// Complexity: O(log n)
func (pq *PriorityQueue[T]) Push(value T, priority int64) {
	pq.h.Push(pqItem[T]{value: value, priority: priority, seq: pq.next})
	pq.next++
}

// Pop removes and returns the front value (best priority, FIFO on ties),
// or ErrEmptyHeap when the queue is empty.
// Complexity: O(log n)
func (pq *PriorityQueue[T]) Pop() (T, error) {
	item, err := pq.h.Pop()
	if err != nil {
		var zero T

		return zero, err
	}

	return item.value, nil
}

// Peek returns the front value without removing it,
// or ErrEmptyHeap when the queue is empty.
// Complexity: O(1)
func (pq *PriorityQueue[T]) Peek() (T, error) {
	item, err := pq.h.Peek()
	if err != nil {
		var zero T

		return zero, err
	}

	return item.value, nil
}

// Len returns the number of queued values.
func (pq *PriorityQueue[T]) Len() int { return pq.h.Len() }

// Empty reports whether the queue holds no values.
func (pq *PriorityQueue[T]) Empty() bool { return pq.h.Empty() }

// Clear removes all values.
// Complexity: O(1)
func (pq *PriorityQueue[T]) Clear() { pq.h.Clear() }
