package heap

import (
	"cmp"
	"errors"
)

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap indicates Pop or Peek on an empty heap or priority queue.
	ErrEmptyHeap = errors.New("heap: heap is empty")

	// ErrNilLess indicates NewWith was given a nil less function.
	ErrNilLess = errors.New("heap: less function is nil")
)

// Heap is a generic array-backed binary heap. The element at index 0 is
// the minimum under the heap's less function. Construct with NewMin,
// NewMax or NewWith; not safe for concurrent use.
type Heap[T any] struct {
	data []T
	less func(a, b T) bool
}

// NewMin creates an empty min-heap over the natural order of T.
// Complexity: O(1)
func NewMin[T cmp.Ordered]() *Heap[T] {
	h, _ := NewWith[T](func(a, b T) bool { return a < b })

	return h
}

// NewMax creates an empty max-heap over the natural order of T.
// Complexity: O(1)
func NewMax[T cmp.Ordered]() *Heap[T] {
	h, _ := NewWith[T](func(a, b T) bool { return a > b })

	return h
}

// NewWith creates an empty heap ordered by less.
// Returns ErrNilLess when less is nil.
// Complexity: O(1)
func NewWith[T any](less func(a, b T) bool) (*Heap[T], error) {
	if less == nil {
		return nil, ErrNilLess
	}

	return &Heap[T]{less: less}, nil
}

// Push adds v to the heap.
// Complexity: O(log n)
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the top element,
// or ErrEmptyHeap when the heap is empty.
// Complexity: O(log n)
func (h *Heap[T]) Pop() (T, error) {
	if len(h.data) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}

	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	var zero T
	h.data[last] = zero // drop the reference for the GC
	h.data = h.data[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return top, nil
}

// Peek returns the top element without removing it,
// or ErrEmptyHeap when the heap is empty.
// Complexity: O(1)
func (h *Heap[T]) Peek() (T, error) {
	if len(h.data) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}

	return h.data[0], nil
}

// Heapify replaces the heap's content with items, restoring the heap
// property bottom-up. The input slice is copied, not aliased.
// Complexity: O(n)
func (h *Heap[T]) Heapify(items []T) {
	h.data = append(h.data[:0:0], items...)
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// Len returns the number of stored elements.
func (h *Heap[T]) Len() int { return len(h.data) }

// Empty reports whether the heap holds no elements.
func (h *Heap[T]) Empty() bool { return len(h.data) == 0 }

// Clear removes all elements.
// Complexity: O(1)
func (h *Heap[T]) Clear() { h.data = nil }

// siftUp bubbles the element at index i toward the root until its parent
// is not greater under less.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			return
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// siftDown sinks the element at index i until both children are not
// smaller under less.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.less(h.data[left], h.data[smallest]) {
			smallest = left
		}
		if right < n && h.less(h.data[right], h.data[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
