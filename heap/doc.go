// Package heap provides a generic binary heap and a priority queue
// built on top of it.
//
// Heap[T] is an array-backed binary heap ordered by a caller-supplied
// less function (NewMin/NewMax cover the natural order of cmp.Ordered
// types). PriorityQueue[T] pairs arbitrary values with explicit int64
// priorities and dequeues lowest-priority-first (or highest, with
// WithMaxFirst); ties break FIFO.
//
// Complexity:
//
//	– Push / Pop:  O(log n)
//	– Peek:        O(1)
//	– Heapify:     O(n) bottom-up build
//
// Errors (sentinel):
//
//	– ErrEmptyHeap if Pop or Peek is called on an empty heap or queue.
//	– ErrNilLess   if NewWith receives a nil less function.
//
// Neither type is safe for concurrent use.
package heap
