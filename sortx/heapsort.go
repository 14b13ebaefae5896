package sortx

import (
	"cmp"

	"github.com/katalvlaran/lvlds/heap"
)

// Heap sorts s ascending via a binary min-heap.
// Complexity: O(n log n)
func Heap[T cmp.Ordered](s []T) {
	HeapFunc(s, func(a, b T) bool { return a < b })
}

// HeapFunc sorts s under the given less function by heapifying the whole
// slice in O(n) and popping the minimum back into place n times.
func HeapFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}

	h, _ := heap.NewWith(less)
	h.Heapify(s)
	for i := range s {
		s[i], _ = h.Pop()
	}
}
