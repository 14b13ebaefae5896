package sortx

import "cmp"

// Quick sorts s ascending in place with quicksort.
// Complexity: O(n log n) average, O(n²) worst case
func Quick[T cmp.Ordered](s []T) {
	QuickFunc(s, func(a, b T) bool { return a < b })
}

// QuickFunc sorts s in place with quicksort under the given less function.
// Pivots are chosen by median-of-three to dodge the sorted-input worst case.
func QuickFunc[T any](s []T, less func(a, b T) bool) {
	quick(s, 0, len(s)-1, less)
}

func quick[T any](s []T, lo, hi int, less func(a, b T) bool) {
	for lo < hi {
		// Small ranges finish faster with insertion sort.
		if hi-lo < 12 {
			insertionRange(s, lo, hi, less)

			return
		}

		p := partition(s, lo, hi, less)

		// Recurse into the smaller half; loop on the larger one to keep
		// the stack at O(log n).
		if p-lo < hi-p {
			quick(s, lo, p-1, less)
			lo = p + 1
		} else {
			quick(s, p+1, hi, less)
			hi = p - 1
		}
	}
}

// partition orders s[lo..hi] around a median-of-three pivot and returns
// the pivot's final index (Lomuto scheme).
func partition[T any](s []T, lo, hi int, less func(a, b T) bool) int {
	mid := lo + (hi-lo)/2
	// Sort the (lo, mid, hi) triple, then park the median at hi as pivot.
	if less(s[mid], s[lo]) {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if less(s[hi], s[lo]) {
		s[hi], s[lo] = s[lo], s[hi]
	}
	if less(s[hi], s[mid]) {
		s[hi], s[mid] = s[mid], s[hi]
	}
	s[mid], s[hi] = s[hi], s[mid]

	pivot := s[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if less(s[j], pivot) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]

	return i
}
