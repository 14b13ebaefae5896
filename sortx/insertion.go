package sortx

import "cmp"

// Insertion sorts s ascending with a stable insertion sort.
// Complexity: O(n²) worst case, O(n) on nearly-sorted input
func Insertion[T cmp.Ordered](s []T) {
	InsertionFunc(s, func(a, b T) bool { return a < b })
}

// InsertionFunc sorts s with insertion sort under the given less function.
func InsertionFunc[T any](s []T, less func(a, b T) bool) {
	insertionRange(s, 0, len(s)-1, less)
}

// insertionRange sorts s[lo..hi] inclusive; shared with quicksort's
// small-range cutoff.
func insertionRange[T any](s []T, lo, hi int, less func(a, b T) bool) {
	for i := lo + 1; i <= hi; i++ {
		v := s[i]
		j := i
		for ; j > lo && less(v, s[j-1]); j-- {
			s[j] = s[j-1]
		}
		s[j] = v
	}
}
