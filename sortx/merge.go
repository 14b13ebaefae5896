package sortx

import "cmp"

// Merge sorts s ascending with a stable top-down merge sort.
// Complexity: O(n log n), O(n) extra space
func Merge[T cmp.Ordered](s []T) {
	MergeFunc(s, func(a, b T) bool { return a < b })
}

// MergeFunc sorts s with merge sort under the given less function.
// Equal elements keep their relative order (stability).
func MergeFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}

	buf := make([]T, len(s))
	mergeSort(s, buf, less)
}

func mergeSort[T any](s, buf []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}

	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], less)
	mergeSort(s[mid:], buf[mid:], less)

	// Merge the sorted halves through the scratch buffer.
	copy(buf, s)
	i, j := 0, mid
	for k := 0; k < len(s); k++ {
		switch {
		case i >= mid:
			s[k] = buf[j]
			j++
		case j >= len(s):
			s[k] = buf[i]
			i++
		case less(buf[j], buf[i]):
			s[k] = buf[j]
			j++
		default:
			// The left element wins ties: stability.
			s[k] = buf[i]
			i++
		}
	}
}
