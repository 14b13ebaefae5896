package sortx

import "cmp"

// Shell sorts s ascending with shellsort over the Knuth gap sequence
// (1, 4, 13, 40, …).
// Complexity: O(n^1.5), in place
func Shell[T cmp.Ordered](s []T) {
	ShellFunc(s, func(a, b T) bool { return a < b })
}

// ShellFunc sorts s with shellsort under the given less function.
func ShellFunc[T any](s []T, less func(a, b T) bool) {
	n := len(s)

	// Largest Knuth gap below n.
	gap := 1
	for gap < n/3 {
		gap = 3*gap + 1
	}

	for ; gap >= 1; gap /= 3 {
		// Gapped insertion sort.
		for i := gap; i < n; i++ {
			v := s[i]
			j := i
			for ; j >= gap && less(v, s[j-gap]); j -= gap {
				s[j] = s[j-gap]
			}
			s[j] = v
		}
	}
}
