package searchx

import (
	"cmp"
	"math"
)

// Linear scans s front to back for target.
// Works on unsorted input.
// Complexity: O(n)
func Linear[T comparable](s []T, target T) (int, bool) {
	for i, v := range s {
		if v == target {
			return i, true
		}
	}

	return 0, false
}

// Binary locates target in the ascending-sorted slice s by iterative
// bisection.
// Complexity: O(log n)
func Binary[T cmp.Ordered](s []T, target T) (int, bool) {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			return mid, true
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return 0, false
}

// BinaryRecursive locates target in the ascending-sorted slice s by
// recursive bisection.
// Complexity: O(log n) time and stack
func BinaryRecursive[T cmp.Ordered](s []T, target T) (int, bool) {
	return binaryRec(s, target, 0, len(s)-1)
}

func binaryRec[T cmp.Ordered](s []T, target T, lo, hi int) (int, bool) {
	if lo > hi {
		return 0, false
	}

	mid := lo + (hi-lo)/2
	switch {
	case s[mid] == target:
		return mid, true
	case s[mid] < target:
		return binaryRec(s, target, mid+1, hi)
	default:
		return binaryRec(s, target, lo, mid-1)
	}
}

// Jump locates target in the ascending-sorted slice s by probing in √n
// strides, then scanning the stride that brackets the target.
// Complexity: O(√n)
func Jump[T cmp.Ordered](s []T, target T) (int, bool) {
	n := len(s)
	if n == 0 {
		return 0, false
	}

	step := int(math.Sqrt(float64(n)))
	if step < 1 {
		step = 1
	}

	// Stride until the block end passes the target.
	prev := 0
	for next := step; prev < n && s[min(next, n)-1] < target; next += step {
		prev = next
	}

	// Linear scan inside the bracketed block.
	for i := prev; i < min(prev+step, n); i++ {
		if s[i] == target {
			return i, true
		}
	}

	return 0, false
}

// Exponential locates target in the ascending-sorted slice s by doubling
// a probe index until it passes the target, then bisecting the bracketed
// range. Efficient when the match sits near the front.
// Complexity: O(log i), i = match position
func Exponential[T cmp.Ordered](s []T, target T) (int, bool) {
	n := len(s)
	if n == 0 {
		return 0, false
	}
	if s[0] == target {
		return 0, true
	}

	bound := 1
	for bound < n && s[bound] < target {
		bound *= 2
	}

	lo, hi := bound/2, min(bound, n-1)
	idx, ok := binaryRec(s[lo:hi+1], target, 0, hi-lo)
	if !ok {
		return 0, false
	}

	return lo + idx, true
}

// Interpolation locates target in the ascending-sorted int slice s by
// estimating its position from the value distribution, the way one opens
// a phone book. Degrades to O(n) on skewed data.
// Complexity: O(log log n) on uniformly distributed input
func Interpolation(s []int, target int) (int, bool) {
	lo, hi := 0, len(s)-1
	for lo <= hi && target >= s[lo] && target <= s[hi] {
		if s[lo] == s[hi] {
			if s[lo] == target {
				return lo, true
			}

			return 0, false
		}

		// Position estimate proportional to the target's value offset,
		// computed in float64 so extreme value spans cannot overflow.
		// Rounding can push the estimate past a bound, hence the clamp.
		frac := (float64(target) - float64(s[lo])) / (float64(s[hi]) - float64(s[lo]))
		pos := lo + int(frac*float64(hi-lo))
		if pos < lo {
			pos = lo
		} else if pos > hi {
			pos = hi
		}
		switch {
		case s[pos] == target:
			return pos, true
		case s[pos] < target:
			lo = pos + 1
		default:
			hi = pos - 1
		}
	}

	return 0, false
}
