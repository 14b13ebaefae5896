package sortx

// maxCountingSpan caps the value range (max − min) Counting will
// allocate a counting array for.
const maxCountingSpan = 1 << 26

// Counting sorts s ascending with a stable counting sort. The value
// range (max − min) dictates the auxiliary space, so it suits dense
// integer data such as grades, ages or bucketed measurements. Inputs
// whose range exceeds an internal cap are handed to Quick instead.
// Complexity: O(n + k) time and O(k) space, k = max − min + 1
func Counting(s []int) {
	if len(s) < 2 {
		return
	}

	lo, hi := s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	// The unsigned difference is exact even when hi−lo exceeds the int
	// range, so extreme spans route to Quick instead of a huge (or
	// wrapped-negative) allocation.
	span := uint(hi) - uint(lo)
	if span >= maxCountingSpan {
		Quick(s)
		return
	}

	counts := make([]int, span+1)
	for _, v := range s {
		counts[v-lo]++
	}

	i := 0
	for v, c := range counts {
		for ; c > 0; c-- {
			s[i] = v + lo
			i++
		}
	}
}
