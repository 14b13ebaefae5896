package sortx

// Radix sorts s ascending with an LSD base-10 radix sort. Negative
// values are partitioned out, sorted as unsigned magnitudes, and
// spliced back in reverse, so the full int range is supported.
// Complexity: O(d·n) for d decimal digits
func Radix(s []int) {
	if len(s) < 2 {
		return
	}

	// Partition into unsigned magnitudes. The magnitude of a negative v
	// is taken as -(v+1)+1 so the minimum int does not overflow.
	neg := make([]uint, 0)
	pos := make([]uint, 0, len(s))
	for _, v := range s {
		if v < 0 {
			neg = append(neg, uint(-(v+1))+1)
		} else {
			pos = append(pos, uint(v))
		}
	}

	radixMagnitudes(neg)
	radixMagnitudes(pos)

	// Negatives re-enter greatest-magnitude first.
	i := 0
	for j := len(neg) - 1; j >= 0; j-- {
		s[i] = -int(neg[j]-1) - 1
		i++
	}
	for _, m := range pos {
		s[i] = int(m)
		i++
	}
}

// radixMagnitudes sorts unsigned magnitudes by stable per-digit counting
// passes, least significant digit first.
func radixMagnitudes(s []uint) {
	if len(s) < 2 {
		return
	}

	maxVal := s[0]
	for _, v := range s[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	buf := make([]uint, len(s))
	for exp := uint(1); maxVal/exp > 0; exp *= 10 {
		var counts [10]int
		for _, v := range s {
			counts[(v/exp)%10]++
		}
		// Prefix sums turn counts into end positions.
		for d := 1; d < 10; d++ {
			counts[d] += counts[d-1]
		}
		// Stable placement requires a backward pass.
		for i := len(s) - 1; i >= 0; i-- {
			d := (s[i] / exp) % 10
			counts[d]--
			buf[counts[d]] = s[i]
		}
		copy(s, buf)
	}
}
