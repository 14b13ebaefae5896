package fenwick

import "errors"

// Sentinel errors for Fenwick tree operations.
var (
	// ErrBadSize indicates New was given a negative size.
	ErrBadSize = errors.New("fenwick: size must be non-negative")

	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")
)

// Tree is a Fenwick (binary indexed) tree over a fixed number of int64
// slots, all starting at zero.
//
// The zero value is not usable; construct with New.
// A Tree is not safe for concurrent use.
type Tree struct {
	// bit is 1-indexed: bit[i] holds the sum of the (i & -i) slots
	// ending at slot i−1 of the public 0-indexed view.
	bit []int64
	n   int
}

// New creates a Tree with n zero-valued slots.
// Returns ErrBadSize when n is negative.
// Complexity: O(n)
func New(n int) (*Tree, error) {
	if n < 0 {
		return nil, ErrBadSize
	}

	return &Tree{bit: make([]int64, n+1), n: n}, nil
}

// Len returns the number of slots.
// Complexity: O(1)
func (t *Tree) Len() int { return t.n }

// Add adds delta to the value at index i.
// Complexity: O(log n)
func (t *Tree) Add(i int, delta int64) error {
	if i < 0 || i >= t.n {
		return ErrIndexOutOfRange
	}

	for i++; i <= t.n; i += i & -i {
		t.bit[i] += delta
	}

	return nil
}

// PrefixSum returns the sum of the values at indexes 0 through i inclusive.
// Complexity: O(log n)
func (t *Tree) PrefixSum(i int) (int64, error) {
	if i < 0 || i >= t.n {
		return 0, ErrIndexOutOfRange
	}

	var sum int64
	for i++; i > 0; i -= i & -i {
		sum += t.bit[i]
	}

	return sum, nil
}

// RangeSum returns the sum of the values at indexes lo through hi
// inclusive. Returns ErrIndexOutOfRange when the bounds fall outside
// the tree or lo > hi.
// Complexity: O(log n)
func (t *Tree) RangeSum(lo, hi int) (int64, error) {
	if lo < 0 || hi >= t.n || lo > hi {
		return 0, ErrIndexOutOfRange
	}

	total, err := t.PrefixSum(hi)
	if err != nil {
		return 0, err
	}
	if lo == 0 {
		return total, nil
	}

	head, err := t.PrefixSum(lo - 1)
	if err != nil {
		return 0, err
	}

	return total - head, nil
}
