package dsu

import "errors"

// Sentinel errors for disjoint-set operations.
var (
	// ErrBadSize indicates New was given a negative element count.
	ErrBadSize = errors.New("dsu: size must be non-negative")

	// ErrElementOutOfRange indicates an element outside [0, n).
	ErrElementOutOfRange = errors.New("dsu: element out of range")
)

// DisjointSet partitions the elements 0..n-1 into merge-only sets.
// Construct with New; not safe for concurrent use.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int // number of disjoint sets
}

// New creates a DisjointSet of n singleton sets {0}, {1}, …, {n-1}.
// Returns ErrBadSize when n is negative.
// Complexity: O(n)
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, ErrBadSize
	}

	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d, nil
}

// Find returns the representative of x's set, compressing the path so
// later finds on the same branch are O(1).
// Returns ErrElementOutOfRange when x is outside [0, n).
// Complexity: amortized O(α(n))
func (d *DisjointSet) Find(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, ErrElementOutOfRange
	}

	return d.find(x), nil
}

// Union merges the sets containing x and y, attaching the lower-rank
// root below the higher. Reports whether a merge happened (false when
// x and y were already in the same set).
// Complexity: amortized O(α(n))
func (d *DisjointSet) Union(x, y int) (bool, error) {
	if x < 0 || x >= len(d.parent) || y < 0 || y >= len(d.parent) {
		return false, ErrElementOutOfRange
	}

	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return false, nil
	}

	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--

	return true, nil
}

// Connected reports whether x and y belong to the same set.
// Complexity: amortized O(α(n))
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	if x < 0 || x >= len(d.parent) || y < 0 || y >= len(d.parent) {
		return false, ErrElementOutOfRange
	}

	return d.find(x) == d.find(y), nil
}

// Count returns the current number of disjoint sets.
// Complexity: O(1)
func (d *DisjointSet) Count() int { return d.count }

// Len returns the total number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// SetSize returns the size of the set containing x.
// Complexity: O(n)
func (d *DisjointSet) SetSize(x int) (int, error) {
	root, err := d.Find(x)
	if err != nil {
		return 0, err
	}

	size := 0
	for i := range d.parent {
		if d.find(i) == root {
			size++
		}
	}

	return size, nil
}

// find is the unchecked recursive find with path compression.
func (d *DisjointSet) find(x int) int {
	if d.parent[x] != x {
		d.parent[x] = d.find(d.parent[x])
	}

	return d.parent[x]
}
