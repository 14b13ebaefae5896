// Package dsu implements a disjoint-set union (union-find) over the
// elements 0..n-1.
//
// Find uses path compression and Union uses union by rank, giving the
// classical near-constant amortized cost O(α(n)) per operation, where α
// is the inverse Ackermann function.
//
// Errors (sentinel):
//
//	– ErrBadSize           if New receives a negative size.
//	– ErrElementOutOfRange if an element is outside [0, n).
package dsu
