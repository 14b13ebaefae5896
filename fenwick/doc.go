// Package fenwick implements a Fenwick tree (binary indexed tree) over
// int64 values: point updates and prefix/range sums in logarithmic time
// on a fixed-size array.
//
// The structure stores partial sums in an implicit tree addressed by the
// lowest set bit of each index, so both Add and PrefixSum touch at most
// ⌈log₂ n⌉ cells.
//
// Complexity:
//
//	– Add / PrefixSum / RangeSum: O(log n).
//	– New:                        O(n) allocation, Len: O(1).
//
// Errors (sentinel):
//
//	– ErrBadSize          if New is given a negative size.
//	– ErrIndexOutOfRange  if an index falls outside [0, n).
//
// Example usage:
//
//	ft, _ := fenwick.New(8)
//	_ = ft.Add(3, 5)
//	_ = ft.Add(5, 2)
//	sum, _ := ft.RangeSum(2, 6) // 7
package fenwick
