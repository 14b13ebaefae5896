// Package searchx implements the classic search strategies over slices.
//
// Linear scans any slice. The remaining strategies — Binary,
// BinaryRecursive, Jump, Exponential and Interpolation — REQUIRE the
// input to be sorted ascending; this precondition is documented, not
// checked, matching their textbook formulations.
//
// Every function returns the index of a match and whether one was found.
// When duplicates exist, the index of any one matching element may be
// returned.
//
// Complexity:
//
//	– Linear:        O(n)
//	– Binary:        O(log n)
//	– Jump:          O(√n)
//	– Exponential:   O(log i), i = match position; good for unbounded fronts
//	– Interpolation: O(log log n) on uniform data, O(n) worst case
package searchx
