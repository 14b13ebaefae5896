// Package sortx implements the classic comparison and distribution sorts
// as standalone, in-place functions over slices.
//
// Comparison sorts come in two flavors: a natural-order form for
// cmp.Ordered element types (Quick, Merge, Heap, Shell, Insertion) and a
// Func form taking an explicit less function (QuickFunc, MergeFunc, …).
// Distribution sorts (Counting, Radix) operate on int slices and never
// compare elements.
//
// Complexity:
//
//	– Quick:     O(n log n) average, O(n²) worst, in place
//	– Merge:     O(n log n) worst, O(n) extra space, stable
//	– Heap:      O(n log n) worst, O(n) extra space (uses the heap package)
//	– Shell:     O(n^1.5) with the Knuth gap sequence, in place
//	– Insertion: O(n²) worst, O(n) on nearly-sorted input, stable, in place
//	– Counting:  O(n + k) where k is the value range, stable
//	– Radix:     O(d·n) for d decimal digits, handles negatives
//
// All functions sort ascending and treat nil or single-element slices as
// already sorted.
package sortx
