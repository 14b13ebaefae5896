// Package avl implements a generic self-balancing binary search tree
// (AVL tree) with strict height balancing.
//
// An AVL tree keeps, at every node, the invariant
//
//	|height(left) − height(right)| ≤ 1,
//
// restoring it after each insert or remove with at most O(log n)
// single/double rotations. All queries and mutations therefore run in
// O(log n) worst case, unlike a plain BST which can degrade to O(n).
//
// Complexity:
//
//	– Insert / Remove / Contains / Find: O(log n) time, O(log n) stack.
//	– Min / Max / Depth / LCA:           O(log n).
//	– InOrder / PreOrder / PostOrder / LevelOrder: O(n) time, O(n) space.
//	– IsBalanced: O(n) independent re-verification (test aid).
//
// Ordering:
//
//	New[K] uses the natural order of any cmp.Ordered key type.
//	NewWith accepts a custom three-way comparator for arbitrary key types.
//
// Duplicate keys are never stored. The policy for an insert of an already
// present key is configurable:
//
//	– DuplicateIgnore (default): the call is a silent no-op.
//	– DuplicateError:            the call returns ErrDuplicateKey.
//
// Errors (sentinel):
//
//	– ErrEmptyTree      if Min or Max is called on an empty tree.
//	– ErrDuplicateKey   if a duplicate insert occurs under DuplicateError.
//	– ErrNilComparator  if NewWith receives a nil comparator.
//
// Example usage:
//
//	t := avl.New[int]()
//	for _, k := range []int{10, 20, 30} {
//	    _ = t.Insert(k) // Right-Right case fires once; root becomes 20
//	}
//	fmt.Println(t.InOrder()) // [10 20 30]
package avl
