// Package bst implements a plain (unbalanced) generic binary search tree.
//
// The tree keeps strict BST order — every key in a left subtree compares
// less than its node's key, every key in a right subtree greater — but
// performs no rebalancing, so operations cost O(h) where h can reach n
// for adversarial insertion orders. For guaranteed O(log n) see the avl
// package, which shares this API.
//
// Duplicate keys are never stored; inserting an existing key is a silent
// no-op, mirroring the avl package's DuplicateIgnore behavior.
//
// Errors (sentinel):
//
//	– ErrEmptyTree      if Min or Max is called on an empty tree.
//	– ErrNilComparator  if NewWith receives a nil comparator.
package bst
