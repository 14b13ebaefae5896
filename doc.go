// Package lvlds is your in-memory playground for the classic data
// structures and algorithms — from linked lists and stacks up to
// self-balancing trees, tries and shortest paths.
//
// 🚀 What is lvlds?
//
//	A didactic, generics-first library that brings together:
//		• Ordered trees: AVL (self-balancing) and plain BST
//		• Linear containers: singly/doubly/circular linked lists, stack, queue, ring buffer
//		• Heaps: generic binary heap + priority queue
//		• Tries: prefix dictionaries over runes
//		• Disjoint sets: union-find with path compression and rank
//		• Fenwick trees: logarithmic prefix and range sums
//		• Graphs: generic adjacency lists with BFS, DFS and Dijkstra
//		• Algorithms: quick/merge/heap/shell/counting/radix sorts, five search strategies
//
// ✨ Why choose lvlds?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - One canonical design per container – no duplicated near-twins
//   - Explicit failures – empty/out-of-range access returns sentinel errors, never magic values
//   - Extensible – functional options and visit hooks for custom logic
//
// Under the hood, everything is organized under flat subpackages:
//
//	avl/     — self-balancing binary search tree (the centerpiece)
//	bst/     — plain binary search tree
//	heap/    — binary heap & priority queue
//	list/    — linked list family
//	stack/   — LIFO stack
//	queue/   — FIFO queue & bounded ring
//	trie/    — prefix tree
//	dsu/     — disjoint-set union
//	fenwick/ — binary indexed tree for prefix sums
//	graph/   — generic graph + traversals + shortest paths
//	sortx/   — sorting algorithms
//	searchx/ — searching algorithms
//
// Quick ASCII example:
//
//	      4
//	    ┌─┴─┐
//	    2   6
//	   ┌┴┐ ┌┴┐
//	   1 3 5 7
//
//	a perfectly balanced AVL tree after inserting 1..7 in ascending order.
//
// Dive into cmd/lvlds for an interactive console demo of every container.
//
//	go get github.com/katalvlaran/lvlds
package lvlds
