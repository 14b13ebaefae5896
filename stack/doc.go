// Package stack provides a generic slice-backed LIFO stack.
//
// Push appends, Pop removes from the same end; both are amortized O(1).
// Top and Pop on an empty stack fail with ErrEmptyStack — never by
// returning a sentinel element.
//
// A Stack is not safe for concurrent use.
package stack
