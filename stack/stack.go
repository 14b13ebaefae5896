package stack

import "errors"

// ErrEmptyStack indicates Pop or Top on an empty stack.
var ErrEmptyStack = errors.New("stack: stack is empty")

// Stack is a generic LIFO stack backed by a slice.
// The zero value is NOT ready to use; construct with New.
type Stack[T any] struct {
	data []T
}

// New creates an empty Stack.
// Complexity: O(1)
func New[T any]() *Stack[T] { return &Stack[T]{} }

// Push places v on top of the stack.
// Complexity: amortized O(1)
func (s *Stack[T]) Push(v T) {
	s.data = append(s.data, v)
}

// Pop removes and returns the top element,
// or ErrEmptyStack when the stack is empty.
// Complexity: O(1)
func (s *Stack[T]) Pop() (T, error) {
	if len(s.data) == 0 {
		var zero T

		return zero, ErrEmptyStack
	}

	last := len(s.data) - 1
	v := s.data[last]
	var zero T
	s.data[last] = zero // drop the reference for the GC
	s.data = s.data[:last]

	return v, nil
}

// Top returns the top element without removing it,
// or ErrEmptyStack when the stack is empty.
// Complexity: O(1)
func (s *Stack[T]) Top() (T, error) {
	if len(s.data) == 0 {
		var zero T

		return zero, ErrEmptyStack
	}

	return s.data[len(s.data)-1], nil
}

// Len returns the number of stored elements.
func (s *Stack[T]) Len() int { return len(s.data) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return len(s.data) == 0 }

// Clear removes all elements.
// Complexity: O(1)
func (s *Stack[T]) Clear() { s.data = nil }

// Values returns the elements bottom to top.
// Complexity: O(n)
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)

	return out
}
