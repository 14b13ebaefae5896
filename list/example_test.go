package list_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/list"
)

// ExampleList_Reverse reverses a singly linked list in place.
func ExampleList_Reverse() {
	l := list.New[int]()
	for _, v := range []int{1, 2, 3, 4} {
		l.PushBack(v)
	}

	l.Reverse()
	fmt.Println(l.Values())
	// Output:
	// [4 3 2 1]
}

// ExampleDoublyList_ValuesReverse walks a doubly linked list from both
// ends without mutating it.
func ExampleDoublyList_ValuesReverse() {
	l := list.NewDoubly[string]()
	l.PushBack("a")
	l.PushBack("b")
	l.PushFront("z")

	fmt.Println(l.Values())
	fmt.Println(l.ValuesReverse())
	// Output:
	// [z a b]
	// [b a z]
}

// ExampleCircularList_Rotate advances the head around the ring one step
// at a time; after Len rotations the list is back where it started.
func ExampleCircularList_Rotate() {
	l := list.NewCircular[int]()
	for _, v := range []int{1, 2, 3} {
		l.PushBack(v)
	}

	l.Rotate()
	fmt.Println(l.Values())

	l.Rotate()
	l.Rotate()
	fmt.Println(l.Values())
	// Output:
	// [2 3 1]
	// [1 2 3]
}
