// Package list provides the linked-list family, one canonical design per
// container name:
//
//   - List[T]         — singly linked, head+tail pointers.
//   - DoublyList[T]   — doubly linked; PopBack and backward walks are O(1).
//   - CircularList[T] — singly linked ring closed through a tail pointer.
//
// All three share the same positional API: PushFront/PushBack,
// PopFront/PopBack, At/InsertAt/RemoveAt, Values. Positions are
// zero-based; InsertAt(Len(), v) is the only position allowed to equal
// the length (append). List and DoublyList add Reverse; CircularList
// adds Rotate/RotateN instead.
//
// Errors (sentinel):
//
//	– ErrEmptyList       if a pop is called on an empty list.
//	– ErrIndexOutOfRange if a position is outside the valid range.
//
// None of the types is safe for concurrent use.
package list
