// Package queue provides two FIFO containers:
//
//   - Queue[T] — an unbounded linked queue; Enqueue and Dequeue are O(1)
//     with no reallocation or element shifting.
//   - Ring[T]  — a bounded circular buffer of fixed capacity; enqueueing
//     into a full ring fails with ErrFullQueue rather than growing.
//
// Both fail with ErrEmptyQueue on Dequeue/Front/Back of an empty queue —
// never by returning a sentinel element.
//
// Complexity:
//
//	– Enqueue / Dequeue / Front / Back: O(1)
//	– Values: O(n)
//
// Neither type is safe for concurrent use.
package queue
