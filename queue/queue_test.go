package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/queue"
)

func TestQueue_FIFOOrder(t *testing.T) {
	q := queue.New[int]()
	for i := 1; i <= 5; i++ {
		q.Enqueue(i)
	}

	assert.Equal(t, 5, q.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, q.Values())

	front, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, 1, front)

	back, err := q.Back()
	require.NoError(t, err)
	assert.Equal(t, 5, back)

	for want := 1; want <= 5; want++ {
		got, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.Empty())
}

func TestQueue_EmptyErrors(t *testing.T) {
	q := queue.New[string]()

	_, err := q.Dequeue()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)

	_, err = q.Front()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)

	_, err = q.Back()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
}

func TestQueue_ReuseAfterDrainAndClear(t *testing.T) {
	q := queue.New[int]()
	q.Enqueue(1)
	q.Enqueue(2)

	_, err := q.Dequeue()
	require.NoError(t, err)
	_, err = q.Dequeue()
	require.NoError(t, err)

	// Draining must reset the back pointer too.
	q.Enqueue(7)
	assert.Equal(t, []int{7}, q.Values())

	q.Clear()
	assert.True(t, q.Empty())
	assert.Empty(t, q.Values())

	q.Enqueue(9)
	front, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, 9, front)
}

func TestNewRing_RejectsBadCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := queue.NewRing[int](capacity)
		assert.ErrorIs(t, err, queue.ErrBadCapacity, "capacity %d", capacity)
	}
}

func TestRing_FullAndEmptyBounds(t *testing.T) {
	r, err := queue.NewRing[int](3)
	require.NoError(t, err)

	require.NoError(t, r.Enqueue(1))
	require.NoError(t, r.Enqueue(2))
	require.NoError(t, r.Enqueue(3))
	assert.True(t, r.Full())

	assert.ErrorIs(t, r.Enqueue(4), queue.ErrFullQueue)
	assert.Equal(t, []int{1, 2, 3}, r.Values())

	for want := 1; want <= 3; want++ {
		got, err := r.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = r.Dequeue()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
	_, err = r.Front()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
}

func TestRing_WrapAround(t *testing.T) {
	r, err := queue.NewRing[int](3)
	require.NoError(t, err)

	// Cycle enough elements that head laps the buffer several times.
	next := 0
	for i := 0; i < 10; i++ {
		require.NoError(t, r.Enqueue(i))
		got, err := r.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, next, got)
		next++
	}

	require.NoError(t, r.Enqueue(100))
	require.NoError(t, r.Enqueue(101))
	assert.Equal(t, []int{100, 101}, r.Values())
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 3, r.Cap())
}

func TestRing_Clear(t *testing.T) {
	r, err := queue.NewRing[int](2)
	require.NoError(t, err)

	require.NoError(t, r.Enqueue(1))
	require.NoError(t, r.Enqueue(2))

	r.Clear()
	assert.True(t, r.Empty())
	assert.Equal(t, 2, r.Cap())

	require.NoError(t, r.Enqueue(5))
	front, err := r.Front()
	require.NoError(t, err)
	assert.Equal(t, 5, front)
}
