// Package bst_test validates BST order maintenance, removal cases, and
// the degenerate-shape behavior that distinguishes bst from avl.
package bst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/bst"
)

func build(keys ...int) *bst.Tree[int] {
	t := bst.New[int]()
	for _, k := range keys {
		t.Insert(k)
	}

	return t
}

func TestInsert_KeepsOrderAndSkipsDuplicates(t *testing.T) {
	tr := build(5, 3, 8, 3, 5, 1)

	assert.Equal(t, []int{1, 3, 5, 8}, tr.InOrder())
	assert.Equal(t, 4, tr.Size())
	assert.True(t, tr.IsBST())
}

func TestInsert_AscendingDegeneratesToChain(t *testing.T) {
	// No rebalancing: ascending inserts build a right spine of height n.
	tr := build(1, 2, 3, 4, 5)

	assert.Equal(t, 5, tr.Height())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, tr.PreOrder())
}

func TestRemove_AllThreeCases(t *testing.T) {
	tr := build(4, 2, 6, 1, 3, 5, 7)

	assert.True(t, tr.Remove(1)) // leaf
	assert.True(t, tr.Remove(2)) // one child
	assert.True(t, tr.Remove(4)) // two children (root): successor 5 copies up

	assert.False(t, tr.Remove(42)) // absent: no-op
	assert.Equal(t, []int{3, 5, 6, 7}, tr.InOrder())
	assert.True(t, tr.IsBST())
	assert.Equal(t, 4, tr.Size())
}

func TestMinMax(t *testing.T) {
	tr := bst.New[int]()

	_, err := tr.Min()
	assert.ErrorIs(t, err, bst.ErrEmptyTree)
	_, err = tr.Max()
	assert.ErrorIs(t, err, bst.ErrEmptyTree)

	tr.Insert(10)
	tr.Insert(5)
	tr.Insert(20)

	minKey, err := tr.Min()
	require.NoError(t, err)
	assert.Equal(t, 5, minKey)

	maxKey, err := tr.Max()
	require.NoError(t, err)
	assert.Equal(t, 20, maxKey)
}

func TestTraversalsAndClear(t *testing.T) {
	tr := build(2, 1, 3)

	assert.Equal(t, []int{1, 2, 3}, tr.InOrder())
	assert.Equal(t, []int{2, 1, 3}, tr.PreOrder())
	assert.Equal(t, []int{1, 3, 2}, tr.PostOrder())
	assert.Equal(t, []int{2, 1, 3}, tr.LevelOrder())

	tr.Clear()
	assert.True(t, tr.Empty())
	assert.Empty(t, tr.InOrder())
}

func TestNewWith_NilComparator(t *testing.T) {
	_, err := bst.NewWith[int](nil)
	assert.ErrorIs(t, err, bst.ErrNilComparator)
}

func TestFindAndContains(t *testing.T) {
	tr := build(4, 2, 6)

	got, ok := tr.Find(6)
	assert.True(t, ok)
	assert.Equal(t, 6, got)

	_, ok = tr.Find(7)
	assert.False(t, ok)
	assert.True(t, tr.Contains(2))
	assert.False(t, tr.Contains(99))
}
