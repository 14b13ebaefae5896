// Package avl_test contains unit tests for the AVL tree. They validate
// the rotation cases, the balance/order/size invariants under random
// workloads, duplicate-insert policies, and empty-tree error behavior.
package avl_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/avl"
)

// buildTree inserts keys in order into a fresh tree and fails the test on
// any unexpected insert error.
func buildTree(t *testing.T, keys ...int) *avl.Tree[int] {
	t.Helper()
	tr := avl.New[int]()
	for _, k := range keys {
		require.NoError(t, tr.Insert(k))
	}

	return tr
}

// ------------------------------------------------------------------------
// 1. Rotation cases: each of the four insertion cases produces the
//    expected shape (checked through PreOrder, which pins the root).
// ------------------------------------------------------------------------

func TestInsert_RightRightCase(t *testing.T) {
	// Inserting 10, 20, 30 in order leans right twice; a single left
	// rotation must make 20 the root with 10 and 30 as children.
	tr := buildTree(t, 10, 20, 30)

	assert.Equal(t, []int{20, 10, 30}, tr.PreOrder())
	assert.Equal(t, 2, tr.Height())
	assert.True(t, tr.IsBalanced())
}

func TestInsert_LeftLeftCase(t *testing.T) {
	tr := buildTree(t, 30, 20, 10)

	assert.Equal(t, []int{20, 10, 30}, tr.PreOrder())
	assert.Equal(t, 2, tr.Height())
}

func TestInsert_LeftRightCase(t *testing.T) {
	// 30, 10, 20: the new key lands in the left child's right subtree,
	// demanding the double rotation.
	tr := buildTree(t, 30, 10, 20)

	assert.Equal(t, []int{20, 10, 30}, tr.PreOrder())
}

func TestInsert_RightLeftCase(t *testing.T) {
	tr := buildTree(t, 10, 30, 20)

	assert.Equal(t, []int{20, 10, 30}, tr.PreOrder())
}

func TestInsert_AscendingSeven_PerfectlyBalanced(t *testing.T) {
	// Inserting 1..7 ascending must yield the complete tree of height 3
	// rooted at 4.
	tr := buildTree(t, 1, 2, 3, 4, 5, 6, 7)

	assert.Equal(t, 3, tr.Height())
	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, tr.PreOrder())
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, tr.LevelOrder())
	assert.True(t, tr.IsBalanced())
}

// ------------------------------------------------------------------------
// 2. Removal: structural cases and rebalancing on the unwind.
// ------------------------------------------------------------------------

func TestRemove_RootOfBalancedSeven(t *testing.T) {
	tr := buildTree(t, 1, 2, 3, 4, 5, 6, 7)

	// Removing the root (4) copies its in-order successor (5) up.
	assert.True(t, tr.Remove(4))
	assert.True(t, tr.IsBalanced())
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, tr.InOrder())
	assert.Equal(t, 6, tr.Size())
}

func TestRemove_Leaf_OneChild_TwoChildren(t *testing.T) {
	tr := buildTree(t, 4, 2, 6, 1, 3, 5, 7)

	// Leaf.
	assert.True(t, tr.Remove(1))
	// One child now: 2 keeps only 3.
	assert.True(t, tr.Remove(2))
	// Two children: 6 holds 5 and 7.
	assert.True(t, tr.Remove(6))

	assert.Equal(t, []int{3, 4, 5, 7}, tr.InOrder())
	assert.True(t, tr.IsBalanced())
}

func TestRemove_AbsentKeyIsNoOp(t *testing.T) {
	tr := buildTree(t, 1, 2, 3)

	assert.False(t, tr.Remove(42))
	assert.Equal(t, 3, tr.Size())
	assert.Equal(t, []int{1, 2, 3}, tr.InOrder())
}

func TestRemove_DeletionCanCascadeRotations(t *testing.T) {
	// A Fibonacci-ish shape: removing from the shallow side forces
	// rebalancing at more than one ancestor.
	tr := buildTree(t, 8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 9, 13, 15, 7)

	require.True(t, tr.Remove(15))
	require.True(t, tr.Remove(14))
	require.True(t, tr.Remove(13))
	require.True(t, tr.Remove(12))

	assert.True(t, tr.IsBalanced())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, tr.InOrder())
}

func TestRoundTrip_InsertAllRemoveAll(t *testing.T) {
	keys := []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0}
	tr := buildTree(t, keys...)

	// Remove in a different order than insertion.
	for _, k := range []int{0, 9, 5, 2, 7, 1, 8, 4, 6, 3} {
		assert.True(t, tr.Remove(k), "key %d", k)
		assert.True(t, tr.IsBalanced(), "unbalanced after removing %d", k)
	}

	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.Height())
	assert.Empty(t, tr.InOrder())
}

// ------------------------------------------------------------------------
// 3. Duplicate policy.
// ------------------------------------------------------------------------

func TestInsert_DuplicateIgnoredByDefault(t *testing.T) {
	tr := buildTree(t, 10, 20, 30)
	before := tr.InOrder()

	// Default policy: a duplicate insert is a silent no-op.
	require.NoError(t, tr.Insert(20))

	assert.Equal(t, before, tr.InOrder())
	assert.Equal(t, 3, tr.Size())
}

func TestInsert_DuplicateErrorPolicy(t *testing.T) {
	tr := avl.New[int](avl.WithDuplicatePolicy(avl.DuplicateError))
	require.NoError(t, tr.Insert(7))

	err := tr.Insert(7)
	assert.ErrorIs(t, err, avl.ErrDuplicateKey)
	assert.Equal(t, 1, tr.Size())
}

// ------------------------------------------------------------------------
// 4. Queries and error behavior.
// ------------------------------------------------------------------------

func TestMinMax_EmptyTree(t *testing.T) {
	tr := avl.New[int]()

	_, err := tr.Min()
	assert.ErrorIs(t, err, avl.ErrEmptyTree)

	_, err = tr.Max()
	assert.ErrorIs(t, err, avl.ErrEmptyTree)
}

func TestMinMax_Populated(t *testing.T) {
	tr := buildTree(t, 42, 17, 99, 3, 64)

	minKey, err := tr.Min()
	require.NoError(t, err)
	assert.Equal(t, 3, minKey)

	maxKey, err := tr.Max()
	require.NoError(t, err)
	assert.Equal(t, 99, maxKey)
}

func TestContainsFindDepth(t *testing.T) {
	tr := buildTree(t, 4, 2, 6, 1, 3)

	assert.True(t, tr.Contains(3))
	assert.False(t, tr.Contains(5))

	got, ok := tr.Find(6)
	assert.True(t, ok)
	assert.Equal(t, 6, got)

	_, ok = tr.Find(99)
	assert.False(t, ok)

	d, ok := tr.Depth(4)
	assert.True(t, ok)
	assert.Equal(t, 0, d)

	d, ok = tr.Depth(1)
	assert.True(t, ok)
	assert.Equal(t, 2, d)

	_, ok = tr.Depth(99)
	assert.False(t, ok)
}

func TestLCA(t *testing.T) {
	// Ascending 1..7 builds the perfectly balanced tree rooted at 4.
	tr := buildTree(t, 1, 2, 3, 4, 5, 6, 7)

	lca, ok := tr.LCA(1, 3)
	assert.True(t, ok)
	assert.Equal(t, 2, lca)

	lca, ok = tr.LCA(3, 5)
	assert.True(t, ok)
	assert.Equal(t, 4, lca)

	// A key is its own ancestor.
	lca, ok = tr.LCA(6, 7)
	assert.True(t, ok)
	assert.Equal(t, 6, lca)

	lca, ok = tr.LCA(5, 5)
	assert.True(t, ok)
	assert.Equal(t, 5, lca)

	// Either key absent: no ancestor to report.
	_, ok = tr.LCA(1, 99)
	assert.False(t, ok)
	_, ok = tr.LCA(99, 1)
	assert.False(t, ok)
}

func TestTraversals_AllOrders(t *testing.T) {
	tr := buildTree(t, 2, 1, 3)

	assert.Equal(t, []int{1, 2, 3}, tr.InOrder())
	assert.Equal(t, []int{2, 1, 3}, tr.PreOrder())
	assert.Equal(t, []int{1, 3, 2}, tr.PostOrder())
	assert.Equal(t, []int{2, 1, 3}, tr.LevelOrder())
}

func TestClearAndString(t *testing.T) {
	tr := buildTree(t, 10, 20, 30)
	assert.Equal(t, "AVLTree[size=3, height=2, balanced=true]", tr.String())

	tr.Clear()
	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.Size())
	assert.Equal(t, 0, tr.Height())
}

func TestDump_RendersShape(t *testing.T) {
	tr := buildTree(t, 20, 10, 30)

	var sb strings.Builder
	tr.Dump(&sb)
	out := sb.String()

	assert.Contains(t, out, "└── 20 (h:2)")
	assert.Contains(t, out, "├── 10 (h:1)")
	assert.Contains(t, out, "└── 30 (h:1)")
}

func TestNewWith_CustomComparator(t *testing.T) {
	// Descending order: the comparator is inverted.
	tr, err := avl.NewWith[int](func(a, b int) int { return b - a })
	require.NoError(t, err)

	for _, k := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, tr.Insert(k))
	}

	assert.Equal(t, []int{5, 4, 3, 2, 1}, tr.InOrder())

	minKey, err := tr.Min()
	require.NoError(t, err)
	assert.Equal(t, 5, minKey) // "smallest" under the inverted order
}

func TestNewWith_NilComparator(t *testing.T) {
	_, err := avl.NewWith[int](nil)
	assert.ErrorIs(t, err, avl.ErrNilComparator)
}

func TestStringKeys(t *testing.T) {
	tr := avl.New[string]()
	for _, w := range []string{"pear", "apple", "quince", "banana"} {
		require.NoError(t, tr.Insert(w))
	}

	assert.Equal(t, []string{"apple", "banana", "pear", "quince"}, tr.InOrder())
	assert.True(t, tr.IsBalanced())
}

// ------------------------------------------------------------------------
// 5. Invariants under random workloads.
// ------------------------------------------------------------------------

func TestInvariants_RandomWorkload(t *testing.T) {
	const n = 2000
	r := rand.New(rand.NewSource(42))
	tr := avl.New[int]()
	reference := make(map[int]struct{})

	// Mixed inserts and removes over a bounded key space.
	for i := 0; i < n; i++ {
		k := r.Intn(500)
		if r.Intn(3) == 0 {
			removed := tr.Remove(k)
			_, present := reference[k]
			assert.Equal(t, present, removed)
			delete(reference, k)
		} else {
			require.NoError(t, tr.Insert(k))
			reference[k] = struct{}{}
		}
	}

	// Size matches the set of distinct surviving keys.
	assert.Equal(t, len(reference), tr.Size())

	// In-order yields exactly the surviving keys, strictly ascending.
	got := tr.InOrder()
	want := make([]int, 0, len(reference))
	for k := range reference {
		want = append(want, k)
	}
	sort.Ints(want)
	assert.Equal(t, want, got)

	// Balance invariant holds tree-wide.
	assert.True(t, tr.IsBalanced())

	// Height stays logarithmic: strictly below 1.44·log2(n+2) for AVL.
	if tr.Size() > 2 {
		limit := 2 // generous floor for tiny trees
		for s := tr.Size() + 2; s > 1; s /= 2 {
			limit++
		}
		assert.LessOrEqual(t, tr.Height(), limit*3/2)
	}
}

func TestRebalance_PreservesContent(t *testing.T) {
	tr := buildTree(t, 9, 1, 8, 2, 7, 3, 6, 4, 5)
	before := tr.InOrder()

	tr.Rebalance()

	assert.Equal(t, before, tr.InOrder())
	assert.Equal(t, len(before), tr.Size())
	assert.True(t, tr.IsBalanced())
}
