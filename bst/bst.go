package bst

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlds/queue"
)

// Sentinel errors for BST operations.
var (
	// ErrEmptyTree indicates Min or Max was called on a tree with no nodes.
	ErrEmptyTree = errors.New("bst: tree is empty")

	// ErrNilComparator indicates NewWith was given a nil compare function.
	ErrNilComparator = errors.New("bst: comparator is nil")
)

// node is one key and its subtree.
type node[K any] struct {
	key   K
	left  *node[K]
	right *node[K]
}

// Tree is a generic unbalanced binary search tree: an ordered set of
// distinct keys. Construct with New or NewWith; not safe for concurrent use.
type Tree[K any] struct {
	root    *node[K]
	size    int
	compare func(a, b K) int
}

// New creates an empty Tree ordered by the natural order of K.
// Complexity: O(1)
func New[K cmp.Ordered]() *Tree[K] {
	t, _ := NewWith[K](cmp.Compare[K])

	return t
}

// NewWith creates an empty Tree ordered by compare.
// Returns ErrNilComparator when compare is nil.
// Complexity: O(1)
func NewWith[K any](compare func(a, b K) int) (*Tree[K], error) {
	if compare == nil {
		return nil, ErrNilComparator
	}

	return &Tree[K]{compare: compare}, nil
}

// Insert adds key to the tree; inserting an existing key is a no-op.
// Complexity: O(h)
func (t *Tree[K]) Insert(key K) {
	var inserted bool
	t.root, inserted = t.insert(t.root, key)
	if inserted {
		t.size++
	}
}

// Remove deletes key from the tree, reporting whether it was present.
// A two-child removal copies the in-order successor up, as in the avl
// package, but no rebalancing follows.
// Complexity: O(h)
func (t *Tree[K]) Remove(key K) bool {
	var removed bool
	t.root, removed = t.remove(t.root, key)
	if removed {
		t.size--
	}

	return removed
}

// Contains reports whether key is stored in the tree.
// Complexity: O(h)
func (t *Tree[K]) Contains(key K) bool {
	_, ok := t.Find(key)

	return ok
}

// Find returns the stored key equal to key and whether it exists.
// Complexity: O(h)
func (t *Tree[K]) Find(key K) (K, bool) {
	n := t.root
	for n != nil {
		switch c := t.compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.key, true
		}
	}

	var zero K

	return zero, false
}

// Min returns the smallest key, or ErrEmptyTree when the tree is empty.
// Complexity: O(h)
func (t *Tree[K]) Min() (K, error) {
	if t.root == nil {
		var zero K

		return zero, ErrEmptyTree
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.key, nil
}

// Max returns the largest key, or ErrEmptyTree when the tree is empty.
// Complexity: O(h)
func (t *Tree[K]) Max() (K, error) {
	if t.root == nil {
		var zero K

		return zero, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, nil
}

// Height returns the height of the tree: 0 when empty, 1 for one node.
// Unlike avl, heights are not cached; this walks the whole tree.
// Complexity: O(n)
func (t *Tree[K]) Height() int { return heightOf(t.root) }

// Size returns the number of stored keys.
func (t *Tree[K]) Size() int { return t.size }

// Empty reports whether the tree holds no keys.
func (t *Tree[K]) Empty() bool { return t.size == 0 }

// Clear removes all keys.
// Complexity: O(1)
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// IsBST re-verifies the binary-search-tree order property by checking
// that the in-order sequence is strictly ascending. Consistency check
// for tests; mutations maintain the property by construction.
// Complexity: O(n)
func (t *Tree[K]) IsBST() bool {
	keys := t.InOrder()
	for i := 1; i < len(keys); i++ {
		if t.compare(keys[i-1], keys[i]) >= 0 {
			return false
		}
	}

	return true
}

// InOrder returns all keys in ascending order.
// Complexity: O(n)
func (t *Tree[K]) InOrder() []K {
	out := make([]K, 0, t.size)
	inorder(t.root, &out)

	return out
}

// PreOrder returns all keys in root-first order.
// Complexity: O(n)
func (t *Tree[K]) PreOrder() []K {
	out := make([]K, 0, t.size)
	preorder(t.root, &out)

	return out
}

// PostOrder returns all keys in children-first order.
// Complexity: O(n)
func (t *Tree[K]) PostOrder() []K {
	out := make([]K, 0, t.size)
	postorder(t.root, &out)

	return out
}

// LevelOrder returns all keys breadth-first.
// Complexity: O(n)
func (t *Tree[K]) LevelOrder() []K {
	out := make([]K, 0, t.size)
	if t.root == nil {
		return out
	}

	q := queue.New[*node[K]]()
	q.Enqueue(t.root)
	for !q.Empty() {
		n, _ := q.Dequeue()
		out = append(out, n.key)
		if n.left != nil {
			q.Enqueue(n.left)
		}
		if n.right != nil {
			q.Enqueue(n.right)
		}
	}

	return out
}

// String returns a one-line summary of the tree.
func (t *Tree[K]) String() string {
	return fmt.Sprintf("BST[size=%d, height=%d]", t.size, t.Height())
}

func (t *Tree[K]) insert(n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return &node[K]{key: key}, true
	}

	var inserted bool
	switch c := t.compare(key, n.key); {
	case c < 0:
		n.left, inserted = t.insert(n.left, key)
	case c > 0:
		n.right, inserted = t.insert(n.right, key)
	default:
		// Duplicate: silent no-op.
		return n, false
	}

	return n, inserted
}

func (t *Tree[K]) remove(n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch c := t.compare(key, n.key); {
	case c < 0:
		n.left, removed = t.remove(n.left, key)
	case c > 0:
		n.right, removed = t.remove(n.right, key)
	default:
		removed = true
		switch {
		case n.left == nil:
			n = n.right
		case n.right == nil:
			n = n.left
		default:
			succ := n.right
			for succ.left != nil {
				succ = succ.left
			}
			n.key = succ.key
			n.right, _ = t.remove(n.right, succ.key)
		}
	}

	return n, removed
}

func heightOf[K any](n *node[K]) int {
	if n == nil {
		return 0
	}

	return 1 + max(heightOf(n.left), heightOf(n.right))
}

func inorder[K any](n *node[K], out *[]K) {
	if n == nil {
		return
	}
	inorder(n.left, out)
	*out = append(*out, n.key)
	inorder(n.right, out)
}

func preorder[K any](n *node[K], out *[]K) {
	if n == nil {
		return
	}
	*out = append(*out, n.key)
	preorder(n.left, out)
	preorder(n.right, out)
}

func postorder[K any](n *node[K], out *[]K) {
	if n == nil {
		return
	}
	postorder(n.left, out)
	postorder(n.right, out)
	*out = append(*out, n.key)
}
