// Traversal and rendering surface: the four standard node orderings
// plus an ASCII dump for interactive inspection.
//
// Every traversal walks the current shape fresh on each call and returns
// a newly allocated slice, so results stay valid across later mutations.

package avl

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvlds/queue"
)

// InOrder returns all keys in ascending order (left, node, right).
// Complexity: O(n)
func (t *Tree[K]) InOrder() []K {
	out := make([]K, 0, t.size)
	inorder(t.root, &out)

	return out
}

// PreOrder returns all keys in root-first order (node, left, right).
// Complexity: O(n)
func (t *Tree[K]) PreOrder() []K {
	out := make([]K, 0, t.size)
	preorder(t.root, &out)

	return out
}

// PostOrder returns all keys in children-first order (left, right, node).
// Complexity: O(n)
func (t *Tree[K]) PostOrder() []K {
	out := make([]K, 0, t.size)
	postorder(t.root, &out)

	return out
}

// LevelOrder returns all keys breadth-first, top level to bottom,
// left to right within a level.
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

// Dump writes an ASCII rendering of the tree shape to w, one node per
// line with its cached height, e.g.:
//
//	└── 20 (h:2)
//	    ├── 10 (h:1)
//	    └── 30 (h:1)
//
// Complexity: O(n)
func (t *Tree[K]) Dump(w io.Writer) {
	dump(w, t.root, "", false)
}

// String returns a one-line summary of the tree.
func (t *Tree[K]) String() string {
	return fmt.Sprintf("AVLTree[size=%d, height=%d, balanced=%t]",
		t.size, t.Height(), t.IsBalanced())
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

func dump[K any](w io.Writer, n *node[K], prefix string, isLeft bool) {
	if n == nil {
		return
	}

	branch, childPrefix := "└── ", prefix+"    "
	if isLeft {
		branch, childPrefix = "├── ", prefix+"│   "
	}
	fmt.Fprintf(w, "%s%s%v (h:%d)\n", prefix, branch, n.key, n.height)

	dump(w, n.left, childPrefix, true)
	dump(w, n.right, childPrefix, false)
}
