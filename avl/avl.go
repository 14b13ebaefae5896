// Mutation and query surface of the AVL tree: rotations, height
// maintenance, recursive insert/remove with rebalancing, and the
// O(log n) lookups.
//
// Notes on implementation choices:
//
//   - Insert and Remove are recursive and return the (possibly new) subtree
//     root upward, so every ancestor on the path re-links its child, updates
//     its cached height, and rebalances on the unwind.
//   - Insert disambiguates single vs. double rotation by comparing the
//     inserted key against the heavy child's key (at most one rotation pair
//     fires per insertion).
//   - Remove disambiguates by the heavy child's own balance factor, since a
//     deletion may require rotations at several ancestors.
//   - A two-child removal copies the in-order successor (minimum of the
//     right subtree) into the node, then removes the successor key from the
//     right subtree.

package avl

// Insert adds key to the tree, keeping it height-balanced.
//
// If key is already present the behavior follows the duplicate policy:
// DuplicateIgnore returns nil without change, DuplicateError returns
// ErrDuplicateKey.
// Complexity: O(log n)
func (t *Tree[K]) Insert(key K) error {
	root, inserted := t.insert(t.root, key)
	t.root = root
	if !inserted {
		if t.opts.Duplicates == DuplicateError {
			return ErrDuplicateKey
		}

		return nil
	}
	t.size++

	return nil
}

// Remove deletes key from the tree, keeping it height-balanced.
// Reports whether the key was present; removing an absent key is a no-op.
// Complexity: O(log n)
func (t *Tree[K]) Remove(key K) bool {
	root, removed := t.remove(t.root, key)
	t.root = root
	if removed {
		t.size--
	}

	return removed
}

// Contains reports whether key is stored in the tree.
// Complexity: O(log n)
func (t *Tree[K]) Contains(key K) bool {
	_, ok := t.Find(key)

	return ok
}

// Find returns the stored key equal (under the tree's comparator) to key.
// The second result reports whether such a key exists.
// Complexity: O(log n)
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
// Complexity: O(log n)
func (t *Tree[K]) Min() (K, error) {
	if t.root == nil {
		var zero K

		return zero, ErrEmptyTree
	}

	return minNode(t.root).key, nil
}

// Max returns the largest key, or ErrEmptyTree when the tree is empty.
// Complexity: O(log n)
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

// Depth returns the number of edges from the root to key
// (0 for the root itself). The second result reports presence.
// Complexity: O(log n)
func (t *Tree[K]) Depth(key K) (int, bool) {
	depth := 0
	n := t.root
	for n != nil {
		switch c := t.compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return depth, true
		}
		depth++
	}

	return 0, false
}

// LCA returns the lowest common ancestor of keys a and b: the deepest
// stored key whose subtree contains both. A key is an ancestor of
// itself, so LCA(x, x) is x. The second result is false when either
// key is absent.
// Complexity: O(log n)
func (t *Tree[K]) LCA(a, b K) (K, bool) {
	var zero K
	if !t.Contains(a) || !t.Contains(b) {
		return zero, false
	}

	// Both keys exist, so descending while they sit strictly on the same
	// side must terminate at the split node (or at one of the keys).
	n := t.root
	for {
		ca, cb := t.compare(a, n.key), t.compare(b, n.key)
		switch {
		case ca < 0 && cb < 0:
			n = n.left
		case ca > 0 && cb > 0:
			n = n.right
		default:
			return n.key, true
		}
	}
}

// Height returns the cached height of the tree: 0 when empty,
// 1 for a single node.
// Complexity: O(1)
func (t *Tree[K]) Height() int { return height(t.root) }

// Size returns the number of stored keys.
// Complexity: O(1)
func (t *Tree[K]) Size() int { return t.size }

// Empty reports whether the tree holds no keys.
// Complexity: O(1)
func (t *Tree[K]) Empty() bool { return t.size == 0 }

// Clear removes all keys. The freed nodes are reclaimed by the GC.
// Complexity: O(1)
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// IsBalanced independently re-verifies, via post-order height
// recomputation, that every node's balance factor is within ±1.
// The mutation algorithms maintain this invariant incrementally;
// IsBalanced exists as a consistency check for tests.
// Complexity: O(n)
func (t *Tree[K]) IsBalanced() bool { return checkBalanced(t.root) != -1 }

// Rebalance rebuilds the tree by reinserting its keys in ascending order.
// An AVL tree is already balanced, so this is mainly useful after bulk
// comparator-sensitive key surgery in debugging sessions.
// Complexity: O(n log n)
func (t *Tree[K]) Rebalance() {
	keys := t.InOrder()
	t.Clear()
	for _, k := range keys {
		// Keys coming from InOrder are distinct; insert cannot fail.
		t.root, _ = t.insert(t.root, k)
		t.size++
	}
}

// ---------------------------------------------------------------------
// Internal machinery: heights, balance factors, rotations, insert/remove.
// ---------------------------------------------------------------------

// height returns the cached height of n, 0 for an absent child.
func height[K any](n *node[K]) int {
	if n == nil {
		return 0
	}

	return n.height
}

// update recomputes n's cached height from its children.
// Invariant restored: height = 1 + max(height(left), height(right)).
func update[K any](n *node[K]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

// balance returns height(left) − height(right) for n (0 for nil).
func balance[K any](n *node[K]) int {
	if n == nil {
		return 0
	}

	return height(n.left) - height(n.right)
}

// rotateRight pivots around y's left child x:
//
//	      y              x
//	     / \            / \
//	    x   C   →      A   y
//	   / \                / \
//	  A   B              B   C
//
// Precondition: y.left != nil. Heights are refreshed child-first (y, then x).
func rotateRight[K any](y *node[K]) *node[K] {
	x := y.left
	y.left = x.right
	x.right = y

	update(y)
	update(x)

	return x
}

// rotateLeft pivots around x's right child y (mirror of rotateRight).
// Precondition: x.right != nil.
func rotateLeft[K any](x *node[K]) *node[K] {
	y := x.right
	x.right = y.left
	y.left = x

	update(x)
	update(y)

	return y
}

// insert descends to the insertion slot, creates the leaf, then rebalances
// on the unwind. The second result reports whether a new node was created
// (false exactly when key was already present).
func (t *Tree[K]) insert(n *node[K], key K) (*node[K], bool) {
	// 1) Empty slot found: attach the new leaf here.
	if n == nil {
		return &node[K]{key: key, height: 1}, true
	}

	// 2) Standard BST descent; an equal key stops the recursion unchanged.
	var inserted bool
	switch c := t.compare(key, n.key); {
	case c < 0:
		n.left, inserted = t.insert(n.left, key)
	case c > 0:
		n.right, inserted = t.insert(n.right, key)
	default:
		return n, false
	}

	// 3) Nothing changed below: heights and balance are still valid.
	if !inserted {
		return n, false
	}

	// 4) Unwind: refresh the cached height, then rebalance if needed.
	update(n)

	return t.rebalanceAfterInsert(n, key), true
}

// rebalanceAfterInsert applies the four classical insertion cases,
// discriminating single vs. double rotation by where the inserted key
// landed relative to the heavy child.
func (t *Tree[K]) rebalanceAfterInsert(n *node[K], key K) *node[K] {
	bf := balance(n)

	// Left-Left: the new key went into the left child's left subtree.
	if bf > 1 && t.compare(key, n.left.key) < 0 {
		return rotateRight(n)
	}

	// Right-Right: the new key went into the right child's right subtree.
	if bf < -1 && t.compare(key, n.right.key) > 0 {
		return rotateLeft(n)
	}

	// Left-Right: rotate the left child left, then this node right.
	if bf > 1 && t.compare(key, n.left.key) > 0 {
		n.left = rotateLeft(n.left)

		return rotateRight(n)
	}

	// Right-Left: rotate the right child right, then this node left.
	if bf < -1 && t.compare(key, n.right.key) < 0 {
		n.right = rotateRight(n.right)

		return rotateLeft(n)
	}

	return n
}

// remove descends to key, performs the structural removal, then rebalances
// on the unwind. The second result reports whether key was present.
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
			// Zero or one child: splice the (possibly nil) child upward.
			n = n.right
		case n.right == nil:
			n = n.left
		default:
			// Two children: copy the in-order successor's key here,
			// then remove that key from the right subtree.
			succ := minNode(n.right)
			n.key = succ.key
			n.right, _ = t.remove(n.right, succ.key)
		}
	}

	// The subtree may have vanished entirely (leaf removal).
	if n == nil || !removed {
		return n, removed
	}

	update(n)

	return rebalanceAfterRemove(n), true
}

// rebalanceAfterRemove applies the four deletion cases. Unlike insertion,
// the single/double discrimination uses the heavy child's own balance
// factor: a removal can demand rotations at several ancestors.
func rebalanceAfterRemove[K any](n *node[K]) *node[K] {
	bf := balance(n)

	// Left side heavy.
	if bf > 1 {
		if balance(n.left) < 0 {
			n.left = rotateLeft(n.left) // Left-Right
		}

		return rotateRight(n) // Left-Left (or after the double's first half)
	}

	// Right side heavy.
	if bf < -1 {
		if balance(n.right) > 0 {
			n.right = rotateRight(n.right) // Right-Left
		}

		return rotateLeft(n) // Right-Right
	}

	return n
}

// minNode returns the leftmost node of a non-nil subtree.
func minNode[K any](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}

	return n
}

// checkBalanced returns the recomputed height of n, or -1 as soon as any
// descendant violates the AVL balance invariant.
func checkBalanced[K any](n *node[K]) int {
	if n == nil {
		return 0
	}

	lh := checkBalanced(n.left)
	if lh == -1 {
		return -1
	}

	rh := checkBalanced(n.right)
	if rh == -1 {
		return -1
	}

	if lh-rh > 1 || rh-lh > 1 {
		return -1
	}

	return 1 + max(lh, rh)
}
