// Tree type, configuration options, and sentinel errors:
// the node layout, DuplicatePolicy, Option, and the New / NewWith
// constructors.

package avl

import (
	"cmp"
	"errors"
)

// Sentinel errors for AVL tree operations.
var (
	// ErrEmptyTree indicates Min or Max was called on a tree with no nodes.
	ErrEmptyTree = errors.New("avl: tree is empty")

	// ErrDuplicateKey indicates an insert of an already present key
	// while the tree runs under DuplicateError policy.
	ErrDuplicateKey = errors.New("avl: duplicate key")

	// ErrNilComparator indicates NewWith was given a nil compare function.
	ErrNilComparator = errors.New("avl: comparator is nil")
)

// DuplicatePolicy selects what Insert does when the key is already stored.
type DuplicatePolicy int

const (
	// DuplicateIgnore makes a duplicate insert a silent no-op (default).
	DuplicateIgnore DuplicatePolicy = iota

	// DuplicateError makes a duplicate insert return ErrDuplicateKey.
	DuplicateError
)

// Options configures the behavior of a Tree before creation.
//
// Duplicates: policy applied when Insert meets an existing key.
type Options struct {
	Duplicates DuplicatePolicy
}

// Option represents a functional option for configuring a Tree.
type Option func(*Options)

// WithDuplicatePolicy sets the duplicate-insert policy.
// Default (if not set) is DuplicateIgnore.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *Options) { o.Duplicates = p }
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Duplicates: DuplicateIgnore (duplicate insert is a silent no-op).
func DefaultOptions() Options {
	return Options{Duplicates: DuplicateIgnore}
}

// node is one key and its subtree.
//
// height caches the subtree height (1 for a leaf; an absent child
// contributes 0), giving O(1) balance-factor computation.
type node[K any] struct {
	key    K
	left   *node[K]
	right  *node[K]
	height int
}

// Tree is a generic AVL tree: an ordered set of distinct keys.
//
// The zero value is not usable; construct with New or NewWith.
// A Tree is not safe for concurrent use.
type Tree[K any] struct {
	root    *node[K]
	size    int
	compare func(a, b K) int
	opts    Options
}

// New creates an empty Tree ordered by the natural order of K.
// Complexity: O(1)
func New[K cmp.Ordered](opts ...Option) *Tree[K] {
	t, _ := NewWith[K](cmp.Compare[K], opts...)

	return t
}

// NewWith creates an empty Tree ordered by compare, which must return
// a negative value when a < b, zero when a == b, positive when a > b.
// Returns ErrNilComparator when compare is nil.
// Complexity: O(1)
func NewWith[K any](compare func(a, b K) int, opts ...Option) (*Tree[K], error) {
	if compare == nil {
		return nil, ErrNilComparator
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Tree[K]{compare: compare, opts: cfg}, nil
}
