// This file implements breadth-first and depth-first traversal with
// visit hooks, in the usual frontier-queue / explicit-stack formulations.

package graph

import (
	"github.com/katalvlaran/lvlds/queue"
	"github.com/katalvlaran/lvlds/stack"
)

// TraversalResult carries the outcome of a BFS or DFS run.
//
// Order – vertices in visit order, starting with the start vertex.
// Depth – BFS only: hop distance from the start for each visited vertex.
type TraversalResult[K comparable] struct {
	Order []K
	Depth map[K]int
}

// TraversalOptions configures BFS and DFS.
//
// OnVisit  – called for each vertex with its BFS depth (0 for DFS);
//            a non-nil error aborts the traversal and is propagated.
// MaxDepth – BFS only: if > 0, vertices deeper than this are not explored.
type TraversalOptions[K comparable] struct {
	OnVisit  func(v K, depth int) error
	MaxDepth int
}

// TraversalOption represents a functional option for BFS/DFS.
type TraversalOption[K comparable] func(*TraversalOptions[K])

// WithOnVisit installs a per-vertex hook. Returning an error from the
// hook aborts the traversal with that error.
func WithOnVisit[K comparable](fn func(v K, depth int) error) TraversalOption[K] {
	return func(o *TraversalOptions[K]) { o.OnVisit = fn }
}

// WithMaxDepth caps BFS exploration at the given hop distance.
// A value of 0 (default) disables the limit.
func WithMaxDepth[K comparable](depth int) TraversalOption[K] {
	return func(o *TraversalOptions[K]) { o.MaxDepth = depth }
}

// BFS performs a breadth-first traversal of g from start, visiting
// vertices in non-decreasing hop distance and, within a frontier, in
// edge-insertion order.
//
// Returns ErrNilGraph when g is nil and ErrVertexNotFound when start is
// absent.
// Complexity: O(V + E)
func BFS[K comparable](g *Graph[K], start K, opts ...TraversalOption[K]) (*TraversalResult[K], error) {
	var cfg TraversalOptions[K]
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, ErrVertexNotFound
	}

	res := &TraversalResult[K]{Depth: make(map[K]int)}
	visited := map[K]bool{start: true}

	frontier := queue.New[K]()
	frontier.Enqueue(start)
	res.Depth[start] = 0

	for !frontier.Empty() {
		v, _ := frontier.Dequeue()
		depth := res.Depth[v]

		res.Order = append(res.Order, v)
		if cfg.OnVisit != nil {
			if err := cfg.OnVisit(v, depth); err != nil {
				return nil, err
			}
		}

		// Depth cap: do not expand past the limit.
		if cfg.MaxDepth > 0 && depth >= cfg.MaxDepth {
			continue
		}

		neighbors, _ := g.Neighbors(v)
		for _, n := range neighbors {
			if visited[n] {
				continue
			}
			visited[n] = true
			res.Depth[n] = depth + 1
			frontier.Enqueue(n)
		}
	}

	return res, nil
}

// DFS performs a depth-first traversal of g from start using an explicit
// stack, following each vertex's neighbors in edge-insertion order.
//
// Returns ErrNilGraph when g is nil and ErrVertexNotFound when start is
// absent.
// Complexity: O(V + E)
func DFS[K comparable](g *Graph[K], start K, opts ...TraversalOption[K]) (*TraversalResult[K], error) {
	var cfg TraversalOptions[K]
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, ErrVertexNotFound
	}

	res := &TraversalResult[K]{}
	visited := make(map[K]bool)

	st := stack.New[K]()
	st.Push(start)

	for !st.Empty() {
		v, _ := st.Pop()
		if visited[v] {
			continue
		}
		visited[v] = true

		res.Order = append(res.Order, v)
		if cfg.OnVisit != nil {
			if err := cfg.OnVisit(v, 0); err != nil {
				return nil, err
			}
		}

		// Push neighbors in reverse so the first-inserted edge is
		// explored first, matching the recursive formulation.
		neighbors, _ := g.Neighbors(v)
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !visited[neighbors[i]] {
				st.Push(neighbors[i])
			}
		}
	}

	return res, nil
}
