// This file implements Dijkstra's single-source shortest paths with a
// lazy-decrease-key priority queue: improved distances push duplicate
// heap entries, and stale entries are skipped when popped.

package graph

import (
	"fmt"

	"github.com/katalvlaran/lvlds/heap"
)

// Dijkstra computes the minimum-cost distance from source to every
// reachable vertex of the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex to its shortest distance; unreachable
//     vertices are absent from the map.
//   - prev: predecessor on a shortest path, for path reconstruction;
//     the source and unreachable vertices are absent.
//   - err:  validation or negative-weight error.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be weighted (ErrUnweightedGraph).
//  3. g must contain source (ErrVertexNotFound).
//  4. No edge may have negative weight (ErrNegativeWeight, detected
//     during relaxation and wrapped with the offending edge).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra[K comparable](g *Graph[K], source K) (map[K]int64, map[K]K, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}

	dist := make(map[K]int64, g.VertexCount())
	prev := make(map[K]K, g.VertexCount())
	visited := make(map[K]bool, g.VertexCount())

	// The priority is the tentative distance; ties resolve FIFO, which
	// keeps equal-distance exploration deterministic.
	pq := heap.NewPriorityQueue[K]()
	dist[source] = 0
	pq.Push(source, 0)

	for !pq.Empty() {
		u, _ := pq.Pop()

		// Skip stale entries left behind by the lazy decrease-key.
		if visited[u] {
			continue
		}
		visited[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, fmt.Errorf("graph: failed to get neighbors of %v: %w", u, err)
		}

		for _, v := range neighbors {
			w, _ := g.Weight(u, v)
			if w < 0 {
				return nil, nil, fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, u, v, w)
			}

			newDist := dist[u] + w
			if cur, ok := dist[v]; ok && newDist >= cur {
				continue
			}

			dist[v] = newDist
			prev[v] = u
			pq.Push(v, newDist)
		}
	}

	return dist, prev, nil
}

// ShortestPath reconstructs the vertex sequence source→…→target from the
// predecessor map returned by Dijkstra. Returns ErrVertexNotFound when
// target was never reached (and is not the source itself).
// Complexity: O(path length)
func ShortestPath[K comparable](source, target K, prev map[K]K) ([]K, error) {
	if target == source {
		return []K{source}, nil
	}
	if _, ok := prev[target]; !ok {
		return nil, ErrVertexNotFound
	}

	// Walk backwards, then reverse in place.
	path := []K{target}
	for at := target; at != source; {
		at = prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
