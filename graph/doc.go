// Package graph provides a generic in-memory adjacency-list graph and the
// classic algorithms over it: breadth-first search, depth-first search,
// and Dijkstra's shortest paths.
//
// Graph[K] stores vertices of any comparable key type. It supports
// directed vs. undirected edges, weighted vs. unweighted graphs, and
// optional self-loops, chosen at construction via functional options.
// Vertices and neighbor lists keep insertion order, so traversals are
// deterministic without requiring the key type to be ordered.
//
// A Graph is not safe for concurrent use: every operation is a plain
// synchronous call with no internal locking.
//
// Complexity:
//
//	– AddVertex / AddEdge / HasEdge / Weight: O(1) expected
//	– BFS / DFS:  O(V + E)
//	– Dijkstra:   O((V + E) log V) with a lazy-decrease-key binary heap
//
// Errors (sentinel):
//
//	– ErrNilGraph         if a nil graph is passed to an algorithm.
//	– ErrVertexNotFound   if an operation references an absent vertex.
//	– ErrBadWeight        if a non-zero weight is given to an unweighted graph.
//	– ErrLoopNotAllowed   if a self-loop is added while loops are disabled.
//	– ErrUnweightedGraph  if Dijkstra runs on an unweighted graph.
//	– ErrNegativeWeight   if Dijkstra meets a negative edge weight.
package graph
