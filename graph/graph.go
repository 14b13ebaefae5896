// This file declares Graph, GraphOption, sentinel errors, the New
// constructor, and the mutation/query primitives.

package graph

import "errors"

// Sentinel errors for graph operations and algorithms.
var (
	// ErrNilGraph indicates a nil *Graph was passed to an algorithm.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrVertexNotFound indicates an operation referenced an absent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("graph: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop while loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrUnweightedGraph indicates Dijkstra requires a weighted graph.
	ErrUnweightedGraph = errors.New("graph: graph must be weighted")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	ErrNegativeWeight = errors.New("graph: negative edge weight encountered")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*config)

type config struct {
	directed   bool
	weighted   bool
	allowLoops bool
}

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(c *config) { c.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// Graph is a generic in-memory adjacency-list graph over comparable
// vertex keys. At most one edge exists per ordered vertex pair.
// Construct with New; not safe for concurrent use.
type Graph[K comparable] struct {
	cfg config

	// order keeps vertices in insertion order for deterministic iteration.
	order    []K
	vertices map[K]struct{}

	// adjacency[from][to] = weight; adjOrder mirrors insertion order.
	adjacency map[K]map[K]int64
	adjOrder  map[K][]K

	edgeCount int
}

// New creates an empty Graph with the given options.
// By default the Graph is undirected, unweighted, with no self-loops.
// Complexity: O(1)
func New[K comparable](opts ...GraphOption) *Graph[K] {
	g := &Graph[K]{
		vertices:  make(map[K]struct{}),
		adjacency: make(map[K]map[K]int64),
		adjOrder:  make(map[K][]K),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// Directed reports whether edges are directed.
func (g *Graph[K]) Directed() bool { return g.cfg.directed }

// Weighted reports whether the graph accepts non-zero edge weights.
func (g *Graph[K]) Weighted() bool { return g.cfg.weighted }

// AddVertex inserts v; adding an existing vertex is a no-op.
// Complexity: O(1)
func (g *Graph[K]) AddVertex(v K) {
	if _, ok := g.vertices[v]; ok {
		return
	}
	g.vertices[v] = struct{}{}
	g.order = append(g.order, v)
}

// HasVertex reports whether v is present.
// Complexity: O(1)
func (g *Graph[K]) HasVertex(v K) bool {
	_, ok := g.vertices[v]

	return ok
}

// AddEdge connects from→to with the given weight, creating missing
// endpoints automatically. On an undirected graph the reverse edge is
// stored as well. Re-adding an edge overwrites its weight.
//
// Returns ErrBadWeight for a non-zero weight on an unweighted graph and
// ErrLoopNotAllowed for a self-loop while loops are disabled.
// Complexity: O(1)
func (g *Graph[K]) AddEdge(from, to K, weight int64) error {
	if !g.cfg.weighted && weight != 0 {
		return ErrBadWeight
	}
	if from == to && !g.cfg.allowLoops {
		return ErrLoopNotAllowed
	}

	g.AddVertex(from)
	g.AddVertex(to)

	if g.link(from, to, weight) {
		g.edgeCount++
	}
	if !g.cfg.directed && from != to {
		g.link(to, from, weight)
	}

	return nil
}

// HasEdge reports whether an edge from→to exists.
// Complexity: O(1)
func (g *Graph[K]) HasEdge(from, to K) bool {
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of the edge from→to,
// or ErrVertexNotFound when no such edge exists.
// Complexity: O(1)
func (g *Graph[K]) Weight(from, to K) (int64, error) {
	w, ok := g.adjacency[from][to]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return w, nil
}

// Vertices returns all vertices in insertion order.
// Complexity: O(V)
func (g *Graph[K]) Vertices() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns the vertices adjacent to v, in edge-insertion order,
// or ErrVertexNotFound when v is absent.
// Complexity: O(deg(v))
func (g *Graph[K]) Neighbors(v K) ([]K, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}

	out := make([]K, len(g.adjOrder[v]))
	copy(out, g.adjOrder[v])

	return out, nil
}

// VertexCount returns the number of vertices.
func (g *Graph[K]) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of edges (undirected edges count once).
func (g *Graph[K]) EdgeCount() int { return g.edgeCount }

// link stores from→to = weight and reports whether the edge is new.
func (g *Graph[K]) link(from, to K, weight int64) bool {
	adj, ok := g.adjacency[from]
	if !ok {
		adj = make(map[K]int64)
		g.adjacency[from] = adj
	}

	_, existed := adj[to]
	adj[to] = weight
	if !existed {
		g.adjOrder[from] = append(g.adjOrder[from], to)
	}

	return !existed
}
