package graph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/graph"
)

// ExampleBFS shows breadth-first visit order with hop distances on an
// undirected graph: edges are explored in insertion order.
func ExampleBFS() {
	g := graph.New[string]()
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("A", "C", 0)
	_ = g.AddEdge("B", "D", 0)

	res, err := graph.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	fmt.Println(res.Depth["D"])
	// Output:
	// [A B C D]
	// 2
}

// ExampleDijkstra computes single-source shortest paths on a small
// weighted triangle: the two-hop route beats the direct edge.
func ExampleDijkstra() {
	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted())
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	dist, prev, err := graph.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := graph.ShortestPath("A", "C", prev)
	fmt.Println(dist["C"])
	fmt.Println(path)
	// Output:
	// 3
	// [A B C]
}
