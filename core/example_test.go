package core_test

import (
	"fmt"

	"github.com/katalvlaran/connections/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty directed graph:
	g, _ := core.NewDirected()

	// 2) Add edges with explicit identifiers (auto-adds nodes X, Y, Z):
	g.AddEdge("X", "Y", nil, core.WithID("e1"))
	g.AddEdge("X", "Y", nil, core.WithID("e2"))
	g.AddEdge("Y", "Z", nil, core.WithID("e3"))

	// 3) Inspect calculated attributes:
	degree, _ := g.Degree("Y")
	neighbors, _ := g.Neighbors("X")
	fmt.Println("degree(Y):", degree)
	fmt.Println("neighbors(X):", neighbors)

	// 4) Remove a node; incident couples cascade:
	g.DelNode("Y")
	fmt.Println("couples after removing Y:", g.CoupleCount())

	// Output:
	// degree(Y): 3
	// neighbors(X): [Y]
	// couples after removing Y: 0
}

// ExampleGraph_deferred shows how batched callers amortize recomputation.
func ExampleGraph_deferred() {
	g, _ := core.NewUndirected()

	// Defer the O(V+E) pass while batching mutations:
	g.AddEdge("A", "B", nil, core.Deferred())
	g.AddEdge("B", "C", nil, core.Deferred())
	fmt.Println("stale:", g.NeedsRecalc())

	// One explicit pass settles everything:
	g.Recalculate()
	degree, _ := g.Degree("B")
	fmt.Println("stale:", g.NeedsRecalc(), "degree(B):", degree)

	// Output:
	// stale: true
	// stale: false degree(B): 2
}

// ExampleGraph_describe classifies a multigraph with a loop.
func ExampleGraph_describe() {
	g, _ := core.NewUndirected()
	g.AddEdge("A", "B", nil, core.WithID("e1"))
	g.AddEdge("B", "A", nil, core.WithID("e2")) // same couple: parallel edge
	g.AddEdge("C", "C", nil, core.WithID("e3")) // loop: pseudograph

	d := g.Describe()
	fmt.Println("multi:", d.Multi, "pseudo:", d.Pseudo, "connected:", d.Connected)
	fmt.Println(g)

	// Output:
	// multi: true pseudo: true connected: not available
	// Pseudo Multi Undirected Graph with 3 nodes and 2 edges
}
