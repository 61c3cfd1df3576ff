package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/connections/core"
)

func TestDescribe_Multigraph(t *testing.T) {
	g, err := core.NewUndirected()
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", nil, core.WithID("e1"))
	require.NoError(t, err)
	require.False(t, g.Describe().Multi)

	_, err = g.AddEdge("A", "B", nil, core.WithID("e2"))
	require.NoError(t, err)
	d := g.Describe()
	require.True(t, d.Multi)
	require.Equal(t, 1, d.Couples) // parallel multiplicity does not count
}

func TestDescribe_PseudographAndLoops(t *testing.T) {
	g, err := core.NewDirected()
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", nil)
	require.NoError(t, err)
	require.False(t, g.Describe().Pseudo)

	_, err = g.AddEdge("B", "B", nil)
	require.NoError(t, err)
	require.True(t, g.Describe().Pseudo)

	var loops []core.Couple
	for c := range g.Loops() {
		loops = append(loops, c)
	}
	require.Equal(t, []core.Couple{{L: "B", R: "B"}}, loops)
}

func TestLoops_LazyAndRestartable(t *testing.T) {
	g, err := core.NewUndirected()
	require.NoError(t, err)
	_, err = g.AddEdge("A", "A", nil)
	require.NoError(t, err)

	seq := g.Loops()

	// First traversal sees the loop.
	count := 0
	for range seq {
		count++
	}
	require.Equal(t, 1, count)

	// The sequence reads live state: after the mutation a fresh traversal of
	// the same sequence yields nothing.
	require.NoError(t, g.DelEdge("A", "A"))
	count = 0
	for range seq {
		count++
	}
	require.Equal(t, 0, count)
}

func TestDescribe_CompleteGraph(t *testing.T) {
	// Triangle: every distinct pair connected.
	g, err := core.NewUndirected(core.WithEdges([]core.Couple{
		{L: "A", R: "B"},
		{L: "B", R: "C"},
		{L: "C", R: "A"},
	}))
	require.NoError(t, err)
	require.True(t, g.Describe().Complete)

	// A fourth node with a single edge breaks completeness.
	_, err = g.AddEdge("C", "D", nil)
	require.NoError(t, err)
	require.False(t, g.Describe().Complete)
}

func TestDescribe_CompleteDeduplicatesDirections(t *testing.T) {
	// X→Y and Y→X are one pair for completeness purposes; loops never count.
	g, err := core.NewDirected(core.WithEdges([]core.Couple{
		{L: "X", R: "Y"},
		{L: "Y", R: "X"},
		{L: "X", R: "X"},
	}))
	require.NoError(t, err)
	d := g.Describe()
	require.True(t, d.Complete)
	require.True(t, d.Pseudo)
	require.Equal(t, 3, d.Couples)
}

func TestDescribe_ConnectivityNotAvailable(t *testing.T) {
	g, err := core.NewDirected()
	require.NoError(t, err)
	d := g.Describe()
	require.Equal(t, core.TriNotAvailable, d.Connected)
	require.Equal(t, "not available", d.Connected.String())
}

func TestGraph_String(t *testing.T) {
	// Two nodes sharing one distinct non-loop pair hit the n·(n−1)/2 maximum,
	// so the complete prefix applies on top of multi and pseudo.
	g, err := core.NewDirected(core.WithEdges(map[core.Couple]map[string]core.Attrs{
		{L: "X", R: "Y"}: {"e1": {}, "e2": {}},
		{L: "X", R: "X"}: {"e3": {}},
	}))
	require.NoError(t, err)
	require.Equal(t, "Complete Pseudo Multi Directed Graph with 2 nodes and 2 edges", g.String())

	// An isolated third node breaks completeness but not the other prefixes.
	_, err = g.AddNode("Z", nil)
	require.NoError(t, err)
	require.Equal(t, "Pseudo Multi Directed Graph with 3 nodes and 2 edges", g.String())

	solo, err := core.NewUndirected(core.WithNodes([]string{"A"}))
	require.NoError(t, err)
	require.Equal(t, "Complete Undirected Graph with 1 node and 0 edge", solo.String())
}

func TestGraph_Equal(t *testing.T) {
	build := func() *core.Graph {
		g, err := core.NewDirected(
			core.WithNodes(map[string]core.Attrs{"A": {"x": 1}, "B": {}}),
			core.WithEdges(map[core.Couple]map[string]core.Attrs{
				{L: "A", R: "B"}: {"e1": {"w": 2}},
			}),
		)
		require.NoError(t, err)

		return g
	}

	g1, g2 := build(), build()
	require.True(t, g1.Equal(g2))

	// Staleness is derived state and does not participate in equality.
	_, err := g2.AddEdge("A", "B", nil, core.WithID("e2"), core.Deferred())
	require.NoError(t, err)
	require.False(t, g1.Equal(g2))
	require.NoError(t, g2.DelEdge("A", "B", core.WithID("e2")))
	require.True(t, g1.Equal(g2))

	// Attribute-for-attribute: a single differing value breaks equality.
	_, err = g2.AddNode("A", core.Attrs{"x": 2}, core.Replace())
	require.NoError(t, err)
	require.False(t, g1.Equal(g2))

	// Different concrete variants are never equal, even both empty.
	d, err := core.NewDirected()
	require.NoError(t, err)
	u, err := core.NewUndirected()
	require.NoError(t, err)
	require.False(t, d.Equal(u))
	require.False(t, d.Equal(nil))
}
