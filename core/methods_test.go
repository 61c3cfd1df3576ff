package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/connections/core"
)

func TestAddNode_AutoIdentifier(t *testing.T) {
	g, err := core.NewDirected()
	require.NoError(t, err)

	id, err := g.AddNode("", core.Attrs{"kind": "auto"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.True(t, g.HasNode(id))

	// A second auto-generated identifier never collides.
	id2, err := g.AddNode("", nil)
	require.NoError(t, err)
	require.NotEqual(t, id, id2)
}

func TestAddNode_DuplicateAndReplace(t *testing.T) {
	g, err := core.NewDirected()
	require.NoError(t, err)

	_, err = g.AddNode("A", core.Attrs{"age": 19})
	require.NoError(t, err)

	_, err = g.AddNode("A", nil)
	require.ErrorIs(t, err, core.ErrNodeAlreadyExists)

	// Give A a calculated degree, then replace its attributes.
	_, err = g.AddEdge("A", "B", nil)
	require.NoError(t, err)
	deg, err := g.Degree("A")
	require.NoError(t, err)
	require.Equal(t, 1, deg)

	_, err = g.AddNode("A", core.Attrs{"age": 20}, core.Replace())
	require.NoError(t, err)

	// Attributes are overwritten, not merged; calculated values survive.
	attrs, err := g.NodeAttrs("A")
	require.NoError(t, err)
	require.Equal(t, core.Attrs{"age": 20}, attrs)
	deg, err = g.Degree("A")
	require.NoError(t, err)
	require.Equal(t, 1, deg)
}

func TestDelNode_CascadesToIncidentCouples(t *testing.T) {
	g, err := core.NewDirected(core.WithEdges(map[core.Couple]map[string]core.Attrs{
		{L: "X", R: "Y"}: {"e1": {}},
		{L: "Y", R: "Z"}: {"e2": {}},
		{L: "Z", R: "X"}: {"e3": {}},
	}))
	require.NoError(t, err)

	// Y sits on the left of one couple and on the right of another; both go.
	require.NoError(t, g.DelNode("Y"))
	require.False(t, g.HasNode("Y"))
	require.False(t, g.HasEdge("X", "Y"))
	require.False(t, g.HasEdge("Y", "Z"))
	require.True(t, g.HasEdge("Z", "X"))
	require.Equal(t, 1, g.CoupleCount())

	deg, err := g.Degree("X")
	require.NoError(t, err)
	require.Equal(t, 1, deg)
}

func TestDelNode_NotFound(t *testing.T) {
	g, err := core.NewUndirected()
	require.NoError(t, err)
	require.ErrorIs(t, g.DelNode("ghost"), core.ErrNodeNotFound)
}

func TestAddThenDelNode_RestoresCount(t *testing.T) {
	g, err := core.NewUndirected(core.WithNodes([]string{"A", "B"}))
	require.NoError(t, err)
	before := g.NodeCount()

	id, err := g.AddNode("C", nil)
	require.NoError(t, err)
	require.NoError(t, g.DelNode(id))
	require.Equal(t, before, g.NodeCount())
}

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g, err := core.NewDirected()
	require.NoError(t, err)

	_, err = g.AddEdge("A", "B", core.Attrs{"w": 3})
	require.NoError(t, err)
	require.True(t, g.HasNode("A"))
	require.True(t, g.HasNode("B"))

	// An endpoint that already exists is tolerated and keeps its attributes.
	_, err = g.AddNode("C", core.Attrs{"keep": true})
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", nil)
	require.NoError(t, err)
	attrs, err := g.NodeAttrs("C")
	require.NoError(t, err)
	require.Equal(t, core.Attrs{"keep": true}, attrs)
}

func TestAddEdge_NoAutoNodes(t *testing.T) {
	g, err := core.NewDirected()
	require.NoError(t, err)

	_, err = g.AddEdge("A", "B", nil, core.NoAutoNodes())
	require.NoError(t, err)
	require.True(t, g.HasEdge("A", "B"))
	require.False(t, g.HasNode("A"))
	require.False(t, g.HasNode("B"))

	_, err = g.Degree("A")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAddEdge_DuplicateAndReplace(t *testing.T) {
	g, err := core.NewDirected()
	require.NoError(t, err)

	_, err = g.AddEdge("A", "B", core.Attrs{"amount": 1400}, core.WithID("e1"))
	require.NoError(t, err)

	_, err = g.AddEdge("A", "B", nil, core.WithID("e1"))
	require.ErrorIs(t, err, core.ErrEdgeAlreadyExists)

	_, err = g.AddEdge("A", "B", core.Attrs{"amount": 2700}, core.WithID("e1"), core.Replace())
	require.NoError(t, err)
	multiples, err := g.EdgesOf("A", "B")
	require.NoError(t, err)
	require.Equal(t, core.Attrs{"amount": 2700}, multiples["e1"])
}

func TestDelEdge_SingleIdentifierAndWholeCouple(t *testing.T) {
	g, err := core.NewDirected()
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", nil, core.WithID("e1"))
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", nil, core.WithID("e2"))
	require.NoError(t, err)

	// Remove one parallel edge; the couple survives.
	require.NoError(t, g.DelEdge("A", "B", core.WithID("e1")))
	multiples, err := g.EdgesOf("A", "B")
	require.NoError(t, err)
	require.Len(t, multiples, 1)
	require.Contains(t, multiples, "e2")

	// Removing the last parallel edge prunes the couple entirely.
	require.NoError(t, g.DelEdge("A", "B", core.WithID("e2")))
	require.False(t, g.HasEdge("A", "B"))
	require.Equal(t, 0, g.CoupleCount())

	// Whole-couple removal takes all parallel edges at once.
	_, err = g.AddEdge("A", "B", nil, core.WithID("e3"))
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", nil, core.WithID("e4"))
	require.NoError(t, err)
	require.NoError(t, g.DelEdge("A", "B"))
	require.Equal(t, 0, g.EdgeCount())
}

func TestDelEdge_NotFound(t *testing.T) {
	g, err := core.NewDirected()
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", nil, core.WithID("e1"))
	require.NoError(t, err)

	require.ErrorIs(t, g.DelEdge("B", "A"), core.ErrCoupleNotFound)
	require.ErrorIs(t, g.DelEdge("A", "B", core.WithID("nope")), core.ErrEdgeNotFound)
}

func TestClearNodes_DoesNotCascade(t *testing.T) {
	g, err := core.NewUndirected()
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", nil)
	require.NoError(t, err)

	// Documented quirk: the edge store keeps referencing absent nodes.
	g.ClearNodes()
	require.Equal(t, 0, g.NodeCount())
	require.Equal(t, 1, g.CoupleCount())

	// Recomputation skips the dangling endpoints instead of repairing them.
	g.Recalculate()
	d := g.Describe()
	require.Equal(t, 0, d.Nodes)
	require.Equal(t, 1, d.Couples)
}

func TestClearEdges_StaysConsistent(t *testing.T) {
	g, err := core.NewUndirected()
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", nil)
	require.NoError(t, err)

	g.ClearEdges()
	require.Equal(t, 0, g.EdgeCount())
	require.False(t, g.NeedsRecalc())

	deg, err := g.Degree("A")
	require.NoError(t, err)
	require.Equal(t, 0, deg)
	neighbors, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Empty(t, neighbors)
}
