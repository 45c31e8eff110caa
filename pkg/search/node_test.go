package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootNode(t *testing.T) {
	t.Parallel()
	factory := NewBasicNodeFactory[edge, string]()

	root := factory.NewRootNode("A", 3)
	require.False(t, root.IsZero())
	require.True(t, root.IsRoot())
	require.Equal(t, "A", root.State())
	require.Equal(t, 3.0, root.PathCost())
	require.Equal(t, 0, root.Depth())
	require.Equal(t, NodeID(0), root.ID())

	_, ok := root.Action()
	require.False(t, ok)
	_, ok = root.Parent()
	require.False(t, ok)
	require.Empty(t, root.Actions())
	require.Len(t, root.Path(), 1)

	// each root starts its own tree
	other := factory.NewRootNode("A", 0)
	require.NotSame(t, root.Tree(), other.Tree())
}

func TestChildNodes(t *testing.T) {
	t.Parallel()
	factory := NewBasicNodeFactory[edge, string]()
	p := abcd()

	root := factory.NewRootNode(p.InitialState(), 0)
	b, err := factory.NewChildNode(p, root, "A->B")
	require.NoError(t, err)
	d, err := factory.NewChildNode(p, b, "B->D")
	require.NoError(t, err)

	require.Equal(t, "D", d.State())
	require.Equal(t, 2.0, d.PathCost())
	require.Equal(t, 2, d.Depth())
	require.Equal(t, 3, root.Tree().Len())

	action, ok := d.Action()
	require.True(t, ok)
	require.Equal(t, edge("B->D"), action)

	parent, ok := d.Parent()
	require.True(t, ok)
	require.Equal(t, b.ID(), parent.ID())

	require.Equal(t, []edge{"A->B", "B->D"}, d.Actions())

	states := make([]string, 0, 3)
	for _, n := range d.Path() {
		states = append(states, n.State())
	}
	require.Equal(t, []string{"A", "B", "D"}, states)
}

func TestRepeatedStatesAreDistinctNodes(t *testing.T) {
	t.Parallel()
	factory := NewBasicNodeFactory[edge, string]()
	p := newGraphProblem("A").link("A", "A")

	root := factory.NewRootNode("A", 0)
	again, err := factory.NewChildNode(p, root, "A->A")
	require.NoError(t, err)

	require.Equal(t, root.State(), again.State())
	require.NotEqual(t, root.ID(), again.ID())
	require.Equal(t, 1.0, again.PathCost())
}

func TestParentChainLength(t *testing.T) {
	t.Parallel()
	p := newGraphProblem("0", "5").
		link("0", "1").link("1", "2").link("2", "3").link("3", "4").link("4", "5")

	var goal Node[edge, string]
	ctrl := NewBasicController[edge, string](WithGoal(func(s string) bool { return s == "5" }))
	capture := &capturingController{BasicController: ctrl, goal: &goal}

	ts, err := New[edge, string](capture, NewBasicNodeFactory[edge, string](), NewQueue[edge, string])
	require.NoError(t, err)
	res, err := ts.Apply(p)
	require.NoError(t, err)
	require.True(t, res.Found())

	// a solution of length k walks exactly k parents before reaching the root
	ancestors := 0
	cur := goal
	for {
		parent, ok := cur.Parent()
		if !ok {
			break
		}
		ancestors++
		cur = parent
	}
	require.Equal(t, len(res.Actions), ancestors)
	require.True(t, cur.IsRoot())
	_, hasAction := cur.Action()
	assert.False(t, hasAction)
}

func TestPathCostNeverDecreases(t *testing.T) {
	t.Parallel()
	g := newGraphProblem("a", "d").link("a", "b").link("b", "c").link("c", "d")
	g.costs = map[edge]float64{"a->b": 0, "b->c": 2.5, "c->d": 0}
	p := weightedProblem{g}
	factory := NewBasicNodeFactory[edge, string]()

	node := factory.NewRootNode("a", 0)
	for _, a := range []edge{"a->b", "b->c", "c->d"} {
		child, err := factory.NewChildNode(p, node, a)
		require.NoError(t, err)
		require.GreaterOrEqual(t, child.PathCost(), node.PathCost())
		node = child
	}
	require.Equal(t, 2.5, node.PathCost())
}

func TestTreeLookup(t *testing.T) {
	t.Parallel()
	root := NewBasicNodeFactory[edge, string]().NewRootNode("A", 0)

	n, ok := root.Tree().Node(0)
	require.True(t, ok)
	require.Equal(t, "A", n.State())

	_, ok = root.Tree().Node(1)
	require.False(t, ok)
	_, ok = root.Tree().Node(NoParent)
	require.False(t, ok)
}

// capturingController records the goal node handed to Solution
type capturingController struct {
	*BasicController[edge, string]
	goal *Node[edge, string]
}

func (c *capturingController) Solution(node Node[edge, string]) Result[edge] {
	*c.goal = node
	return c.BasicController.Solution(node)
}
