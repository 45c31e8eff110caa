package search

import "fmt"

// DefaultStepCost is charged for an action when the problem does not weight its actions
const DefaultStepCost = 1.0

// NodeFactory builds the nodes of a search tree.
type NodeFactory[A, S any] interface {
	// NewRootNode starts a fresh tree holding initialState at baseCost
	NewRootNode(initialState S, baseCost float64) Node[A, S]
	// NewChildNode appends the node reached by applying action to parent
	NewChildNode(problem Problem[A, S], parent Node[A, S], action A) (Node[A, S], error)
}

// BasicNodeFactory builds nodes straight from the problem's transition model.
// Repeated states are never merged.
type BasicNodeFactory[A, S any] struct{}

var _ NodeFactory[int, int] = BasicNodeFactory[int, int]{}

// NewBasicNodeFactory creates the default node factory
func NewBasicNodeFactory[A, S any]() BasicNodeFactory[A, S] {
	return BasicNodeFactory[A, S]{}
}

func (BasicNodeFactory[A, S]) NewRootNode(initialState S, baseCost float64) Node[A, S] {
	tree := &Tree[A, S]{}
	return tree.add(record[A, S]{
		state:    initialState,
		parent:   NoParent,
		pathCost: baseCost,
	})
}

func (BasicNodeFactory[A, S]) NewChildNode(problem Problem[A, S], parent Node[A, S], action A) (Node[A, S], error) {
	next, err := problem.Result(parent.State(), action)
	if err != nil {
		return Node[A, S]{}, err
	}

	cost := DefaultStepCost
	if coster, ok := problem.(StepCoster[A, S]); ok {
		cost = coster.StepCost(parent.State(), action, next)
	}
	if cost < 0 {
		return Node[A, S]{}, fmt.Errorf("%w: %v", ErrNegativeStepCost, cost)
	}

	return parent.tree.add(record[A, S]{
		state:     next,
		action:    action,
		hasAction: true,
		parent:    parent.id,
		pathCost:  parent.PathCost() + cost,
		depth:     parent.Depth() + 1,
	}), nil
}
