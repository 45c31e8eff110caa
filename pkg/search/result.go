package search

// Outcome tells how a search ended
type Outcome int

const (
	// Exhausted means the frontier emptied without reaching a goal
	Exhausted Outcome = iota
	// Solved means a goal node was removed from the frontier
	Solved
	// Cancelled means the controller stopped the search before it finished
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is what a search returns. A solved result may carry no actions when
// the initial state is already a goal; use Found, never len(Actions), to tell
// success from failure.
type Result[A any] struct {
	Outcome  Outcome
	Actions  []A
	PathCost float64
	Depth    int
}

// Found reports whether the search reached a goal
func (r Result[A]) Found() bool {
	return r.Outcome == Solved
}

// SolutionOf builds the solved result for a goal node
func SolutionOf[A, S any](node Node[A, S]) Result[A] {
	return Result[A]{
		Outcome:  Solved,
		Actions:  node.Actions(),
		PathCost: node.PathCost(),
		Depth:    node.Depth(),
	}
}

// FailureOf builds an unsolved result with the given outcome
func FailureOf[A any](outcome Outcome) Result[A] {
	return Result[A]{Outcome: outcome}
}
