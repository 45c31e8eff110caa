package search

// Problem describes the state space being searched. Implementations are read-only
// from the search's point of view.
type Problem[A, S any] interface {
	// InitialState returns the state the search starts from
	InitialState() S
	// Actions returns the legal actions in state, in the order they should be expanded
	Actions(state S) ([]A, error)
	// Result returns the state reached by applying action in state
	Result(state S, action A) (S, error)
}

// GoalTester is implemented by problems that know their own goal states.
type GoalTester[S any] interface {
	IsGoal(state S) bool
}

// StepCoster is implemented by problems with weighted actions. Problems without
// it cost 1 per step.
type StepCoster[A, S any] interface {
	StepCost(state S, action A, next S) float64
}

// ProblemFuncs adapts plain functions to Problem, GoalTester and StepCoster.
// GoalFn and StepCostFn are optional. Without ResultFn every action fails
// with ErrNoResultFunc.
type ProblemFuncs[A, S any] struct {
	Initial    S
	ActionsFn  func(state S) ([]A, error)
	ResultFn   func(state S, action A) (S, error)
	GoalFn     func(state S) bool
	StepCostFn func(state S, action A, next S) float64
}

var (
	_ Problem[int, int]    = (*ProblemFuncs[int, int])(nil)
	_ GoalTester[int]      = (*ProblemFuncs[int, int])(nil)
	_ StepCoster[int, int] = (*ProblemFuncs[int, int])(nil)
)

func (p *ProblemFuncs[A, S]) InitialState() S {
	return p.Initial
}

func (p *ProblemFuncs[A, S]) Actions(state S) ([]A, error) {
	if p.ActionsFn == nil {
		return nil, nil
	}
	return p.ActionsFn(state)
}

func (p *ProblemFuncs[A, S]) Result(state S, action A) (S, error) {
	if p.ResultFn == nil {
		var zero S
		return zero, ErrNoResultFunc
	}
	return p.ResultFn(state, action)
}

func (p *ProblemFuncs[A, S]) IsGoal(state S) bool {
	return p.GoalFn != nil && p.GoalFn(state)
}

func (p *ProblemFuncs[A, S]) StepCost(state S, action A, next S) float64 {
	if p.StepCostFn == nil {
		return DefaultStepCost
	}
	return p.StepCostFn(state, action, next)
}
