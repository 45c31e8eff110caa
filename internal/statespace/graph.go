package statespace

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/avi3tal/treesearch/pkg/search"
)

const defaultSpaceName = "space"

// Transition is the action type of a Graph: moving from one state to another
type Transition struct {
	From  string
	To    string
	Label string
	Cost  float64
}

func (t Transition) String() string {
	if t.Label != "" {
		return t.Label
	}
	return fmt.Sprintf("%s->%s", t.From, t.To)
}

// Graph is an explicit state space: named states joined by weighted transitions.
// It is built once and then searched read-only.
type Graph struct {
	name        string
	states      map[string]struct{}
	order       []string
	transitions map[string][]Transition
	goals       map[string]struct{}
	initial     string
}

var (
	_ search.Problem[Transition, string]    = (*Graph)(nil)
	_ search.GoalTester[string]             = (*Graph)(nil)
	_ search.StepCoster[Transition, string] = (*Graph)(nil)
)

// NewGraph creates an empty state space
func NewGraph(name string) *Graph {
	spaceName := defaultSpaceName
	if name != "" {
		spaceName = strings.ReplaceAll(name, " ", "-")
	}

	return &Graph{
		name:        spaceName,
		states:      make(map[string]struct{}),
		transitions: make(map[string][]Transition),
		goals:       make(map[string]struct{}),
	}
}

// Name returns the space's name
func (g *Graph) Name() string {
	return g.name
}

// AddState adds a state to the space
func (g *Graph) AddState(name string) error {
	if name == "" {
		return stateErr("AddState", name, ErrEmptyName)
	}
	if _, exists := g.states[name]; exists {
		return stateErr("AddState", name, ErrDuplicateState)
	}

	g.states[name] = struct{}{}
	g.order = append(g.order, name)
	return nil
}

// EnsureState adds a state unless it already exists
func (g *Graph) EnsureState(name string) error {
	if g.HasState(name) {
		return nil
	}
	return g.AddState(name)
}

// HasState reports whether the state exists
func (g *Graph) HasState(name string) bool {
	_, exists := g.states[name]
	return exists
}

// AddTransition adds a weighted transition between two existing states.
// Transitions out of a state are enumerated in the order they were added.
func (g *Graph) AddTransition(from, to, label string, cost float64) error {
	if err := g.validateTransitionStates(from, []string{to}); err != nil {
		return err
	}
	if cost < 0 {
		return stateErr("AddTransition", from, errors.Wrapf(ErrNegativeCost, "%s->%s costs %v", from, to, cost))
	}

	g.transitions[from] = append(g.transitions[from], Transition{
		From:  from,
		To:    to,
		Label: label,
		Cost:  cost,
	})
	return nil
}

// validateTransitionStates validates source and target states
func (g *Graph) validateTransitionStates(from string, targets []string) error {
	if !g.HasState(from) {
		return stateErr("AddTransition", from, errors.Wrap(ErrUnknownState, "source"))
	}
	for _, target := range targets {
		if !g.HasState(target) {
			return stateErr("AddTransition", target, errors.Wrap(ErrUnknownState, "target"))
		}
	}
	return nil
}

// SetInitial sets the state the search starts from
func (g *Graph) SetInitial(name string) error {
	if !g.HasState(name) {
		return stateErr("SetInitial", name, ErrUnknownState)
	}
	g.initial = name
	return nil
}

// AddGoal marks a state as a goal
func (g *Graph) AddGoal(name string) error {
	if !g.HasState(name) {
		return stateErr("AddGoal", name, ErrUnknownState)
	}
	g.goals[name] = struct{}{}
	return nil
}

// States returns the states in the order they were added
func (g *Graph) States() []string {
	return append([]string(nil), g.order...)
}

// Goals returns the goal states in the order they were added
func (g *Graph) Goals() []string {
	goals := make([]string, 0, len(g.goals))
	for _, s := range g.order {
		if _, ok := g.goals[s]; ok {
			goals = append(goals, s)
		}
	}
	return goals
}

// Validate checks the space can be searched. Goals need not be reachable:
// an unreachable goal is a legitimate search failure, not a malformed space.
func (g *Graph) Validate() error {
	if g.initial == "" {
		return stateErr("Validate", "", ErrNoInitialState)
	}
	if !g.HasState(g.initial) {
		return stateErr("Validate", g.initial, ErrUnknownState)
	}
	return nil
}

// Reachable returns the set of states reachable from the initial state
func (g *Graph) Reachable() map[string]bool {
	visited := make(map[string]bool)
	if g.initial == "" {
		return visited
	}
	g.dfs(g.initial, visited)
	return visited
}

func (g *Graph) dfs(state string, visited map[string]bool) {
	visited[state] = true
	for _, t := range g.transitions[state] {
		if !visited[t.To] {
			g.dfs(t.To, visited)
		}
	}
}

// InitialState implements search.Problem
func (g *Graph) InitialState() string {
	return g.initial
}

// Actions implements search.Problem
func (g *Graph) Actions(state string) ([]Transition, error) {
	if !g.HasState(state) {
		return nil, stateErr("Actions", state, ErrUnknownState)
	}
	return append([]Transition(nil), g.transitions[state]...), nil
}

// Result implements search.Problem
func (g *Graph) Result(state string, action Transition) (string, error) {
	if action.From != state {
		return "", stateErr("Result", state, fmt.Errorf("transition %s does not start here", action))
	}
	if !g.HasState(action.To) {
		return "", stateErr("Result", action.To, ErrUnknownState)
	}
	return action.To, nil
}

// IsGoal implements search.GoalTester
func (g *Graph) IsGoal(state string) bool {
	_, ok := g.goals[state]
	return ok
}

// StepCost implements search.StepCoster
func (g *Graph) StepCost(_ string, action Transition, _ string) float64 {
	return action.Cost
}
