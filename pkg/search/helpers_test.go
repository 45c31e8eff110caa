package search

import (
	"errors"
	"fmt"
	"strings"
)

//------------------------------//
// Test problem: explicit graph //
//------------------------------//

// edge is the action type of the test graph, written "A->B"
type edge string

func (e edge) target() string {
	_, to, _ := strings.Cut(string(e), "->")
	return to
}

// graphProblem is a small adjacency-list problem used across the tests
type graphProblem struct {
	initial string
	next    map[string][]string
	goals   map[string]bool
	costs   map[edge]float64

	actionCalls int
}

func newGraphProblem(initial string, goals ...string) *graphProblem {
	p := &graphProblem{
		initial: initial,
		next:    make(map[string][]string),
		goals:   make(map[string]bool),
	}
	for _, g := range goals {
		p.goals[g] = true
	}
	return p
}

func (p *graphProblem) link(from string, to ...string) *graphProblem {
	p.next[from] = append(p.next[from], to...)
	return p
}

func (p *graphProblem) InitialState() string {
	return p.initial
}

func (p *graphProblem) Actions(state string) ([]edge, error) {
	p.actionCalls++
	actions := make([]edge, 0, len(p.next[state]))
	for _, to := range p.next[state] {
		actions = append(actions, edge(fmt.Sprintf("%s->%s", state, to)))
	}
	return actions, nil
}

func (p *graphProblem) Result(_ string, action edge) (string, error) {
	return action.target(), nil
}

func (p *graphProblem) IsGoal(state string) bool {
	return p.goals[state]
}

// weightedProblem adds StepCoster on top of graphProblem
type weightedProblem struct {
	*graphProblem
}

func (p weightedProblem) StepCost(_ string, action edge, _ string) float64 {
	if c, ok := p.costs[action]; ok {
		return c
	}
	return DefaultStepCost
}

// noGoalProblem hides IsGoal from the controller
type noGoalProblem struct {
	p *graphProblem
}

func (n noGoalProblem) InitialState() string                    { return n.p.InitialState() }
func (n noGoalProblem) Actions(s string) ([]edge, error)        { return n.p.Actions(s) }
func (n noGoalProblem) Result(s string, a edge) (string, error) { return n.p.Result(s, a) }

// abcd is the A->B, B->C, B->D scenario
func abcd(goals ...string) *graphProblem {
	return newGraphProblem("A", goals...).
		link("A", "B").
		link("B", "C", "D")
}

// replay applies actions from the initial state
func replay(p Problem[edge, string], actions []edge) (string, error) {
	state := p.InitialState()
	for _, a := range actions {
		legal, err := p.Actions(state)
		if err != nil {
			return "", err
		}
		found := false
		for _, l := range legal {
			if l == a {
				found = true
				break
			}
		}
		if !found {
			return "", errors.New("illegal action " + string(a) + " in state " + state)
		}
		if state, err = p.Result(state, a); err != nil {
			return "", err
		}
	}
	return state, nil
}
