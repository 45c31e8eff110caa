package statespace

import (
	"fmt"
	"io"
)

// Info represents the state space structure for visualization
type Info struct {
	Name        string
	Initial     string
	States      []string
	Goals       []string
	Transitions []TransitionInfo
	Unreachable []string
}

// TransitionInfo describes one transition for display
type TransitionInfo struct {
	From  string
	To    string
	Label string
	Cost  float64
}

// GetInfo collects the space's structure in insertion order
func (g *Graph) GetInfo() *Info {
	info := &Info{
		Name:    g.name,
		Initial: g.initial,
		States:  g.States(),
		Goals:   g.Goals(),
	}

	for _, state := range g.order {
		for _, t := range g.transitions[state] {
			info.Transitions = append(info.Transitions, TransitionInfo{
				From:  t.From,
				To:    t.To,
				Label: t.Label,
				Cost:  t.Cost,
			})
		}
	}

	reachable := g.Reachable()
	for _, state := range g.order {
		if !reachable[state] {
			info.Unreachable = append(info.Unreachable, state)
		}
	}

	return info
}

// Print writes a readable outline of the space
func (g *Graph) Print(w io.Writer) {
	info := g.GetInfo()
	goals := make(map[string]bool, len(info.Goals))
	for _, s := range info.Goals {
		goals[s] = true
	}

	fmt.Fprintf(w, "State Space: %s\n", info.Name)
	fmt.Fprintf(w, "Initial: %s\n\n", info.Initial)

	fmt.Fprintln(w, "States:")
	for _, state := range info.States {
		switch {
		case state == info.Initial && goals[state]:
			fmt.Fprintf(w, "  * %s (Initial, Goal)\n", state)
		case state == info.Initial:
			fmt.Fprintf(w, "  * %s (Initial)\n", state)
		case goals[state]:
			fmt.Fprintf(w, "  - %s (Goal)\n", state)
		default:
			fmt.Fprintf(w, "  - %s\n", state)
		}
	}

	fmt.Fprintln(w, "\nTransitions:")
	for _, t := range info.Transitions {
		if t.Label != "" {
			fmt.Fprintf(w, "  %s --[%s, %g]--> %s\n", t.From, t.Label, t.Cost, t.To)
		} else {
			fmt.Fprintf(w, "  %s --[%g]--> %s\n", t.From, t.Cost, t.To)
		}
	}

	if len(info.Unreachable) > 0 {
		fmt.Fprintln(w, "\nUnreachable:")
		for _, state := range info.Unreachable {
			fmt.Fprintf(w, "  ! %s\n", state)
		}
	}
}
