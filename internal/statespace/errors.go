package statespace

import (
	"errors"
	"fmt"
	"strings"
)

// Causes wrapped by StateError
var (
	ErrUnknownState   = errors.New("no such state")
	ErrDuplicateState = errors.New("state already defined")
	ErrEmptyName      = errors.New("empty state name")
	ErrNoInitialState = errors.New("no initial state")
	ErrNegativeCost   = errors.New("negative transition cost")
)

// StateError ties a builder or problem failure to the state it was about.
// State is empty when the failure concerns the space as a whole.
type StateError struct {
	Op    string
	State string
	Err   error
}

// Error renders as `op "state": cause`, e.g. `AddGoal "Z": no such state`
func (e *StateError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.State != "" {
		fmt.Fprintf(&b, " %q", e.State)
	}
	b.WriteString(": ")
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *StateError) Unwrap() error { return e.Err }

func stateErr(op, state string, err error) error {
	return &StateError{Op: op, State: state, Err: err}
}
