package search

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCollaborator is returned when a TreeSearch is built without one of its collaborators
	ErrNilCollaborator = errors.New("collaborator must not be nil")

	// ErrNilProblem is returned when Apply is called with a nil problem
	ErrNilProblem = errors.New("problem must not be nil")

	// ErrNoResultFunc is returned when a ProblemFuncs has actions but no ResultFn
	ErrNoResultFunc = errors.New("problem has no result function")

	// ErrNoGoalTest is returned when neither the controller nor the problem can test for a goal
	ErrNoGoalTest = errors.New("no goal test available")

	// ErrNegativeStepCost is returned when a problem reports a step cost below zero
	ErrNegativeStepCost = errors.New("step cost must not be negative")

	// ErrUnknownFrontier is returned when a frontier discipline name is not recognised
	ErrUnknownFrontier = errors.New("unknown frontier discipline")
)

// ConfigError represents an error in how a search was put together
type ConfigError struct {
	// Op is the operation that failed
	Op string
	// Field names the offending collaborator or setting
	Field string
	// Err is the underlying error
	Err error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error: %s: %s: %v", e.Op, e.Field, e.Err)
	}
	return fmt.Sprintf("config error: %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(op, field string, err error) error {
	return &ConfigError{
		Op:    op,
		Field: field,
		Err:   err,
	}
}
