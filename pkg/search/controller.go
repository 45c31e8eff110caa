package search

import (
	"context"
	"sync/atomic"
	"time"
)

// Controller governs whether a search keeps running, decides what counts as
// a goal and builds the search's results.
type Controller[A, S any] interface {
	// IsExecuting is polled once per loop iteration. Returning false ends the search.
	IsExecuting() bool
	// IsGoalState reports whether node satisfies the goal
	IsGoalState(node Node[A, S], problem Problem[A, S]) (bool, error)
	// Solution builds the result for a goal node
	Solution(node Node[A, S]) Result[A]
	// Failure builds the result for a search that found nothing
	Failure() Result[A]
}

// ControllerOption configures a BasicController
type ControllerOption[S any] func(*controllerConfig[S])

type controllerConfig[S any] struct {
	ctx      context.Context
	maxSteps int
	timeout  time.Duration
	goal     func(S) bool
	now      func() time.Time
}

// WithContext stops the search once ctx is done
func WithContext[S any](ctx context.Context) ControllerOption[S] {
	return func(c *controllerConfig[S]) {
		c.ctx = ctx
	}
}

// WithMaxSteps stops the search after the given number of loop iterations
func WithMaxSteps[S any](steps int) ControllerOption[S] {
	return func(c *controllerConfig[S]) {
		c.maxSteps = steps
	}
}

// WithTimeout stops the search once the timeout has elapsed since the first poll
func WithTimeout[S any](timeout time.Duration) ControllerOption[S] {
	return func(c *controllerConfig[S]) {
		c.timeout = timeout
	}
}

// WithGoal sets the goal predicate, overriding the problem's own
func WithGoal[S any](goal func(S) bool) ControllerOption[S] {
	return func(c *controllerConfig[S]) {
		c.goal = goal
	}
}

// Beginner is implemented by controllers that keep per-run state.
// TreeSearch calls Begin once before each run, ahead of the first poll.
type Beginner interface {
	Begin()
}

// BasicController is the default Controller.
//
// Stop may be called from any goroutine. Everything else is owned by the
// goroutine running the search. Step and time budgets are per run: Begin
// restarts them, and TreeSearch calls Begin at the start of every Apply.
// A stop or an expired context is sticky across runs until Reset.
type BasicController[A, S any] struct {
	cfg controllerConfig[S]

	stopped   atomic.Bool // Stop or context, survives Begin
	spent     atomic.Bool // step or time budget spent in the current run
	steps     int
	startedAt time.Time
}

var (
	_ Controller[int, int] = (*BasicController[int, int])(nil)
	_ Beginner             = (*BasicController[int, int])(nil)
)

// NewBasicController creates a controller that runs until stopped or out of budget
func NewBasicController[A, S any](opts ...ControllerOption[S]) *BasicController[A, S] {
	cfg := controllerConfig[S]{now: time.Now}
	for _, o := range opts {
		o(&cfg)
	}
	return &BasicController[A, S]{cfg: cfg}
}

// Stop asks the running search to finish at its next poll
func (c *BasicController[A, S]) Stop() {
	c.stopped.Store(true)
}

// Stopped reports whether the controller has ended, or will end, the current search
func (c *BasicController[A, S]) Stopped() bool {
	return c.stopped.Load() || c.spent.Load()
}

// Begin restarts the step and time budgets. A stop is left in place.
func (c *BasicController[A, S]) Begin() {
	c.steps = 0
	c.startedAt = time.Time{}
	c.spent.Store(false)
}

// Reset re-arms the controller: clears the stop flag and restarts the budgets
func (c *BasicController[A, S]) Reset() {
	c.Begin()
	c.stopped.Store(false)
}

// Steps returns how many polls the current run has been granted
func (c *BasicController[A, S]) Steps() int {
	return c.steps
}

func (c *BasicController[A, S]) IsExecuting() bool {
	if c.Stopped() {
		return false
	}

	if c.cfg.ctx != nil {
		select {
		case <-c.cfg.ctx.Done():
			c.stopped.Store(true)
			return false
		default:
		}
	}

	if c.cfg.maxSteps > 0 && c.steps >= c.cfg.maxSteps {
		c.spent.Store(true)
		return false
	}

	if c.cfg.timeout > 0 {
		now := c.cfg.now()
		if c.startedAt.IsZero() {
			c.startedAt = now
		} else if now.Sub(c.startedAt) >= c.cfg.timeout {
			c.spent.Store(true)
			return false
		}
	}

	c.steps++
	return true
}

func (c *BasicController[A, S]) IsGoalState(node Node[A, S], problem Problem[A, S]) (bool, error) {
	if c.cfg.goal != nil {
		return c.cfg.goal(node.State()), nil
	}
	if tester, ok := problem.(GoalTester[S]); ok {
		return tester.IsGoal(node.State()), nil
	}
	return false, ErrNoGoalTest
}

func (c *BasicController[A, S]) Solution(node Node[A, S]) Result[A] {
	return SolutionOf(node)
}

func (c *BasicController[A, S]) Failure() Result[A] {
	if c.Stopped() {
		return FailureOf[A](Cancelled)
	}
	return FailureOf[A](Exhausted)
}
