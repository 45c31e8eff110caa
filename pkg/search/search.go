package search

import (
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// TreeSearch runs the generic tree-search loop. The frontier discipline alone
// decides whether it behaves breadth-first, depth-first or uniform-cost.
//
// A TreeSearch holds no per-run state, but Apply is not safe to call
// concurrently when the controller is shared.
type TreeSearch[A, S any] struct {
	controller  Controller[A, S]
	factory     NodeFactory[A, S]
	newFrontier FrontierFunc[A, S]
	opts        options
}

// Stats describes a single run
type Stats struct {
	RunID       string
	Iterations  int // controller polls that let the loop continue
	Expanded    int // nodes whose actions were enumerated
	Generated   int // nodes created, root included
	MaxFrontier int
	Duration    time.Duration
}

// New creates a TreeSearch from its three collaborators
func New[A, S any](
	controller Controller[A, S],
	factory NodeFactory[A, S],
	newFrontier FrontierFunc[A, S],
	opt ...Option,
) (*TreeSearch[A, S], error) {
	if isNil(controller) {
		return nil, NewConfigError("New", "controller", ErrNilCollaborator)
	}
	if isNil(factory) {
		return nil, NewConfigError("New", "node factory", ErrNilCollaborator)
	}
	if newFrontier == nil {
		return nil, NewConfigError("New", "frontier", ErrNilCollaborator)
	}

	opts := defaultOptions()
	for _, o := range opt {
		o(&opts)
	}

	return &TreeSearch[A, S]{
		controller:  controller,
		factory:     factory,
		newFrontier: newFrontier,
		opts:        opts,
	}, nil
}

// NewBreadthFirst creates a TreeSearch with a basic controller and a FIFO frontier
func NewBreadthFirst[A, S any](opt ...Option) *TreeSearch[A, S] {
	ts, _ := New[A, S](NewBasicController[A, S](), NewBasicNodeFactory[A, S](), NewQueue[A, S], opt...)
	return ts
}

// NewDepthFirst creates a TreeSearch with a basic controller and a LIFO frontier
func NewDepthFirst[A, S any](opt ...Option) *TreeSearch[A, S] {
	ts, _ := New[A, S](NewBasicController[A, S](), NewBasicNodeFactory[A, S](), NewStack[A, S], opt...)
	return ts
}

// Controller returns the controller driving the search
func (ts *TreeSearch[A, S]) Controller() Controller[A, S] {
	return ts.controller
}

// Apply searches problem and returns either a solution or the controller's failure result.
// Errors raised by the problem or the controller are returned unchanged.
func (ts *TreeSearch[A, S]) Apply(problem Problem[A, S]) (Result[A], error) {
	res, _, err := ts.ApplyWithStats(problem)
	return res, err
}

// ApplyWithStats is Apply that also reports what the run did
func (ts *TreeSearch[A, S]) ApplyWithStats(problem Problem[A, S]) (Result[A], Stats, error) {
	if problem == nil {
		return Result[A]{}, Stats{}, ErrNilProblem
	}

	stats := Stats{RunID: uuid.New().String()}
	started := time.Now()
	logger := ts.opts.logger.With(slog.String("run_id", stats.RunID))
	logger.Debug("search started")

	res, err := ts.run(problem, &stats)
	stats.Duration = time.Since(started)
	if err != nil {
		return Result[A]{}, stats, err
	}

	logger.Debug("search finished",
		slog.String("outcome", res.Outcome.String()),
		slog.Int("depth", res.Depth),
		slog.Int("expanded", stats.Expanded),
		slog.Int("generated", stats.Generated),
		slog.Int("max_frontier", stats.MaxFrontier),
		slog.Duration("duration", stats.Duration),
	)
	return res, stats, nil
}

func (ts *TreeSearch[A, S]) run(problem Problem[A, S], stats *Stats) (Result[A], error) {
	if b, ok := ts.controller.(Beginner); ok {
		b.Begin()
	}

	frontier := ts.newFrontier()
	frontier.Push(ts.factory.NewRootNode(problem.InitialState(), ts.opts.baseCost))
	stats.Generated = 1
	stats.MaxFrontier = 1

	for ts.controller.IsExecuting() {
		stats.Iterations++

		node, ok := frontier.Pop()
		if !ok {
			return ts.controller.Failure(), nil
		}

		goal, err := ts.controller.IsGoalState(node, problem)
		if err != nil {
			return Result[A]{}, err
		}
		if goal {
			return ts.controller.Solution(node), nil
		}

		actions, err := problem.Actions(node.State())
		if err != nil {
			return Result[A]{}, err
		}
		stats.Expanded++

		for _, action := range actions {
			child, err := ts.factory.NewChildNode(problem, node, action)
			if err != nil {
				return Result[A]{}, err
			}
			frontier.Push(child)
			stats.Generated++
		}
		if n := frontier.Len(); n > stats.MaxFrontier {
			stats.MaxFrontier = n
		}
	}

	return ts.controller.Failure(), nil
}

// isNil also catches typed nil pointers stored in an interface
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
