package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/avi3tal/treesearch/internal/config"
	"github.com/avi3tal/treesearch/internal/logging"
	"github.com/avi3tal/treesearch/internal/statespace"
	"github.com/avi3tal/treesearch/pkg/search"
)

type (
	spaceSearch = search.TreeSearch[statespace.Transition, string]
	spaceResult = search.Result[statespace.Transition]
)

// newSpaceSearch builds a TreeSearch over a state space from the run config.
// Each call gets its own controller so runs never share a stop flag.
func newSpaceSearch(ctx context.Context, cfg config.Config, frontierName string) (*spaceSearch, error) {
	frontier, err := search.FrontierByName[statespace.Transition, string](frontierName)
	if err != nil {
		return nil, err
	}

	opts := []search.ControllerOption[string]{search.WithContext[string](ctx)}
	if cfg.MaxSteps > 0 {
		opts = append(opts, search.WithMaxSteps[string](cfg.MaxSteps))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, search.WithTimeout[string](cfg.Timeout))
	}

	return search.New[statespace.Transition, string](
		search.NewBasicController[statespace.Transition, string](opts...),
		search.NewBasicNodeFactory[statespace.Transition, string](),
		frontier,
		search.WithBaseCost(cfg.BaseCost),
		search.WithLogger(logging.New("search").With("frontier", frontierName)),
	)
}

func newTable() table.Writer {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	return w
}

// renderPath lists the actions of a solution with their running cost
func renderPath(res spaceResult, baseCost float64) string {
	w := newTable()
	w.AppendHeader(table.Row{"#", "Action", "From", "To", "Cost", "Total"})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	total := baseCost
	for i, t := range res.Actions {
		total += t.Cost
		w.AppendRow(table.Row{i + 1, t.String(), t.From, t.To, t.Cost, total})
	}
	return w.Render()
}

func statsLine(stats search.Stats) string {
	return fmt.Sprintf("iterations=%d expanded=%d generated=%d max_frontier=%d duration=%s",
		stats.Iterations, stats.Expanded, stats.Generated, stats.MaxFrontier, stats.Duration)
}
