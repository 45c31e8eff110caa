package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/avi3tal/treesearch/internal/problemfile"
	"github.com/avi3tal/treesearch/internal/runs"
	"github.com/avi3tal/treesearch/internal/statespace"
	"github.com/avi3tal/treesearch/pkg/search"
)

var compareFrontiers = []string{"bfs", "dfs", "ucs"}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <problem-file>",
		Short: "Search a state space with every frontier discipline side by side",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, a, args[0])
		},
	}
}

func runCompare(cmd *cobra.Command, a *app, path string) error {
	g, err := problemfile.Load(path)
	if err != nil {
		return err
	}

	// Each strategy runs its own single-threaded search; the space is only read.
	store := runs.NewMemoryStore()
	eg, ctx := errgroup.WithContext(cmd.Context())
	for _, name := range compareFrontiers {
		eg.Go(func() error {
			ts, err := newSpaceSearch(ctx, a.cfg, name)
			if err != nil {
				return err
			}
			res, stats, err := ts.ApplyWithStats(g)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return store.Save(ctx, runs.NewRecord(g.Name(), name, res, stats, statespace.Transition.String))
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	records, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	slices.SortFunc(records, func(x, y runs.Record) int {
		return slices.Index(compareFrontiers, x.Frontier) - slices.Index(compareFrontiers, y.Frontier)
	})

	w := newTable()
	w.AppendHeader(table.Row{"Frontier", "Outcome", "Depth", "Cost", "Expanded", "Generated", "Max Frontier", "Path"})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	for _, r := range records {
		depth, cost, path := "-", "-", "-"
		if r.Outcome == search.Solved {
			depth = fmt.Sprint(r.Depth)
			cost = fmt.Sprintf("%g", r.PathCost)
			path = strings.Join(r.Path, ", ")
			if len(r.Path) == 0 {
				path = "(initial state)"
			}
		}
		w.AppendRow(table.Row{
			r.Frontier, r.Outcome.String(), depth, cost,
			r.Stats.Expanded, r.Stats.Generated, r.Stats.MaxFrontier, path,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Problem: %s\n", g.Name())
	fmt.Fprintln(out, w.Render())
	return nil
}
