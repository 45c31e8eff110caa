package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/avi3tal/treesearch/internal/problemfile"
)

type solveFlags struct {
	frontier string
	maxSteps int
	timeout  time.Duration
}

func newSolveCmd(a *app) *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve <problem-file>",
		Short: "Search a state space and print the solution path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, a, flags, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.frontier, "frontier", "", "Frontier discipline: bfs, dfs or ucs (default from config)")
	f.IntVar(&flags.maxSteps, "max-steps", -1, "Maximum loop iterations, 0 for unlimited (default from config)")
	f.DurationVar(&flags.timeout, "timeout", -1, "Wall-clock budget, 0 for unlimited (default from config)")
	return cmd
}

func runSolve(cmd *cobra.Command, a *app, flags solveFlags, path string) error {
	cfg := a.cfg
	if flags.frontier != "" {
		cfg.Frontier = flags.frontier
	}
	if flags.maxSteps >= 0 {
		cfg.MaxSteps = flags.maxSteps
	}
	if flags.timeout >= 0 {
		cfg.Timeout = flags.timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := problemfile.Load(path)
	if err != nil {
		return err
	}

	ts, err := newSpaceSearch(cmd.Context(), cfg, cfg.Frontier)
	if err != nil {
		return err
	}
	res, stats, err := ts.ApplyWithStats(g)
	if err != nil {
		return errors.Wrapf(err, "search %s", path)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Problem:  %s\n", g.Name())
	fmt.Fprintf(out, "Frontier: %s\n", cfg.Frontier)
	fmt.Fprintf(out, "Outcome:  %s\n", res.Outcome)
	if res.Found() {
		fmt.Fprintf(out, "Depth:    %d\n", res.Depth)
		fmt.Fprintf(out, "Cost:     %g\n", res.PathCost)
		if len(res.Actions) > 0 {
			fmt.Fprintln(out, renderPath(res, cfg.BaseCost))
		} else {
			fmt.Fprintln(out, "The initial state is a goal.")
		}
	}
	fmt.Fprintf(out, "Run:      %s\n", stats.RunID)
	fmt.Fprintf(out, "Stats:    %s\n", statsLine(stats))
	return nil
}
