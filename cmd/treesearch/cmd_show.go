package main

import (
	"github.com/spf13/cobra"

	"github.com/avi3tal/treesearch/internal/problemfile"
)

func newShowCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <problem-file>",
		Short: "Print the states and transitions of a problem file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := problemfile.Load(args[0])
			if err != nil {
				return err
			}
			g.Print(cmd.OutOrStdout())
			return nil
		},
	}
}
