// treesearch runs uninformed tree search over state spaces described in YAML or HCL.
//
// Usage:
//
//	treesearch solve   <problem-file> [--frontier=bfs|dfs|ucs] [--max-steps=N] [--timeout=D]
//	treesearch compare <problem-file>
//	treesearch show    <problem-file>
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avi3tal/treesearch/internal/config"
	"github.com/avi3tal/treesearch/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries settings resolved by the root command down to the subcommands
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "treesearch",
		Short: "Uninformed tree search over explicit state spaces",
		Long: "treesearch loads a state space from a YAML or HCL file and searches it\n" +
			"breadth-first, depth-first or by uniform cost.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}
	root.Version = version

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	f.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newShowCmd(a))
	return root
}

// resolve loads the config file, applies flag overrides and installs the logger
func (a *app) resolve(cmd *cobra.Command) error {
	cfg := config.NewConfig()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if _, err := logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
