package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"catwalk/pkg/report"
)

// buildCommand creates the build command for warming the graph cache.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "build [snapshot.json]",
		Short: "Build and cache the category graph from a snapshot",
		Long: `Build and cache the category graph from a snapshot.

The build command parses the snapshot, constructs the category graph, and
stores it in the cache keyed by the snapshot's content hash. Later tree,
compare, and export runs over the same snapshot start from the cached graph.
It also serves as a snapshot validity check.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			spinner := newSpinnerWithContext(ctx, "Building graph...")
			spinner.Start()

			g, err := runner.Build(ctx, report.Options{
				SnapshotPath: args[0],
				Refresh:      refresh,
				Logger:       c.Logger,
			})
			if err != nil {
				spinner.StopWithError("Build failed")
				return err
			}
			spinner.Stop()

			edges := 0
			for _, children := range g.Children {
				edges += len(children)
			}
			printSuccess("Built category graph")
			printDetail("%d categories, %d membership edges", len(g.Info), edges)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "rebuild even if cached")

	return cmd
}
