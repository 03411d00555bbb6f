package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"catwalk/pkg/report"
)

// exportCommand creates the export command for Graphviz output.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		format  string
		output  string
		counts  bool
		depth   int
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "export [snapshot.json] [root]",
		Short: "Export a category subtree as Graphviz DOT or SVG",
		Long: `Export a category subtree as a Graphviz graph.

The export command walks the subtree below the root and emits one node per
reached category and one edge per parent-child visit. The default output is
DOT source; --format svg renders it with Graphviz.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.reportOptions(report.KindDOT, args[0], args[1:2])
			opts.Format = format
			opts.ShowCounts = counts
			opts.MaxDepth = depth
			opts.Refresh = refresh
			return c.runReport(cmd.Context(), opts, output, noCache,
				fmt.Sprintf("Exporting %s...", args[1]))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot (default), svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&counts, "counts", false, "include counters in node labels")
	cmd.Flags().IntVar(&depth, "depth", 0, "maximum depth below the root (0 = unlimited)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "rebuild even if cached")

	return cmd
}
