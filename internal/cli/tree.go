package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"catwalk/pkg/report"
)

// treeCommand creates the tree command for listing a category subtree.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		format  string
		output  string
		counts  bool
		depth   int
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "tree [snapshot.json] [root]",
		Short: "List a category subtree",
		Long: `List a category subtree from a snapshot.

The tree command builds the category graph from the snapshot and walks the
subtree below the given root category depth-first, printing one category per
line with indentation showing nesting. Subcategories are visited in
case-insensitive alphabetical order; categories already on the current branch
are skipped, so cyclic category structures terminate.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.reportOptions(report.KindTree, args[0], args[1:2])
			opts.Format = format
			opts.ShowCounts = counts
			opts.MaxDepth = depth
			opts.Refresh = refresh
			return c.runReport(cmd.Context(), opts, output, noCache,
				fmt.Sprintf("Walking %s...", args[1]))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text (default), wikitext")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&counts, "counts", false, "show page and subcategory counters")
	cmd.Flags().IntVar(&depth, "depth", 0, "maximum depth below the root (0 = unlimited)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "rebuild even if cached")

	return cmd
}
