package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"catwalk/pkg/report"
)

// compareCommand creates the compare command for aligning two subtrees.
func (c *CLI) compareCommand() *cobra.Command {
	var (
		format  string
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "compare [snapshot.json] [left-root] [right-root]",
		Short: "Compare two category subtrees side by side",
		Long: `Compare two category subtrees side by side.

The compare command walks both subtrees and aligns their entries by depth and
language rank, producing paired rows. A category present in only one tree
gets a one-sided row, which is how structural differences between language
variants of the same category tree show up.

The language ordering comes from the config file ([languages] order) or the
built-in default. Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.reportOptions(report.KindCompare, args[0], args[1:3])
			opts.Format = format
			opts.Refresh = refresh
			return c.runReport(cmd.Context(), opts, output, noCache,
				fmt.Sprintf("Comparing %s and %s...", args[1], args[2]))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text (default), wikitext")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "rebuild even if cached")

	return cmd
}
