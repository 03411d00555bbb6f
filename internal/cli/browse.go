package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"catwalk/pkg/errors"
	"catwalk/pkg/report"
)

// browseCommand creates the browse command for interactive navigation.
func (c *CLI) browseCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "browse [snapshot.json] [root]",
		Short: "Browse a category tree interactively",
		Long: `Browse a category tree interactively.

The browse command builds the category graph from the snapshot and opens a
terminal browser positioned at the root category. Navigate with the arrow
keys, descend into a subcategory with enter, and go back up with backspace.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			root := args[1]
			if err := errors.ValidateCategoryTitle(root); err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(ctx))
			g, err := runner.Build(ctx, c.reportOptions(report.KindTree, args[0], args[1:2]))
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Built graph with %d categories", len(g.Info)))

			if _, ok := g.Info[root]; !ok {
				return errors.New(errors.ErrCodeCategoryNotFound, "category %q is not in the snapshot", root)
			}

			p := tea.NewProgram(newBrowserModel(g, args[1]), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
