package cli

import (
	"context"
	"fmt"
	"os"

	"catwalk/pkg/errors"
	"catwalk/pkg/report"
)

// runReport executes a report run and writes its output.
//
// Output goes to stdout when output is empty or "-"; otherwise to the named
// file, followed by a short status block. The spinner animates on stderr
// while the run is in flight.
func (c *CLI) runReport(ctx context.Context, opts report.Options, output string, noCache bool, activity string) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, activity)
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return err
	}
	spinner.Stop()

	if output == "" || output == "-" {
		_, err := os.Stdout.Write(result.Output)
		return err
	}

	if err := os.WriteFile(output, result.Output, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Wrote %s report", opts.Kind)
	printFile(output)
	printStats(result.Stats.PageCount, result.Stats.CategoryCount, result.CacheInfo.ReportHit)
	return nil
}
