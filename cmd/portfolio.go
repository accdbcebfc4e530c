package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/psylone/tinky/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display all positions and the totals summary" }
func (*portfolioCmd) Usage() string {
	return `tinky portfolio

  Fetches the portfolio snapshot and displays every position with its
  purchase cost, yield and yield percentage, followed by the portfolio
  totals summary.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := buildReport(ctx, 0, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PortfolioMarkdown(report))
	printFailures(report)

	return subcommands.ExitSuccess
}
