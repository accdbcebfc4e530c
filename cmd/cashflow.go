package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/psylone/tinky"
	"github.com/psylone/tinky/renderer"
)

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	days int
}

func (*cashflowCmd) Name() string { return "cashflow" }
func (*cashflowCmd) Synopsis() string {
	return "project upcoming dividend and coupon payments"
}
func (*cashflowCmd) Usage() string {
	return `tinky cashflow [-days <n>]

  Projects the dividend and coupon payments the current holdings are
  owed within the next n days (90 by default), sorted by payment date.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", tinky.DefaultWindowDays, "Length of the projection window, in days.")
}

func (c *cashflowCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -days must be positive, got %d\n", c.days)
		return subcommands.ExitUsageError
	}

	report, err := buildReport(ctx, c.days, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CashFlowMarkdown(report))
	printFailures(report)

	return subcommands.ExitSuccess
}
