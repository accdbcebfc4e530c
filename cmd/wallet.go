package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/psylone/tinky/renderer"
)

// walletCmd holds the flags for the 'wallet' subcommand.
type walletCmd struct{}

func (*walletCmd) Name() string     { return "wallet" }
func (*walletCmd) Synopsis() string { return "display currency holdings" }
func (*walletCmd) Usage() string {
	return `tinky wallet

  Displays the cash balances of the account, one row per held currency.
`
}

func (c *walletCmd) SetFlags(f *flag.FlagSet) {}

func (c *walletCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := buildReport(ctx, 0, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WalletMarkdown(report))
	printFailures(report)

	return subcommands.ExitSuccess
}
