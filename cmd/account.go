package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/psylone/tinky/renderer"
)

// accountCmd holds the flags for the 'account' subcommand.
type accountCmd struct{}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "display user info and open accounts" }
func (*accountCmd) Usage() string {
	return `tinky account

  Displays the authenticated user's tariff and the open brokerage
  accounts. Reports always run against the first open account.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := NewClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	info, err := client.UserInfo(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching user info: %v\n", err)
		return subcommands.ExitFailure
	}
	accounts, err := client.Accounts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching accounts: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AccountMarkdown(info, accounts))

	return subcommands.ExitSuccess
}
