// Package cmd implements the CLI application to report on a brokerage
// account: a thin presentation layer over the tinky report engine.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/psylone/tinky"
	"github.com/psylone/tinky/renderer"
	"github.com/psylone/tinky/tinvest"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&portfolioCmd{}, "reports")
	c.Register(&walletCmd{}, "reports")
	c.Register(&cashflowCmd{}, "reports")
	c.Register(&watchCmd{}, "reports")

	c.Register(&accountCmd{}, "account")

	c.Register(&topicCmd{}, "documentation")
}

const (
	envEndpoint = "TINVEST_OPENAPI_URL"
	envToken    = "TINVEST_OPENAPI_TOKEN"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var endpointFlag = flag.String("endpoint", "", "T-Invest OpenAPI endpoint.\n If missing it will read the environment variable \""+envEndpoint+"\".")
var tokenFlag = flag.String("token", "", "T-Invest OpenAPI token.\n If missing it will read the environment variable \""+envToken+"\".")
var currencyFlag = flag.String("currency", "RUB", "Reporting currency for totals (RUB, USD or EUR).")
var verboseFlag = flag.Bool("v", false, "Also print diagnostics for lookups that degraded the report.")

// NewClient builds the API client from flags and environment. A missing
// endpoint or token is a configuration error: nothing is fetched.
func NewClient() (*tinvest.Client, error) {
	endpoint := *endpointFlag
	if endpoint == "" {
		endpoint = os.Getenv(envEndpoint)
	}
	token := *tokenFlag
	if token == "" {
		token = os.Getenv(envToken)
	}
	if endpoint == "" {
		return nil, fmt.Errorf("no endpoint configured: set -endpoint or %s", envEndpoint)
	}
	if token == "" {
		return nil, fmt.Errorf("no token configured: set -token or %s", envToken)
	}
	return tinvest.New(endpoint, token), nil
}

// buildReport runs one full report cycle with the configured client.
func buildReport(ctx context.Context, windowDays int, names *tinky.NameCache) (*tinky.Report, error) {
	client, err := NewClient()
	if err != nil {
		return nil, err
	}
	return tinky.BuildReport(ctx, client, tinky.Options{
		Currency:   *currencyFlag,
		WindowDays: windowDays,
		Names:      names,
	})
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

// printFailures surfaces the report's degradation diagnostics in
// verbose mode.
func printFailures(r *tinky.Report) {
	if !*verboseFlag {
		return
	}
	if doc := renderer.FailuresMarkdown(r); doc != "" {
		printMarkdown(doc)
	}
}
