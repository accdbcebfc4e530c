package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"

	"github.com/psylone/tinky"
	"github.com/psylone/tinky/renderer"
)

// Alternate-screen control sequences. The report loop draws on the
// alternate screen so quitting leaves the terminal exactly as it was.
const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	clearScreen    = "\x1b[2J\x1b[H"
)

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct {
	interval time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "continuously refresh the portfolio report" }
func (*watchCmd) Usage() string {
	return `tinky watch [-interval <duration>]

  Re-renders the portfolio report at a fixed interval until interrupted.
  The terminal is switched to the alternate screen and restored on exit,
  however the loop ends.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.interval, "interval", 2*time.Second, "Refresh interval.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.interval <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -interval must be positive, got %v\n", c.interval)
		return subcommands.ExitUsageError
	}
	if _, err := NewClient(); err != nil {
		// fail on configuration before touching the terminal
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Print(enterAltScreen)
	defer fmt.Print(leaveAltScreen)

	// instrument identity is stable, so names survive cycles; every
	// rate-sensitive figure is refetched each cycle
	names := tinky.NewNameCache()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.cycle(ctx, names)
	for {
		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess
		case <-ticker.C:
			c.cycle(ctx, names)
		}
	}
}

// cycle runs one refresh. A failed cycle is logged and the loop keeps
// going: the next tick retries with fresh data.
func (c *watchCmd) cycle(ctx context.Context, names *tinky.NameCache) {
	report, err := buildReport(ctx, 0, names)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Printf("report cycle failed: %v", err)
		return
	}
	fmt.Print(clearScreen)
	printMarkdown(renderer.PortfolioMarkdown(report))
	printFailures(report)
}
