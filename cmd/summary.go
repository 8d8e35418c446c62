package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ledgerkit/payproc"
	"github.com/ledgerkit/payproc/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "display a human-readable summary of the final account balances"
}
func (*summaryCmd) Usage() string {
	return `ppc summary <activity_file>

  Processes the activity file and renders the final account balances
  as a markdown report: one row per client, plus aggregate counts.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one activity file")
		return subcommands.ExitUsageError
	}

	activities, closeInput, err := openActivities(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening activity file %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer closeInput()

	logger := NewLogger()
	defer logger.Sync()

	accounts := payproc.NewProcessor(payproc.NewLogObserver(logger)).Fold(activities)
	summary := renderer.NewSummary(payproc.Snapshots(accounts))
	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
