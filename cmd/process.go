package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/ledgerkit/payproc"
	"github.com/ledgerkit/payproc/csvio"
)

type processCmd struct {
	outputFile string
	silent     bool
}

func (*processCmd) Name() string { return "process" }
func (*processCmd) Synopsis() string {
	return "compute final account balances from an activity file"
}
func (*processCmd) Usage() string {
	return `ppc process [-o <output_file>] [-silent] <activity_file>

  Reads account activity records (deposits, withdrawals, disputes,
  resolves, chargebacks) from the given file, folds them into final
  per-client account balances, and writes the snapshots as CSV with
  the header client,available,held,total,locked.

  Individual records that fail to parse or to apply are skipped and
  never abort the run; use -v to see them on stderr.

Usage Examples:
# Write final balances to stdout.
$ ppc process transactions.csv

# Write final balances to a file.
$ ppc process -o accounts.csv transactions.csv
`
}

func (p *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "File to write the snapshots to. Defaults to stdout.")
	f.BoolVar(&p.silent, "silent", false, "Suppress printing the results.")
}

func (p *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	output, closeOutput, err := p.output()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening output file %q: %v\n", p.outputFile, err)
		return subcommands.ExitFailure
	}
	defer closeOutput()

	if err := csvio.NewWriter(output).Write(payproc.Snapshots(accounts)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshots: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (p *processCmd) output() (io.Writer, func() error, error) {
	if p.silent {
		return io.Discard, func() error { return nil }, nil
	}
	if p.outputFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	file, err := os.Create(p.outputFile)
	if err != nil {
		return nil, nil, err
	}
	return file, file.Close, nil
}
