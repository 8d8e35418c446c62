package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ledgerkit/payproc"
)

type activitiesCmd struct{}

func (*activitiesCmd) Name() string { return "activities" }
func (*activitiesCmd) Synopsis() string {
	return "echo the parsed activity stream without processing it"
}
func (*activitiesCmd) Usage() string {
	return `ppc activities <activity_file>

  Parses the activity file and prints each record as it was
  understood (kind, transaction id, client id, amount), along with a
  diagnostic for every record that could not be parsed. Useful to
  inspect an input file before processing it.
`
}

func (*activitiesCmd) SetFlags(*flag.FlagSet) {}

func (*activitiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	for activity, err := range activities {
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipped: %v\n", err)
			continue
		}
		switch v := activity.(type) {
		case payproc.Deposit:
			fmt.Printf("%-10s tx=%s client=%s amount=%s\n", activity.Kind(), v.ID, v.Client, v.Amount)
		case payproc.Withdrawal:
			fmt.Printf("%-10s tx=%s client=%s amount=%s\n", activity.Kind(), v.ID, v.Client, v.Amount)
		default:
			fmt.Printf("%-10s tx=%s client=%s\n", activity.Kind(), activity.TransactionID(), activity.ClientID())
		}
	}
	return subcommands.ExitSuccess
}
