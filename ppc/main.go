package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/ledgerkit/payproc/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
