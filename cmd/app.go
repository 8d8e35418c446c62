// Package cmd implements the CLI application to process account
// activity files.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&processCmd{}, "processing")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&activitiesCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var verbose = flag.Bool("v", false, "Log skipped records (parse failures and rejected activities) to stderr")

// NewLogger builds the application logger. By default only errors are
// shown; -v lowers the level so that every skipped record is visible.
func NewLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	if *verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}
