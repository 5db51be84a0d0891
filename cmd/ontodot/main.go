package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ontodot/internal/cli"
	ontoerrors "github.com/matzehuels/ontodot/pkg/errors"
)

// Exit codes.
const (
	exitError       = 1
	exitFatalGraph  = 2   // the ontology cannot be drawn
	exitInterrupted = 130 // standard shell convention for SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := run(ctx)
	switch {
	case err == nil:
		return
	case errors.Is(err, context.Canceled):
		os.Exit(exitInterrupted)
	case ontoerrors.IsFatal(err):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFatalGraph)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// The level is only known once flags are parsed.
	next := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if next != nil {
			return next(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
