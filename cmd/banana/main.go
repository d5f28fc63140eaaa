// Command banana solves one-sided crossing minimization and twin-width
// instances read in DIMACS-style `p ocr` / `p tww` format.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/banana/internal/cliutil"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	logger := cliutil.NewLogger(os.Stderr, log.InfoLevel)
	root := rootCommand(logger)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}

		return nil
	}

	return root.ExecuteContext(ctx)
}

func rootCommand(logger *log.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "banana",
		Short:        "banana solves OCM and twin-width instances",
		SilenceUsage: true,
	}

	root.AddCommand(solveCommand(logger))

	return root
}
