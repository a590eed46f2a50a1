package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/you-humble/phone-rent/internal/app"
	"github.com/you-humble/phone-rent/platform/closer"
	"github.com/you-humble/phone-rent/platform/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	flagSet := pflag.NewFlagSet("phonerent", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	format := flagSet.String("format", "table", "output format: table, json or yaml")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: phonerent [--format table|json|yaml] [command [args...]]\n\n")
		fmt.Fprintf(os.Stderr, "Without a command an interactive shell starts. Run \"phonerent help\" for commands.\n\n")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	ctx, quit := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer quit()

	defer func() {
		if err := closer.CloseAll(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		}
	}()

	a, err := app.New(ctx, app.Options{Format: *format, Args: flagSet.Args()})
	if err != nil {
		logger.Error(ctx,
			"❌ Failed to create an application",
			logger.ErrorF(err),
		)
		fmt.Fprintf(os.Stderr, "phonerent: %v\n", err)
		return 1
	}

	if err := a.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		logger.Error(ctx, "❌ phonerent error", logger.ErrorF(err))
		return 1
	}
	return 0
}
