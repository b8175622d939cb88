// Command solidtour prints a short demonstration of each SOLID sample package.
//
//	solidtour                 # all principles
//	solidtour -p lsp          # just Liskov substitution
//	solidtour -p ocp -v       # with step logging on stderr
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	opts := &Options{}
	if _, err := flags.ParseArgs(opts, os.Args[1:]); err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(os.Stdout, logger, opts); err != nil {
		logger.Error("tour failed", "principle", opts.Principle, "err", err)
		os.Exit(1)
	}
}
