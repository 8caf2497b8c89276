// Command paintcore renders generated brushes and applies tone adjustments
// to image files.
//
// Usage:
//
//	paintcore [-v] <command> [flags] [files...]
//
// Commands:
//
//	brush      render a generated brush stamp to an image
//	levels     apply a levels adjustment (file, auto-stretch or picked colors)
//	curves     apply a curves file
//	huesat     apply a hue/saturation adjustment
//	histogram  print per-channel statistics
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/paintcore"
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, args []string) error
}

var commands = []command{
	{"brush", "render a generated brush stamp", runBrush},
	{"levels", "apply a levels adjustment", runLevels},
	{"curves", "apply a curves file", runCurves},
	{"huesat", "apply a hue/saturation adjustment", runHueSat},
	{"histogram", "print per-channel statistics", runHistogram},
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	paintcore.SetLogger(logger)

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	name, args := flag.Arg(0), flag.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		err := c.run(ctx, args)
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		if err != nil {
			logger.Error("command failed", "command", name, "err", err)
			os.Exit(1)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "paintcore: unknown command %q\n\n", name)
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: paintcore [-v] <command> [flags] [files...]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-10s %s\n", c.name, c.usage)
	}
	fmt.Fprintf(os.Stderr, "\nRun 'paintcore <command> -h' for command flags.\n")
}
